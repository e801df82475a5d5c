package repository

import (
	"buggyapi/internal/entities"
)

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	List() []*entities.User
	FindByID(id int) (*entities.User, bool)
	NextID() int
	Insert(user *entities.User)
	Delete(id int) bool
	Count() int
}

// userRepository keeps the directory in process memory. It is intentionally
// unsynchronized: concurrent creates may compute the same id and overwrite
// each other, and that interleaving is part of the service's observable
// contract.
type userRepository struct {
	users map[int]*entities.User
	order []int
}

// NewUserRepository creates a user repository seeded with the two
// directory records that exist at process start.
func NewUserRepository() UserRepository {
	r := &userRepository{
		users: make(map[int]*entities.User),
	}
	r.Insert(&entities.User{ID: 1, Name: "Alice", Email: "alice@example.com"})
	r.Insert(&entities.User{ID: 2, Name: "Bob", Email: "bob@example.com"})
	return r
}

// List returns all users in insertion order
func (r *userRepository) List() []*entities.User {
	users := make([]*entities.User, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users
}

// FindByID looks up a user by id
func (r *userRepository) FindByID(id int) (*entities.User, bool) {
	user, ok := r.users[id]
	return user, ok
}

// NextID returns max(existing ids) + 1. The store is seeded and never
// emptied below its seeds before the first create, so the map is never
// empty here. Deleted ids are not reused unless they happen to equal the
// new maximum + 1.
func (r *userRepository) NextID() int {
	maxID := 0
	for id := range r.users {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Insert adds a user to the directory, overwriting any record with the
// same id
func (r *userRepository) Insert(user *entities.User) {
	if _, exists := r.users[user.ID]; !exists {
		r.order = append(r.order, user.ID)
	}
	r.users[user.ID] = user
}

// Delete removes a user by id, reporting whether it existed
func (r *userRepository) Delete(id int) bool {
	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Count returns the number of users in the directory
func (r *userRepository) Count() int {
	return len(r.users)
}
