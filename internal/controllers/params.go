package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"buggyapi/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondValidation writes the structured 422 body carrying per-field errors
func respondValidation(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": errs})
}

// bindJSON binds the request body and maps any failure to a 422. Returns
// false if a response has already been written.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondValidation(c, bindingFieldErrors(err))
		return false
	}
	return true
}

// bindingFieldErrors converts a gin binding error into per-field entries.
// Validator failures carry the offending field; malformed JSON is reported
// against the body as a whole.
func bindingFieldErrors(err error) []validation.FieldError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		out := make([]validation.FieldError, 0, len(ve))
		for _, fe := range ve {
			out = append(out, validation.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: bindingMessage(fe),
			})
		}
		return out
	}
	return []validation.FieldError{{Field: "body", Message: err.Error()}}
}

func bindingMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	default:
		return "invalid value"
	}
}

// intParam parses an integer path parameter, responding 422 on failure
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondValidation(c, []validation.FieldError{
			{Field: name, Message: "value is not a valid integer"},
		})
		return 0, false
	}
	return v, true
}

// intQuery parses an optional integer query parameter, responding 422 when
// the value is present but not an integer
func intQuery(c *gin.Context, name string, defaultValue int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return defaultValue, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondValidation(c, []validation.FieldError{
			{Field: name, Message: "value is not a valid integer"},
		})
		return 0, false
	}
	return v, true
}

// requiredIntQuery parses a mandatory integer query parameter
func requiredIntQuery(c *gin.Context, name string) (int, bool) {
	if _, ok := c.GetQuery(name); !ok {
		respondValidation(c, []validation.FieldError{
			{Field: name, Message: "field required"},
		})
		return 0, false
	}
	return intQuery(c, name, 0)
}

// requiredQuery fetches a mandatory string query parameter
func requiredQuery(c *gin.Context, name string) (string, bool) {
	v, ok := c.GetQuery(name)
	if !ok {
		respondValidation(c, []validation.FieldError{
			{Field: name, Message: "field required"},
		})
		return "", false
	}
	return v, true
}
