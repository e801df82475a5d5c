package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"buggyapi/internal/faults"
)

// The catalog handlers are pure functions of their inputs and never touch
// the directory. Each one has an exact trigger boundary at which it raises a
// fault and deliberately does not recover; the router's recovery boundary
// turns those panics into bare 500 responses.

// PlaceOrder prices an order at a flat 1000 split per item. The per-item
// division traps on a zero quantity.
func PlaceOrder(quantity int) int {
	unitPrice := 1000
	pricePerItem := unitPrice / quantity
	return pricePerItem * quantity
}

// Search repeats the query string limit times. A non-positive limit yields
// an empty result; a limit above 1000 raises.
func Search(q string, limit int) []string {
	if limit > 1000 {
		panic(faults.Runtimef("limit too large, server choked"))
	}
	results := make([]string, 0)
	for i := 0; i < limit; i++ {
		results = append(results, q)
	}
	return results
}

// ProcessWebhook echoes back the event field of an arbitrary payload,
// raising when the key is absent.
func ProcessWebhook(payload map[string]any) any {
	event, ok := payload["event"]
	if !ok {
		panic(faults.MissingField("event"))
	}
	return event
}

// Compute returns the floor integer square root, raising on negative input.
func Compute(value int) int {
	if value < 0 {
		panic(faults.Runtimef("Cannot compute sqrt of negative: %d", value))
	}
	return isqrt(value)
}

// isqrt computes the integer square root by Newton's method
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

var conversionRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.85,
	"JPY": 110.0,
}

// ProcessPayment computes the fee, installment count and converted amount
// for a payment. The installment divisor (fee + amount) is zero exactly when
// the amount is zero, and the division raises there. A negative amount is
// not validated and silently produces negative fee/converted values.
func ProcessPayment(amount float64, currency string) (fee float64, installments int, converted float64) {
	const feeRate = 0.03
	fee = amount * feeRate
	divisor := fee + amount
	if divisor == 0 {
		panic(faults.DivisionByZero("amount / (fee + amount)"))
	}
	installments = int(amount / divisor)
	rate, ok := conversionRates[currency]
	if !ok {
		panic(faults.MissingKey(currency))
	}
	converted = amount * rate
	return fee, installments, converted
}

// Review is one entry of the synthetic review list
type Review struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
}

var reviewSortKeys = map[string]string{
	"date":   "date",
	"rating": "rating",
}

const reviewPageSize = 10

// TotalReviews is the size of the synthetic review list
const TotalReviews = 50

// ProductReviews returns one page of the synthetic 50-review list sorted by
// the given key. Page arithmetic is not validated: a non-positive page
// produces a negative slice start, resolved with wrap-from-end semantics
// (page=0 is an empty page, page=-1 is reviews 31-40 of the sorted list).
func ProductReviews(page int, sortBy string) []Review {
	all := make([]Review, 0, TotalReviews)
	for i := 1; i <= TotalReviews; i++ {
		all = append(all, Review{
			ID:     i,
			Text:   fmt.Sprintf("Review %d", i),
			Rating: i%5 + 1,
			Date:   "2024-01-01",
		})
	}

	start := (page - 1) * reviewPageSize
	end := start + reviewPageSize

	key, ok := reviewSortKeys[sortBy]
	if !ok {
		panic(faults.MissingKey(sortBy))
	}

	sort.SliceStable(all, func(i, j int) bool {
		if key == "rating" {
			return all[i].Rating < all[j].Rating
		}
		return all[i].Date < all[j].Date
	})

	lo, hi := sliceBounds(len(all), start, end)
	return all[lo:hi]
}

// sliceBounds resolves possibly-negative slice indices against a sequence of
// length n: negative indices count from the end and clamp at zero, indices
// past the end clamp at n, and an inverted range is empty.
func sliceBounds(n, start, end int) (int, int) {
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	} else if start > n {
		start = n
	}
	if end < 0 {
		end += n
		if end < 0 {
			end = 0
		}
	} else if end > n {
		end = n
	}
	if start > end {
		end = start
	}
	return start, end
}

// ApplyConfig merges the present config sections into a flat result map.
// Each present section must carry its required inner key, and profile.name
// must be a string; the faults are raised at the access site.
func ApplyConfig(theme, notifications, profile map[string]any) map[string]any {
	result := map[string]any{}
	if theme != nil {
		primary, ok := theme["primary"]
		if !ok {
			panic(faults.MissingKey("primary"))
		}
		result["color"] = primary
	}
	if notifications != nil {
		emailFlag, ok := notifications["email"]
		if !ok {
			panic(faults.MissingKey("email"))
		}
		if truthy(emailFlag) {
			result["notify"] = true
		}
	}
	if profile != nil {
		name, ok := profile["name"]
		if !ok {
			panic(faults.MissingKey("name"))
		}
		str, ok := name.(string)
		if !ok {
			panic(faults.TypeMismatch("string", name))
		}
		result["display_name"] = strings.ToUpper(str)
	}
	return result
}

// truthy follows JSON-value truthiness: null, false, zero, the empty string
// and empty containers are falsy.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

var transformOps = map[string]func([]any) any{
	"sum": func(v []any) any {
		return numericSum(v)
	},
	"avg": func(v []any) any {
		total := numericSum(v)
		if len(v) == 0 {
			panic(faults.DivisionByZero("sum(values) / len(values)"))
		}
		return total / float64(len(v))
	},
	"first": func(v []any) any {
		return v[0] // traps on empty input
	},
	"max": func(v []any) any {
		if len(v) == 0 {
			panic(faults.EmptySequence("max"))
		}
		best := asNumber(v[0])
		for _, e := range v[1:] {
			if n := asNumber(e); n > best {
				best = n
			}
		}
		return best
	},
}

// Transform applies one of the aggregate operations to the value sequence
func Transform(values []any, operation string) any {
	fn, ok := transformOps[operation]
	if !ok {
		panic(faults.MissingKey(operation))
	}
	return fn(values)
}

func numericSum(v []any) float64 {
	var total float64
	for _, e := range v {
		total += asNumber(e)
	}
	return total
}

func asNumber(v any) float64 {
	n, ok := v.(float64)
	if !ok {
		panic(faults.TypeMismatch("number", v))
	}
	return n
}

// MonthlyReport computes the first day of the month, the first day of the
// next month, and the day count between them. Date construction raises on
// out-of-range input, including the next-year rollover past year 9999.
func MonthlyReport(year, month int) (start, end string, days int) {
	startDate := monthStart(year, month)
	var endDate time.Time
	if month == 12 {
		endDate = monthStart(year+1, 1)
	} else {
		endDate = monthStart(year, month+1)
	}
	days = int(endDate.Sub(startDate).Hours() / 24)
	return startDate.Format("2006-01-02"), endDate.Format("2006-01-02"), days
}

// monthStart constructs midnight UTC on the first of the month, raising a
// date-range fault outside month 1-12 or year 1-9999.
func monthStart(year, month int) time.Time {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		panic(faults.DateOutOfRange(year, month))
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}
