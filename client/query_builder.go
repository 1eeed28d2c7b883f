package client

import (
	"fmt"
	"strconv"
	"strings"
)

// QueryBuilder accumulates param=value pairs in Add order. Values are written
// verbatim, without URL-encoding, so the resulting query string matches the
// Helix request byte for byte.
type QueryBuilder struct {
	sb      *strings.Builder
	isEmpty bool
}

func NewQueryBuilder() *QueryBuilder {
	q := &QueryBuilder{}
	q.isEmpty = true
	q.sb = &strings.Builder{}
	return q
}

// Add appends one pair for a scalar value, or one pair per element for a
// slice value. Empty strings, zero numbers, nils and empty slices are
// skipped entirely.
func (q *QueryBuilder) Add(param string, value any) {
	switch v := value.(type) {
	case nil:
		return
	case string:
		if v == "" {
			return
		}
		q.write(param, v)
	case []string:
		for _, el := range v {
			q.write(param, el)
		}
	case int:
		if v == 0 {
			return
		}
		q.write(param, strconv.Itoa(v))
	case int64:
		if v == 0 {
			return
		}
		q.write(param, strconv.FormatInt(v, 10))
	case float64:
		if v == 0 {
			return
		}
		q.write(param, fmt.Sprintf("%v", v))
	case []any:
		for _, el := range v {
			q.write(param, fmt.Sprintf("%v", el))
		}
	default:
		q.write(param, fmt.Sprintf("%v", v))
	}
}

func (q *QueryBuilder) write(param string, value string) {
	amp := ""
	if q.isEmpty {
		q.isEmpty = false
	} else {
		amp = "&"
	}
	q.sb.WriteString(amp + param + "=" + value)
}

// String returns the accumulated params joined with single & separators.
func (q *QueryBuilder) String() string {
	return q.sb.String()
}

// Query returns the params prefixed with the ? separator. The separator is
// present even when every value was skipped.
func (q *QueryBuilder) Query() string {
	return "?" + q.sb.String()
}
