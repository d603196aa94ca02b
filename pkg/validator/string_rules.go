package validator

import (
	"fmt"
	"strings"
)

// bound selects how a measured value is compared to a rule parameter.
type bound uint8

const (
	exactly bound = iota
	maximum
	minimum
)

func (b bound) String() string {
	switch b {
	case maximum:
		return "maximum of"
	case minimum:
		return "minimum of"
	default:
		return "exactly"
	}
}

func (b bound) holds(got, want int64) bool {
	switch b {
	case maximum:
		return got <= want
	case minimum:
		return got >= want
	default:
		return got == want
	}
}

func checkLength(field string, value any, n int64, b bound) (bool, string) {
	msg := fmt.Sprintf("'%s' field must be %s %d characters.", field, b, n)
	if value == nil {
		return false, msg
	}

	s, ok := asString(value)
	if !ok {
		return false, incompatible(field)
	}

	return b.holds(charCount(s), n), msg
}

// checkLengthRange is exclusive at both ends; min >= max never passes.
func checkLengthRange(field string, value any, min, max int64) (bool, string) {
	msg := fmt.Sprintf("'%s' field must be more than %d and less than %d characters.", field, min, max)
	if value == nil {
		return false, msg
	}

	s, ok := asString(value)
	if !ok {
		return false, incompatible(field)
	}

	l := charCount(s)
	return min < l && l < max, msg
}

func checkContains(field string, value any, sub string) (bool, string) {
	msg := fmt.Sprintf("'%s' field must contain '%s'.", field, sub)
	if value == nil {
		return false, msg
	}

	s, ok := asString(value)
	if !ok {
		return false, incompatible(field)
	}

	return strings.Contains(s, sub), msg
}
