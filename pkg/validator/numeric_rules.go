package validator

import "fmt"

func checkSize(field string, value any, n int64, b bound) (bool, string) {
	msg := fmt.Sprintf("'%s' field must be %s %d.", field, b, n)
	if value == nil {
		return false, msg
	}

	v, ok := asInt(value)
	if !ok {
		return false, incompatible(field)
	}

	return b.holds(v, n), msg
}

// checkSizeRange is exclusive at both ends; min >= max never passes.
func checkSizeRange(field string, value any, min, max int64) (bool, string) {
	msg := fmt.Sprintf("'%s' field must be more than %d and less than %d.", field, min, max)
	if value == nil {
		return false, msg
	}

	v, ok := asInt(value)
	if !ok {
		return false, incompatible(field)
	}

	return min < v && v < max, msg
}

func checkBool(field string, value any) (bool, string) {
	msg := fmt.Sprintf("'%s' field's condition must be satisfied.", field)
	if value == nil {
		return false, msg
	}

	v, ok := asBool(value)
	if !ok {
		return false, incompatible(field)
	}

	return v, msg
}

func checkRequired(field string, value any) (bool, string) {
	return value != nil, fmt.Sprintf("'%s' field cannot be null.", field)
}
