package validator

import (
	"fmt"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func checkEmail(field string, value any) (bool, string) {
	msg := fmt.Sprintf("'%s' field must be a valid email address.", field)
	if value == nil {
		return false, msg
	}

	s, ok := asString(value)
	if !ok {
		return false, incompatible(field)
	}

	return emailRegex.MatchString(s), msg
}
