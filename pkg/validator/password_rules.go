package validator

import (
	"fmt"
	"unicode"
)

func checkPassword(field string, value any, minLen int64) (bool, string) {
	msg := fmt.Sprintf("'%s' field must contain at least one uppercase letter, one lowercase letter, one digit and one special character and must be at least %d chars long.", field, minLen)
	if value == nil {
		return false, msg
	}

	s, ok := asString(value)
	if !ok {
		return false, incompatible(field)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, c := range s {
		switch {
		case unicode.IsSpace(c):
			return false, msg
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		case !unicode.IsLetter(c):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial && charCount(s) >= minLen, msg
}
