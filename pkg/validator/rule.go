package validator

import (
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of rule kinds.
type Kind uint8

const (
	KindLength Kind = iota + 1
	KindMaxLength
	KindMinLength
	KindSize
	KindMaxSize
	KindMinSize
	KindBool
	KindPassword
	KindRequired
	KindEmail
	KindLengthRange
	KindSizeRange
	KindContains
)

var kindNames = map[Kind]string{
	KindLength:      "length",
	KindMaxLength:   "max_length",
	KindMinLength:   "min_length",
	KindSize:        "size",
	KindMaxSize:     "max_size",
	KindMinSize:     "min_size",
	KindBool:        "bool",
	KindPassword:    "password",
	KindRequired:    "required",
	KindEmail:       "email",
	KindLengthRange: "length_range",
	KindSizeRange:   "size_range",
	KindContains:    "contains",
}

// kindAliases lists alternative spellings accepted by ParseKind.
var kindAliases = map[string]Kind{
	"size_exact": KindSize,
	"size_max":   KindMaxSize,
	"size_min":   KindMinSize,
	"boolean":    KindBool,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a snake_case rule name (for example "min_length") to its Kind.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Params carries the parameters of a rule. Which fields are read depends on the Kind:
// Value for the single-bound kinds, Min and Max for ranges, Substring for Contains.
type Params struct {
	Value     int64
	Min       int64
	Max       int64
	Substring string
}

// Rule is one validation constraint. The zero value is not a valid rule; build
// rules with the constructors or NewRule.
type Rule struct {
	kind   Kind
	params Params
}

// NewRule builds a rule of the given kind, validating its parameters.
// Length-like parameters (lengths, password minimum, length range bounds) must be
// non-negative. A range whose min is not below its max is accepted and always fails.
func NewRule(kind Kind, p Params) (Rule, error) {
	switch kind {
	case KindLength, KindMaxLength, KindMinLength, KindPassword:
		if p.Value < 0 {
			return Rule{}, fmt.Errorf("%w: %s requires a non-negative length, got %d", ErrInvalidRule, kind, p.Value)
		}
		return Rule{kind: kind, params: Params{Value: p.Value}}, nil
	case KindSize, KindMaxSize, KindMinSize:
		return Rule{kind: kind, params: Params{Value: p.Value}}, nil
	case KindLengthRange:
		if p.Min < 0 || p.Max < 0 {
			return Rule{}, fmt.Errorf("%w: %s requires non-negative bounds, got (%d,%d)", ErrInvalidRule, kind, p.Min, p.Max)
		}
		return Rule{kind: kind, params: Params{Min: p.Min, Max: p.Max}}, nil
	case KindSizeRange:
		return Rule{kind: kind, params: Params{Min: p.Min, Max: p.Max}}, nil
	case KindContains:
		return Rule{kind: kind, params: Params{Substring: p.Substring}}, nil
	case KindBool, KindRequired, KindEmail:
		return Rule{kind: kind}, nil
	default:
		return Rule{}, fmt.Errorf("%w: %s", ErrUnknownRule, kind)
	}
}

func mustRule(kind Kind, p Params) Rule {
	r, err := NewRule(kind, p)
	if err != nil {
		panic(err)
	}
	return r
}

// Length requires a string of exactly n characters.
func Length(n int) Rule { return mustRule(KindLength, Params{Value: int64(n)}) }

// MaxLength requires a string of at most n characters.
func MaxLength(n int) Rule { return mustRule(KindMaxLength, Params{Value: int64(n)}) }

// MinLength requires a string of at least n characters.
func MinLength(n int) Rule { return mustRule(KindMinLength, Params{Value: int64(n)}) }

// Size requires an integer equal to n.
func Size(n int64) Rule { return mustRule(KindSize, Params{Value: n}) }

// MaxSize requires an integer less than or equal to n.
func MaxSize(n int64) Rule { return mustRule(KindMaxSize, Params{Value: n}) }

// MinSize requires an integer greater than or equal to n.
func MinSize(n int64) Rule { return mustRule(KindMinSize, Params{Value: n}) }

// Bool requires the literal boolean true.
func Bool() Rule { return mustRule(KindBool, Params{}) }

// Password requires a string of at least minLen characters mixing upper case,
// lower case, digits and special characters, with no whitespace.
func Password(minLen int) Rule { return mustRule(KindPassword, Params{Value: int64(minLen)}) }

// Required requires the field to hold a non-null value.
func Required() Rule { return mustRule(KindRequired, Params{}) }

// Email requires a string shaped like localpart@domain.tld.
func Email() Rule { return mustRule(KindEmail, Params{}) }

// LengthRange requires a string whose length is strictly between min and max.
func LengthRange(min, max int) Rule {
	return mustRule(KindLengthRange, Params{Min: int64(min), Max: int64(max)})
}

// SizeRange requires an integer strictly between min and max.
func SizeRange(min, max int64) Rule {
	return mustRule(KindSizeRange, Params{Min: min, Max: max})
}

// Contains requires a string containing sub (case-sensitive).
func Contains(sub string) Rule { return mustRule(KindContains, Params{Substring: sub}) }

func (r Rule) Kind() Kind { return r.kind }

func (r Rule) Params() Params { return r.params }

// String renders the rule as name(params), for example "length_range(2,10)".
func (r Rule) String() string {
	switch r.kind {
	case KindLength, KindMaxLength, KindMinLength, KindSize, KindMaxSize, KindMinSize, KindPassword:
		return fmt.Sprintf("%s(%d)", r.kind, r.params.Value)
	case KindLengthRange, KindSizeRange:
		return fmt.Sprintf("%s(%d,%d)", r.kind, r.params.Min, r.params.Max)
	case KindContains:
		return fmt.Sprintf("%s(%q)", r.kind, r.params.Substring)
	default:
		return r.kind.String()
	}
}

// check runs the checker selected by the rule kind and returns its verdict with
// the default message for this rule instance.
func (r Rule) check(field string, value any) (bool, string) {
	p := r.params
	switch r.kind {
	case KindLength:
		return checkLength(field, value, p.Value, exactly)
	case KindMaxLength:
		return checkLength(field, value, p.Value, maximum)
	case KindMinLength:
		return checkLength(field, value, p.Value, minimum)
	case KindSize:
		return checkSize(field, value, p.Value, exactly)
	case KindMaxSize:
		return checkSize(field, value, p.Value, maximum)
	case KindMinSize:
		return checkSize(field, value, p.Value, minimum)
	case KindBool:
		return checkBool(field, value)
	case KindPassword:
		return checkPassword(field, value, p.Value)
	case KindRequired:
		return checkRequired(field, value)
	case KindEmail:
		return checkEmail(field, value)
	case KindLengthRange:
		return checkLengthRange(field, value, p.Min, p.Max)
	case KindSizeRange:
		return checkSizeRange(field, value, p.Min, p.Max)
	case KindContains:
		return checkContains(field, value, p.Substring)
	default:
		return false, fmt.Sprintf("'%s' field has an unknown rule %s.", field, r.kind)
	}
}
