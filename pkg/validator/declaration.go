package validator

// Binding pairs a rule with an optional custom error message.
// It is immutable once created.
type Binding struct {
	rule    Rule
	message string
	custom  bool
}

// NewBinding pairs rule with the first of message, if any.
func NewBinding(rule Rule, message ...string) Binding {
	b := Binding{rule: rule}
	if len(message) > 0 {
		b.message = message[0]
		b.custom = true
	}
	return b
}

func (b Binding) Rule() Rule { return b.rule }

// Message returns the custom message and whether one was supplied.
func (b Binding) Message() (string, bool) { return b.message, b.custom }

// Declaration associates one field name with an ordered list of bindings.
type Declaration struct {
	field    string
	bindings []Binding
}

// Declare creates a declaration for field with a single binding. An optional
// custom message replaces the rule's default message when the rule fails.
//
// Example:
//
//	age := validator.Declare("age", validator.MinSize(18), "You're under-aged!")
func Declare(field string, rule Rule, message ...string) *Declaration {
	return &Declaration{
		field:    field,
		bindings: []Binding{NewBinding(rule, message...)},
	}
}

// Insert appends another binding after the existing ones and returns d for chaining.
func (d *Declaration) Insert(rule Rule, message ...string) *Declaration {
	d.bindings = append(d.bindings, NewBinding(rule, message...))
	return d
}

func (d *Declaration) Field() string { return d.field }

// Bindings returns a copy of the bindings in declaration order.
func (d *Declaration) Bindings() []Binding {
	out := make([]Binding, len(d.bindings))
	copy(out, d.bindings)
	return out
}
