// Package validator provides a declarative field-validation engine for
// arbitrary structured records.
//
// A record is any value that can be viewed as a mapping from field name to a
// dynamically-typed value (see package valueview). Callers declare, per field,
// an ordered list of rules, each optionally paired with a custom error message.
// A Validator evaluates every declaration against the record and produces an
// Outcome: a pass flag plus an ordered list of error messages per field.
//
// # Architecture
//
// The rule set is closed. Rule is a tagged value whose Kind selects exactly one
// checker; the evaluation loop performs a single exhaustive switch and never
// dispatches dynamically. Checkers are grouped per family in the same way as
// the rest of the package (`string_rules.go`, `numeric_rules.go`,
// `password_rules.go`, `format_rules.go`).
//
// Core building blocks:
//   - Rule        – one constraint kind with its parameters
//   - Binding     – a Rule paired with an optional custom message
//   - Declaration – a field name with an ordered list of Bindings
//   - Validator   – evaluates Declarations against a record
//   - Outcome     – pass flag plus Errors (field → ordered messages)
//
// # Usage
//
//	bio := validator.Declare("bio", validator.Required())
//	bio.Insert(validator.MinLength(12), "Bio is too short!")
//
//	out := validator.New(&user, []*validator.Declaration{
//	    validator.Declare("name", validator.Length(12)),
//	    validator.Declare("age", validator.MinSize(18), "You're under-aged!"),
//	    bio,
//	}).Validate()
//	if !out.Passed {
//	    for _, field := range out.Errors.Fields() {
//	        fmt.Println(field, out.Errors.All(field))
//	    }
//	}
//
// # Evaluation semantics
//
// Only fields present in the viewed record are validated; declarations for
// absent fields are skipped. Every binding of every matched declaration is
// evaluated, failures accumulate and never stop evaluation. A value of the
// wrong shape for a rule (for example a length rule on a boolean) is a
// failure of that binding, not a panic. A record that cannot be viewed as an
// object yields a passing Outcome with no errors.
//
// # Error Handling
//
// Errors implements error, and Outcome.Err returns it when validation failed,
// so results compose with errors.Is/As through ExtractErrors and
// IsValidationError. Rule constructors panic on malformed parameters (for
// example a negative length); use NewRule to get an error instead.
package validator
