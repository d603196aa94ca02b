package validator

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/freeval/pkg/logger"
	"github.com/dmitrymomot/freeval/pkg/valueview"
)

// Viewer converts a record into a generic tree keyed by field name.
// An error means the record has no object shape.
type Viewer func(record any) (map[string]any, error)

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used to trace validation runs.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithViewer replaces the record conversion. Nil viewers are ignored.
func WithViewer(fn Viewer) Option {
	return func(v *Validator) {
		if fn != nil {
			v.view = fn
		}
	}
}

// Validator evaluates declarations against one record.
//
// The record is held by reference and viewed anew on every Validate call, so
// the caller must keep it alive and unmodified while validating. A Validator is
// read-only during Validate and may be used from several goroutines.
type Validator struct {
	data  any
	decls []*Declaration
	view  Viewer
	log   *slog.Logger
}

// New creates a Validator for data with the given declarations.
func New(data any, decls []*Declaration, opts ...Option) *Validator {
	v := &Validator{
		data:  data,
		decls: decls,
		view:  valueview.Of,
		log:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With(logger.Component("validator"))
	return v
}

// Validate runs every binding of every declaration whose field is present in
// the record and aggregates failures. It never stops at the first failure.
//
// A record that cannot be viewed as an object has no fields, so the outcome
// passes vacuously.
func (v *Validator) Validate() Outcome {
	out := Outcome{Passed: true, Errors: make(Errors)}

	tree, err := v.view(v.data)
	if err != nil {
		v.log.Warn("validation skipped: record is not an object", logger.Error(err))
		return out
	}

	for _, field := range slices.Sorted(maps.Keys(tree)) {
		value := tree[field]
		// Every declaration for the field is evaluated; duplicates add up.
		for _, decl := range v.decls {
			if decl == nil || decl.field != field {
				continue
			}
			for _, b := range decl.bindings {
				ok, msg := b.rule.check(field, value)
				if ok {
					continue
				}
				out.Passed = false
				if b.custom {
					msg = b.message
				}
				out.Errors.Add(field, msg)
				v.log.Debug("rule failed", logger.Field(field), logger.Rule(b.rule.String()))
			}
		}
	}

	v.log.Debug("validation finished",
		logger.Group("outcome",
			slog.Bool("passed", out.Passed),
			slog.Int("fields", len(tree)),
		),
		logger.Fields(out.Errors.Fields()),
	)
	return out
}

// Check validates data against decls and returns Errors when any rule failed.
//
// Example:
//
//	err := validator.Check(req,
//	    validator.Declare("email", validator.Email()),
//	    validator.Declare("password", validator.Password(8)),
//	)
//	if verrs := validator.ExtractErrors(err); verrs != nil {
//	    // render verrs
//	}
func Check(data any, decls ...*Declaration) error {
	return New(data, decls).Validate().Err()
}
