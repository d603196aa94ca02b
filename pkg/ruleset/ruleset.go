// Package ruleset loads validator declarations from YAML or JSON documents.
//
// A document lists fields in order, each with an ordered list of rules:
//
//	fields:
//	  - field: bio
//	    rules:
//	      - rule: required
//	      - rule: min_length
//	        value: 12
//	        message: Bio is too short!
//	  - field: age
//	    rules:
//	      - rule: size_range
//	        min: 17
//	        max: 130
//
// Rule names are the snake_case names accepted by validator.ParseKind.
// Single-bound rules read `value`, range rules read `min` and `max`, and
// `contains` reads a string `value`. Field order, rule order and repeated
// fields are preserved exactly as written.
package ruleset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/freeval/pkg/validator"
)

// ErrInvalidRuleSet wraps every problem found in a rule document.
var ErrInvalidRuleSet = errors.New("invalid rule set")

type document struct {
	Fields []fieldEntry `yaml:"fields"`
}

type fieldEntry struct {
	Field string      `yaml:"field"`
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Rule    string  `yaml:"rule"`
	Value   any     `yaml:"value"`
	Min     *int64  `yaml:"min"`
	Max     *int64  `yaml:"max"`
	Message *string `yaml:"message"`
}

// Parse decodes a rule document. Unknown keys are rejected.
func Parse(data []byte) ([]*validator.Declaration, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseReader decodes a rule document from r.
func ParseReader(r io.Reader) ([]*validator.Declaration, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRuleSet)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidRuleSet, err)
	}

	decls := make([]*validator.Declaration, 0, len(doc.Fields))
	for i, fs := range doc.Fields {
		decl, err := fs.declaration()
		if err != nil {
			return nil, fmt.Errorf("%w: fields[%d]: %w", ErrInvalidRuleSet, i, err)
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

// LoadFile reads and parses the rule document at path.
func LoadFile(path string) ([]*validator.Declaration, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rule set: %w", err)
	}
	defer f.Close()

	return ParseReader(f)
}

func (fs fieldEntry) declaration() (*validator.Declaration, error) {
	if fs.Field == "" {
		return nil, errors.New("field name is required")
	}
	if len(fs.Rules) == 0 {
		return nil, fmt.Errorf("field %q declares no rules", fs.Field)
	}

	var decl *validator.Declaration
	for j, rs := range fs.Rules {
		rule, err := rs.rule()
		if err != nil {
			return nil, fmt.Errorf("field %q rules[%d]: %w", fs.Field, j, err)
		}

		var msg []string
		if rs.Message != nil {
			msg = append(msg, *rs.Message)
		}

		if decl == nil {
			decl = validator.Declare(fs.Field, rule, msg...)
		} else {
			decl.Insert(rule, msg...)
		}
	}
	return decl, nil
}

func (rs ruleEntry) rule() (validator.Rule, error) {
	kind, err := validator.ParseKind(rs.Rule)
	if err != nil {
		return validator.Rule{}, err
	}

	var p validator.Params
	switch kind {
	case validator.KindLength, validator.KindMaxLength, validator.KindMinLength,
		validator.KindSize, validator.KindMaxSize, validator.KindMinSize, validator.KindPassword:
		n, ok := intParam(rs.Value)
		if !ok {
			return validator.Rule{}, fmt.Errorf("%s needs an integer value, got %v", kind, rs.Value)
		}
		p.Value = n
	case validator.KindLengthRange, validator.KindSizeRange:
		if rs.Min == nil || rs.Max == nil {
			return validator.Rule{}, fmt.Errorf("%s needs both min and max", kind)
		}
		p.Min, p.Max = *rs.Min, *rs.Max
	case validator.KindContains:
		s, ok := rs.Value.(string)
		if !ok {
			return validator.Rule{}, fmt.Errorf("%s needs a string value, got %v", kind, rs.Value)
		}
		p.Substring = s
	}

	return validator.NewRule(kind, p)
}

func intParam(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		if n > 1<<63-1 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
