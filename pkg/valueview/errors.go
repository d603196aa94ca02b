package valueview

import "errors"

var (
	ErrNotObject            = errors.New("record is not an object")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidYAML          = errors.New("invalid YAML")
	ErrInvalidBSON          = errors.New("invalid BSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)
