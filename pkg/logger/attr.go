package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a record field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records field names under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Rule records a rule description under the key "rule".
func Rule(rule string) slog.Attr {
	return slog.String("rule", rule)
}

// RequestID records the request identifier under the key "request_id".
// An empty id returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
