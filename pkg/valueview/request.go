package valueview

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const defaultMultipartMemory = 32 << 20

// FromRequest views an HTTP request. The body is chosen by Content-Type:
// JSON, YAML, BSON, urlencoded or multipart forms; a request without a
// Content-Type is viewed through its query string. Route parameters captured
// by a chi router are laid over the result and win on conflict.
//
// The request body is consumed.
func FromRequest(r *http.Request) (map[string]any, error) {
	tree, err := fromBody(r)
	if err != nil {
		return nil, err
	}

	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		for i, key := range rctx.URLParams.Keys {
			if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
				continue
			}
			tree[key] = rctx.URLParams.Values[i]
		}
	}

	return tree, nil
}

func fromBody(r *http.Request) (map[string]any, error) {
	switch mediaType(r.Header.Get("Content-Type")) {
	case "":
		return FromValues(r.URL.Query()), nil
	case "application/json":
		body, err := readBody(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return FromJSON(body)
	case "application/yaml", "application/x-yaml", "text/yaml":
		body, err := readBody(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
		return FromYAML(body)
	case "application/bson":
		body, err := readBody(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBSON, err)
		}
		return FromBSON(body)
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return FromValues(r.Form), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(defaultMultipartMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return FromValues(r.Form), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, r.Header.Get("Content-Type"))
	}
}

// mediaType strips parameters such as charset from a Content-Type value.
func mediaType(contentType string) string {
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	return io.ReadAll(r.Body)
}
