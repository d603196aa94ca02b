// Package httpvalidate validates incoming HTTP requests against validator
// declarations before they reach a handler.
//
// The middleware buffers the request body (bounded by Config.MaxBodyBytes),
// views the request with valueview.FromRequest, runs the validator and either
// rejects the request with a JSON error envelope or forwards it with the body
// restored and the Outcome available through OutcomeFromContext.
//
// With chi, mount the middleware per route (r.With or inside r.Group) so that
// route parameters are resolved before it runs:
//
//	r := chi.NewRouter()
//	r.With(httpvalidate.Middleware(decls)).Post("/users/{id}", updateUser)
//
// Every response carries an X-Request-ID header. A valid id sent by the client
// is reused; otherwise a UUIDv4 is generated.
package httpvalidate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/freeval/pkg/logger"
	"github.com/dmitrymomot/freeval/pkg/validator"
	"github.com/dmitrymomot/freeval/pkg/valueview"
)

// Option configures the middleware.
type Option func(*options)

type options struct {
	cfg        Config
	log        *slog.Logger
	writeError ErrorWriter
}

// WithConfig replaces DefaultConfig. Non-positive limits fall back to the defaults.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		def := DefaultConfig()
		if cfg.StatusCode <= 0 {
			cfg.StatusCode = def.StatusCode
		}
		if cfg.MaxBodyBytes <= 0 {
			cfg.MaxBodyBytes = def.MaxBodyBytes
		}
		if cfg.ErrorCode == "" {
			cfg.ErrorCode = def.ErrorCode
		}
		o.cfg = cfg
	}
}

// WithLogger sets the logger for rejected requests and validation traces.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithErrorWriter replaces WriteJSONError.
func WithErrorWriter(fn ErrorWriter) Option {
	return func(o *options) {
		if fn != nil {
			o.writeError = fn
		}
	}
}

type outcomeKey struct{}

// OutcomeFromContext returns the outcome stored by the middleware for a
// request that passed validation.
func OutcomeFromContext(ctx context.Context) (validator.Outcome, bool) {
	out, ok := ctx.Value(outcomeKey{}).(validator.Outcome)
	return out, ok
}

// Middleware validates each request against decls.
func Middleware(decls []*validator.Declaration, opts ...Option) func(http.Handler) http.Handler {
	o := &options{
		cfg:        DefaultConfig(),
		log:        logger.Discard(),
		writeError: WriteJSONError,
	}
	for _, opt := range opts {
		opt(o)
	}
	validatorLog := o.log
	o.log = o.log.With(logger.Component("httpvalidate"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			w.Header().Set(RequestIDHeader, id)
			ctx := withRequestID(r.Context(), id)
			r = r.WithContext(ctx)

			body, err := o.readBody(w, r)
			if err != nil {
				o.reject(w, r, status(err), "invalid_request", err, nil)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(body))
			tree, viewErr := valueview.FromRequest(r)
			r.Body = io.NopCloser(bytes.NewReader(body))
			if viewErr != nil && !errors.Is(viewErr, valueview.ErrNotObject) {
				o.reject(w, r, status(viewErr), "invalid_request", viewErr, nil)
				return
			}

			out := validator.New(r, decls,
				validator.WithLogger(validatorLog),
				validator.WithViewer(func(any) (map[string]any, error) { return tree, viewErr }),
			).Validate()

			if !out.Passed {
				o.reject(w, r, o.cfg.StatusCode, o.cfg.ErrorCode, validator.ErrValidationFailed, out.Errors)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, outcomeKey{}, out)))
		})
	}
}

func (o *options) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	defer r.Body.Close()
	return io.ReadAll(http.MaxBytesReader(w, r.Body, o.cfg.MaxBodyBytes))
}

func (o *options) reject(w http.ResponseWriter, r *http.Request, code int, errCode string, cause error, errs validator.Errors) {
	o.log.WarnContext(r.Context(), "request rejected",
		slog.Int("status", code),
		logger.Error(cause),
		logger.Fields(errs.Fields()),
	)
	o.writeError(w, r, code, ErrorDetail{
		Code:      errCode,
		Message:   cause.Error(),
		RequestID: RequestIDFromContext(r.Context()),
	}, errs)
}

func status(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, valueview.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusBadRequest
	}
}
