// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"strings"

	"github.com/stockparfait/errors"
)

// ErrorKind classifies failures of the client.
type ErrorKind int

// Values of ErrorKind. The kinds don't overlap.
const (
	ConfigFailure     ErrorKind = iota + 1 // missing credential or bad client config
	TransportFailure                       // the HTTP call failed or returned non-2xx
	APIFailure                             // the body could not be decoded
	ValidationFailure                      // bad caller arguments, detected before any I/O
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigFailure:
		return "configuration failure"
	case TransportFailure:
		return "transport failure"
	case APIFailure:
		return "API failure"
	case ValidationFailure:
		return "validation failure"
	}
	return "unknown failure"
}

// Error is the only error type returned by the request pipeline.
type Error struct {
	Kind       ErrorKind
	StatusCode int    // HTTP status for non-2xx transport failures, otherwise 0
	Body       string // truncated response body for API failures
	Err        error  // the annotated cause
}

// Sentinels for use with errors.Is. Any *Error matches the sentinel of its
// kind:
//
//	if errors.Is(err, api.ErrValidation) { ... }
var (
	ErrConfig     = &Error{Kind: ConfigFailure}
	ErrTransport  = &Error{Kind: TransportFailure}
	ErrAPI        = &Error{Kind: APIFailure}
	ErrValidation = &Error{Kind: ValidationFailure}
)

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of a pipeline error, or 0 for any other error.
func KindOf(err error) ErrorKind {
	for _, s := range []*Error{ErrConfig, ErrTransport, ErrAPI, ErrValidation} {
		if errors.Is(err, s) {
			return s.Kind
		}
	}
	return 0
}

func configError(format string, args ...any) error {
	return &Error{Kind: ConfigFailure, Err: errors.Reason(format, args...)}
}

func validationError(format string, args ...any) error {
	return &Error{Kind: ValidationFailure, Err: errors.Reason(format, args...)}
}

func transportError(err error, format string, args ...any) error {
	return &Error{Kind: TransportFailure, Err: errors.Annotate(err, format, args...)}
}

// maxSnippet is the number of body characters kept in API failures.
const maxSnippet = 500

func snippet(body []byte) string {
	r := []rune(string(body))
	if len(r) > maxSnippet {
		r = r[:maxSnippet]
	}
	return string(r)
}

func apiError(body []byte, err error, format string, args ...any) error {
	var cause error
	if err == nil {
		cause = errors.Reason(format, args...)
	} else {
		cause = errors.Annotate(err, format, args...)
	}
	return &Error{Kind: APIFailure, Body: snippet(body), Err: cause}
}

// classify passes *Error values through unchanged and wraps anything else as
// a transport failure.
func classify(err error) error {
	if err == nil || KindOf(err) != 0 {
		return err
	}
	return transportError(err, "unexpected error")
}

// redacted hides the API key in the messages of errors coming from the HTTP
// stack, which may quote the full request URL.
type redacted struct {
	err    error
	secret string
}

func (r *redacted) Error() string {
	if r.secret == "" {
		return r.err.Error()
	}
	return strings.ReplaceAll(r.err.Error(), r.secret, "REDACTED")
}

func (r *redacted) Unwrap() error { return r.err }

// NewError creates an *Error of the given kind. It is meant for packages
// building on the pipeline, such as endpoint facades.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: errors.Reason(format, args...)}
}
