package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// Error is a classified failure. Exactly one Kind is set, and only the fields
// belonging to that kind carry data:
//
//   - Message: the description of the four operation kinds and
//     KindUnknownService, the message of KindCredentials, the details of
//     KindValidation and KindResponseParse
//   - StatusCode, Body: KindUnknownResponse
//   - Key: KindInvalidKey
//   - Err: KindIO, KindParse, KindHTTPDispatch, and the unclassified cause of
//     a KindExec produced by FromAWS
//
// Values are built by the constructors and conversions in this package and are
// not modified afterwards.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Body       string
	Key        string
	Err        error
}

// NewExecError returns a generic execution failure.
func NewExecError() *Error {
	return &Error{Kind: KindExec}
}

// NewInvalidKey returns an error for a malformed or disallowed lookup key.
func NewInvalidKey(key string) *Error {
	return &Error{Kind: KindInvalidKey, Key: key}
}

func newMessage(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func newUnknownResponse(statusCode int, body string) *Error {
	return &Error{Kind: KindUnknownResponse, StatusCode: statusCode, Body: body}
}

func newWrapped(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindExec:
		if e.Err != nil {
			return fmt.Sprintf("execution failed: %v", e.Err)
		}
		return "execution failed"
	case KindGetSecretValue:
		return "get secret value: " + e.Message
	case KindListSecrets:
		return "list secrets: " + e.Message
	case KindDescribeParameters:
		return "describe parameters: " + e.Message
	case KindGetParametersByPath:
		return "get parameters by path: " + e.Message
	case KindUnknownService:
		return "aws service error: " + e.Message
	case KindUnknownResponse:
		return fmt.Sprintf("aws unknown response (status %d): %s", e.StatusCode, e.Body)
	case KindCredentials:
		return "aws credentials: " + e.Message
	case KindValidation:
		return "aws request validation: " + e.Message
	case KindResponseParse:
		return "aws response parse: " + e.Message
	case KindHTTPDispatch:
		return fmt.Sprintf("aws http dispatch: %v", e.Err)
	case KindInvalidKey:
		return fmt.Sprintf("invalid key %q", e.Key)
	case KindIO:
		return fmt.Sprintf("io: %v", e.Err)
	case KindParse:
		return fmt.Sprintf("parse: %v", e.Err)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return string(e.Kind)
	}
}

// Unwrap returns the wrapped error, if the kind carries one.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. This lets callers
// match on kind alone:
//
//	errors.Is(err, &Error{Kind: KindCredentials})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Code returns the coarse category of the error.
func (e *Error) Code() ErrorCode {
	return e.Kind.Code()
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("kind", string(e.Kind))}

	switch e.Kind {
	case KindUnknownResponse:
		attrs = append(attrs,
			slog.Int("status_code", e.StatusCode),
			slog.String("body", e.Body))
	case KindInvalidKey:
		attrs = append(attrs, slog.String("key", e.Key))
	default:
		if e.Message != "" {
			attrs = append(attrs, slog.String("message", e.Message))
		}
	}

	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}

	return slog.GroupValue(attrs...)
}

// KindOf returns the kind of the first *Error in err's chain, or an empty Kind
// if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// HasKind reports whether err's chain contains an *Error of the given kind.
func HasKind(err error, kind Kind) bool {
	return errors.Is(err, &Error{Kind: kind})
}
