package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "exec",
			err:      NewExecError(),
			expected: "execution failed",
		},
		{
			name:     "exec with cause",
			err:      newWrapped(KindExec, errors.New("boom")),
			expected: "execution failed: boom",
		},
		{
			name:     "get secret value",
			err:      newMessage(KindGetSecretValue, "ResourceNotFoundException: not found"),
			expected: "get secret value: ResourceNotFoundException: not found",
		},
		{
			name:     "list secrets",
			err:      newMessage(KindListSecrets, "InvalidNextTokenException: bad token"),
			expected: "list secrets: InvalidNextTokenException: bad token",
		},
		{
			name:     "describe parameters",
			err:      newMessage(KindDescribeParameters, "InvalidFilterKey: bad"),
			expected: "describe parameters: InvalidFilterKey: bad",
		},
		{
			name:     "get parameters by path",
			err:      newMessage(KindGetParametersByPath, "InvalidKeyId: bad"),
			expected: "get parameters by path: InvalidKeyId: bad",
		},
		{
			name:     "unknown service",
			err:      newMessage(KindUnknownService, "ParameterNotFound: /app/db"),
			expected: "aws service error: ParameterNotFound: /app/db",
		},
		{
			name:     "unknown response",
			err:      newUnknownResponse(503, "service unavailable"),
			expected: "aws unknown response (status 503): service unavailable",
		},
		{
			name:     "credentials",
			err:      newMessage(KindCredentials, "missing access key"),
			expected: "aws credentials: missing access key",
		},
		{
			name:     "validation",
			err:      newMessage(KindValidation, "field X required"),
			expected: "aws request validation: field X required",
		},
		{
			name:     "response parse",
			err:      newMessage(KindResponseParse, "unexpected end of JSON"),
			expected: "aws response parse: unexpected end of JSON",
		},
		{
			name:     "http dispatch",
			err:      newWrapped(KindHTTPDispatch, errors.New("connection refused")),
			expected: "aws http dispatch: connection refused",
		},
		{
			name:     "invalid key",
			err:      NewInvalidKey("db password"),
			expected: `invalid key "db password"`,
		},
		{
			name:     "io",
			err:      FromIO(fs.ErrNotExist),
			expected: "io: file does not exist",
		},
		{
			name:     "parse",
			err:      FromJSON(errors.New("invalid character 'x'")),
			expected: "parse: invalid character 'x'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expectIs bool
	}{
		{
			name:     "same kind matches",
			err:      newMessage(KindCredentials, "missing access key"),
			target:   &Error{Kind: KindCredentials},
			expectIs: true,
		},
		{
			name:     "wrapped error matches",
			err:      fmt.Errorf("load config: %w", newMessage(KindCredentials, "missing access key")),
			target:   &Error{Kind: KindCredentials},
			expectIs: true,
		},
		{
			name:     "different kind does not match",
			err:      newMessage(KindValidation, "field X required"),
			target:   &Error{Kind: KindCredentials},
			expectIs: false,
		},
		{
			name:     "wrapped cause is reachable",
			err:      FromIO(fs.ErrPermission),
			target:   fs.ErrPermission,
			expectIs: true,
		},
		{
			name:     "plain error does not match",
			err:      errors.New("some other error"),
			target:   &Error{Kind: KindExec},
			expectIs: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectIs, errors.Is(tt.err, tt.target))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInvalidKey, KindOf(NewInvalidKey("x")))
	assert.Equal(t, KindIO, KindOf(fmt.Errorf("read: %w", FromIO(fs.ErrClosed))))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestHasKind(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewExecError())

	assert.True(t, HasKind(err, KindExec))
	assert.False(t, HasKind(err, KindIO))
	assert.False(t, HasKind(nil, KindExec))
}

func TestUnwrap(t *testing.T) {
	assert.Nil(t, NewExecError().Unwrap())
	assert.Nil(t, newMessage(KindGetSecretValue, "x").Unwrap())

	err := json.Unmarshal([]byte("{"), &struct{}{})
	require.Error(t, err)

	wrapped := FromJSON(err)
	assert.Same(t, err, wrapped.Unwrap())

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, wrapped, &syntaxErr)
}

func TestLogValue(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected map[string]any
	}{
		{
			name: "message kinds",
			err:  newMessage(KindGetSecretValue, "ResourceNotFoundException: gone"),
			expected: map[string]any{
				"kind":    "GET_SECRET_VALUE_ERROR",
				"message": "ResourceNotFoundException: gone",
			},
		},
		{
			name: "unknown response",
			err:  newUnknownResponse(503, "service unavailable"),
			expected: map[string]any{
				"kind":        "UNKNOWN_RESPONSE_ERROR",
				"status_code": float64(503),
				"body":        "service unavailable",
			},
		},
		{
			name: "invalid key",
			err:  NewInvalidKey("a b"),
			expected: map[string]any{
				"kind": "INVALID_KEY",
				"key":  "a b",
			},
		},
		{
			name: "wrapped cause",
			err:  FromIO(fs.ErrNotExist),
			expected: map[string]any{
				"kind":  "IO_ERROR",
				"cause": "file does not exist",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			logger.Error("operation failed", "error", tt.err)

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

			group, ok := record["error"].(map[string]any)
			require.True(t, ok, "error attribute should be a group, got %T", record["error"])
			assert.Equal(t, tt.expected, group)
		})
	}
}
