package errors

// Kind identifies which variant of the error taxonomy an Error holds.
// Kinds are string-based for debuggability and natural JSON serialization.
type Kind string

const (
	// KindExec indicates a generic, unspecified execution failure.
	KindExec Kind = "EXEC_ERROR"

	// Named service operations.

	// KindGetSecretValue indicates a Secrets Manager GetSecretValue call failed
	// with a service-defined error.
	KindGetSecretValue Kind = "GET_SECRET_VALUE_ERROR"

	// KindListSecrets indicates a Secrets Manager ListSecrets call failed.
	KindListSecrets Kind = "LIST_SECRETS_ERROR"

	// KindDescribeParameters indicates an SSM DescribeParameters call failed.
	KindDescribeParameters Kind = "DESCRIBE_PARAMETERS_ERROR"

	// KindGetParametersByPath indicates an SSM GetParametersByPath call failed.
	KindGetParametersByPath Kind = "GET_PARAMETERS_BY_PATH_ERROR"

	// Other service-call failures.

	// KindUnknownService indicates a service-defined error from an operation
	// outside the four named above.
	KindUnknownService Kind = "UNKNOWN_SERVICE_ERROR"

	// KindUnknownResponse indicates the service answered with a response the
	// SDK could not turn into a typed service error. Carries status and body.
	KindUnknownResponse Kind = "UNKNOWN_RESPONSE_ERROR"

	// KindCredentials indicates local credential resolution failed before any
	// request was sent.
	KindCredentials Kind = "CREDENTIALS_ERROR"

	// KindValidation indicates the request failed parameter validation.
	KindValidation Kind = "VALIDATION_ERROR"

	// KindResponseParse indicates the SDK could not parse a response body.
	KindResponseParse Kind = "RESPONSE_PARSE_ERROR"

	// KindHTTPDispatch indicates the HTTP transport failed (connection, TLS,
	// timeout, DNS).
	KindHTTPDispatch Kind = "HTTP_DISPATCH_ERROR"

	// Local errors.

	// KindInvalidKey indicates a lookup key was malformed or not permitted.
	KindInvalidKey Kind = "INVALID_KEY"

	// KindIO indicates a local filesystem or stream operation failed.
	KindIO Kind = "IO_ERROR"

	// KindParse indicates structured-data (JSON) encoding or decoding failed.
	KindParse Kind = "PARSE_ERROR"
)

// ErrorCode is a coarse category grouping several kinds, suitable for
// choosing user-facing messages or exit codes.
type ErrorCode string

const (
	// CodeUnauthorized indicates the request lacks valid authentication credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeNetwork indicates a network operation failed.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeService indicates the remote service rejected or failed the request.
	CodeService ErrorCode = "SERVICE_ERROR"

	// CodeExecutionFailed indicates a general execution failure.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// CodeIO indicates a local I/O failure.
	CodeIO ErrorCode = "IO_ERROR"

	// CodeParse indicates malformed structured data.
	CodeParse ErrorCode = "PARSE_ERROR"

	// CodeInternal indicates an internal SDK or protocol error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Code returns the category the kind belongs to.
func (k Kind) Code() ErrorCode {
	switch k {
	case KindExec:
		return CodeExecutionFailed
	case KindGetSecretValue, KindListSecrets, KindDescribeParameters,
		KindGetParametersByPath, KindUnknownService, KindUnknownResponse:
		return CodeService
	case KindCredentials:
		return CodeUnauthorized
	case KindValidation, KindInvalidKey:
		return CodeInvalidInput
	case KindResponseParse:
		return CodeInternal
	case KindHTTPDispatch:
		return CodeNetwork
	case KindIO:
		return CodeIO
	case KindParse:
		return CodeParse
	default:
		return CodeUnknown
	}
}

// IsService reports whether the kind came from a remote service call.
func (k Kind) IsService() bool {
	switch k {
	case KindGetSecretValue, KindListSecrets, KindDescribeParameters,
		KindGetParametersByPath, KindUnknownService, KindUnknownResponse,
		KindCredentials, KindValidation, KindResponseParse, KindHTTPDispatch:
		return true
	default:
		return false
	}
}

// String returns the kind's string value.
func (k Kind) String() string {
	return string(k)
}
