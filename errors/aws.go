package errors

import (
	"errors"
	"strings"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/feature/ec2/imds"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sso"
	"github.com/aws/aws-sdk-go-v2/service/ssooidc"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// Operation names as reported by the SDK on smithy.OperationError.
const (
	OperationGetSecretValue      = "GetSecretValue"
	OperationListSecrets         = "ListSecrets"
	OperationDescribeParameters  = "DescribeParameters"
	OperationGetParametersByPath = "GetParametersByPath"
)

// serviceOperations lists the operations with a dedicated kind. Order matters:
// the first entry matching the failed operation wins.
var serviceOperations = []struct {
	service   string
	operation string
	kind      Kind
}{
	{secretsmanager.ServiceID, OperationGetSecretValue, KindGetSecretValue},
	{secretsmanager.ServiceID, OperationListSecrets, KindListSecrets},
	{ssm.ServiceID, OperationDescribeParameters, KindDescribeParameters},
	{ssm.ServiceID, OperationGetParametersByPath, KindGetParametersByPath},
}

// credentialServices are the services the SDK's credential providers call
// while resolving an identity for a request.
var credentialServices = map[string]bool{
	imds.ServiceID:         true,
	sts.ServiceID:          true,
	sso.ServiceID:          true,
	ssooidc.ServiceID:      true,
	"endpoint-credentials": true, // container credentials, internal to the credentials module
}

// FromAWS classifies an error returned by an AWS SDK for Go v2 call.
//
// The error chain is inspected in a fixed order and the first match wins:
//
//  1. a modeled service error: one of the four operation kinds, chosen by the
//     enclosing operation, or KindUnknownService
//  2. a non-2xx response that could not be decoded into a modeled error:
//     KindUnknownResponse with the raw status and body
//  3. a local credential-resolution failure: KindCredentials
//  4. a request parameter or serialization failure: KindValidation
//  5. a response body the SDK could not decode: KindResponseParse
//  6. a transport failure, timeout or cancellation: KindHTTPDispatch, keeping
//     err unchanged
//
// Two credential shapes are checked before the list above, since their chains
// also hold a provider's own transport or service error: a *CredentialsError
// anywhere in the chain, and a credential service's operation error (IMDS,
// STS, SSO) nested below the call's one. An unmodeled service error that
// carries no HTTP response is KindUnknownService.
//
// Errors outside these shapes become KindExec with err kept as the cause.
// FromAWS returns nil for a nil error and returns an *Error already in the
// chain as is, so errors are never classified twice.
func FromAWS(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var credErr *CredentialsError
	if errors.As(err, &credErr) {
		return newMessage(KindCredentials, credErr.Error())
	}

	if msg, ok := credentialProviderFailure(err); ok {
		return newMessage(KindCredentials, msg)
	}

	if e, ok := classifyService(err); ok {
		return e
	}

	if e, ok := classifyUnknownResponse(err); ok {
		return e
	}

	var generic *smithy.GenericAPIError
	if errors.As(err, &generic) {
		return newMessage(serviceKind(err), generic.Error())
	}

	if msg, ok := credentialsMessage(err); ok {
		return newMessage(KindCredentials, msg)
	}

	if details, ok := validationDetails(err); ok {
		return newMessage(KindValidation, details)
	}

	var deserErr *smithy.DeserializationError
	if errors.As(err, &deserErr) {
		return newMessage(KindResponseParse, deserErr.Error())
	}

	if isDispatch(err) {
		return newWrapped(KindHTTPDispatch, err)
	}

	return newWrapped(KindExec, err)
}

// classifyService handles modeled service errors. Unmodeled errors are decoded
// by the SDK into smithy.GenericAPIError and are left to the unknown-response
// branch.
func classifyService(err error) (*Error, bool) {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}

	if _, ok := apiErr.(*smithy.GenericAPIError); ok {
		return nil, false
	}

	return newMessage(serviceKind(err), apiErr.Error()), true
}

// serviceKind picks the kind of a service error from the operation that
// raised it.
func serviceKind(err error) Kind {
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		for _, op := range serviceOperations {
			if opErr.Service() == op.service && opErr.Operation() == op.operation {
				return op.kind
			}
		}
	}

	return KindUnknownService
}

// credentialProviderFailure looks for an operation error of a credential
// service nested below the outermost operation error. The message is what the
// outer operation wrapped, e.g. "get identity: get credentials: ...".
func credentialProviderFailure(err error) (string, bool) {
	var outer *smithy.OperationError
	if !errors.As(err, &outer) || outer.Err == nil {
		return "", false
	}

	for next := outer.Err; next != nil; {
		var inner *smithy.OperationError
		if !errors.As(next, &inner) {
			return "", false
		}
		if credentialServices[inner.Service()] {
			return outer.Err.Error(), true
		}
		next = inner.Err
	}

	return "", false
}

// classifyUnknownResponse handles error responses the SDK received but could
// not map to a modeled error.
func classifyUnknownResponse(err error) (*Error, bool) {
	var respErr *smithyhttp.ResponseError
	if !errors.As(err, &respErr) {
		return nil, false
	}

	status := statusCode(respErr)
	if status >= 200 && status < 300 {
		return nil, false
	}

	return newUnknownResponse(status, responseBody(err)), true
}

func statusCode(respErr *smithyhttp.ResponseError) int {
	if respErr.Response == nil || respErr.Response.Response == nil {
		return 0
	}
	return respErr.Response.StatusCode
}

// responseBody recovers what the SDK kept of an error response body: the
// snapshot taken when decoding failed, or the message of an unmodeled error.
func responseBody(err error) string {
	var deserErr *smithy.DeserializationError
	if errors.As(err, &deserErr) && len(deserErr.Snapshot) > 0 {
		return strings.ToValidUTF8(string(deserErr.Snapshot), "\uFFFD")
	}

	var generic *smithy.GenericAPIError
	if errors.As(err, &generic) {
		if generic.Message != "" {
			return generic.Message
		}
		return generic.Code
	}

	return ""
}

func validationDetails(err error) (string, bool) {
	var params smithy.InvalidParamsError
	if errors.As(err, &params) {
		return params.Error(), true
	}

	var paramsPtr *smithy.InvalidParamsError
	if errors.As(err, &paramsPtr) {
		return paramsPtr.Error(), true
	}

	var serErr *smithy.SerializationError
	if errors.As(err, &serErr) {
		return serErr.Error(), true
	}

	return "", false
}

func isDispatch(err error) bool {
	var sendErr *smithyhttp.RequestSendError
	if errors.As(err, &sendErr) {
		return true
	}

	var timeoutErr *awshttp.ResponseTimeoutError
	if errors.As(err, &timeoutErr) {
		return true
	}

	var canceledErr *smithy.CanceledError
	return errors.As(err, &canceledErr)
}
