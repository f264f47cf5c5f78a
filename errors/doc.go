// Package errors provides the unified error type for cloudwrap.
//
// Failures from three sources are collapsed into one closed taxonomy:
//
//   - AWS SDK for Go v2 calls against Secrets Manager and SSM Parameter Store
//     ([FromAWS])
//   - local I/O ([FromIO])
//   - JSON encoding and decoding ([FromJSON])
//
// Every conversion is total: any non-nil input yields exactly one *[Error],
// tagged by its [Kind]. Conversions are pure functions with no logging and no
// retries, so they are safe to call from any goroutine.
//
// # Service errors
//
// A modeled service error is attributed to the operation that raised it by
// inspecting the enclosing smithy operation error. Four operations have their
// own kinds, checked in this order:
//
//	Secrets Manager GetSecretValue   KindGetSecretValue
//	Secrets Manager ListSecrets      KindListSecrets
//	SSM DescribeParameters           KindDescribeParameters
//	SSM GetParametersByPath          KindGetParametersByPath
//
// Any other operation, or a service error with no operation attached, yields
// KindUnknownService.
//
// # Credential failures
//
// Credentials are resolved lazily inside a call, so a provider failure
// arrives wrapped in the calling operation. When the chain holds an
// operation error from a credential service (IMDS, STS, SSO, SSO OIDC or
// the container endpoint) nested below the outer call, the result is
// KindCredentials rather than a dispatch or service kind.
//
// # Inspecting errors
//
// Kinds survive wrapping:
//
//	if errors.HasKind(err, errors.KindCredentials) {
//	    // prompt for credentials
//	}
//
// For KindIO, KindParse and KindHTTPDispatch the original error is kept and
// remains reachable through the standard errors.Is and errors.As functions.
package errors
