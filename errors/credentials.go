package errors

import (
	"errors"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/processcreds"
	"github.com/aws/aws-sdk-go-v2/credentials/ssocreds"
)

// CredentialsError reports that AWS credentials could not be resolved
// locally. It is the raw failure handed to FromAWS, which turns it into a
// KindCredentials error.
type CredentialsError struct {
	// Message describes the failure. When empty, the cause's text is used.
	Message string

	// Err is the underlying provider error, if any.
	Err error
}

// Error implements the error interface.
func (e *CredentialsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "credentials unavailable"
}

// Unwrap returns the underlying provider error.
func (e *CredentialsError) Unwrap() error {
	return e.Err
}

// credentialsMessage returns the message of the first SDK credential-resolution
// failure found in err's chain.
func credentialsMessage(err error) (string, bool) {
	var signErr *v4.SigningError
	if errors.As(err, &signErr) {
		return signErr.Error(), true
	}

	var emptyErr *credentials.StaticCredentialsEmptyError
	if errors.As(err, &emptyErr) {
		return emptyErr.Error(), true
	}

	var processErr *processcreds.ProviderError
	if errors.As(err, &processErr) {
		return processErr.Error(), true
	}

	var ssoErr *ssocreds.InvalidTokenError
	if errors.As(err, &ssoErr) {
		return ssoErr.Error(), true
	}

	var profileErr awsconfig.SharedConfigProfileNotExistError
	if errors.As(err, &profileErr) {
		return profileErr.Error(), true
	}

	var loadErr awsconfig.SharedConfigLoadError
	if errors.As(err, &loadErr) {
		return loadErr.Error(), true
	}

	var assumeErr awsconfig.SharedConfigAssumeRoleError
	if errors.As(err, &assumeErr) {
		return assumeErr.Error(), true
	}

	var arnErr awsconfig.CredentialRequiresARNError
	if errors.As(err, &arnErr) {
		return arnErr.Error(), true
	}

	var mfaErr awsconfig.AssumeRoleTokenProviderNotSetError
	if errors.As(err, &mfaErr) {
		return mfaErr.Error(), true
	}

	return "", false
}
