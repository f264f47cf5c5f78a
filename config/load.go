// Package config loads AWS SDK configuration for cloudwrap and verifies that
// credentials can be resolved before any request is sent.
//
// Every failure is returned as a classified *errors.Error. Missing or broken
// profiles and unusable credentials surface as errors.KindCredentials.
//
// Only metadata is logged (region, profile, credential source); key material
// never is.
package config

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	cwerrors "github.com/Blackfynn/cloudwrap/errors"
)

// ErrNilContext is returned by Load when called with a nil context.
var ErrNilContext = errors.New("context cannot be nil")

// Load builds an aws.Config from the default configuration chain and the
// given options, then retrieves credentials once to make sure they are usable.
// Anonymous credentials are accepted as is.
//
// Example usage:
//
//	cfg, err := config.Load(ctx,
//	    config.WithRegion("us-east-1"),
//	    config.WithLogger(slog.Default()),
//	)
func Load(ctx context.Context, opts ...Option) (aws.Config, error) {
	if ctx == nil {
		return aws.Config{}, ErrNilContext
	}

	options := defaultOptions()
	applyOptions(options, opts)

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options.loadOptions()...)
	if err != nil {
		classified := cwerrors.FromAWS(err)
		if options.logger != nil {
			options.logger.ErrorContext(ctx, "Failed to load AWS config",
				"profile", options.profile,
				"error", classified)
		}
		return aws.Config{}, classified
	}

	source, err := verifyCredentials(ctx, cfg.Credentials)
	if err != nil {
		classified := cwerrors.FromAWS(err)
		if options.logger != nil {
			options.logger.ErrorContext(ctx, "Failed to resolve AWS credentials",
				"region", cfg.Region,
				"profile", options.profile,
				"error", classified)
		}
		return aws.Config{}, classified
	}

	if options.logger != nil {
		options.logger.InfoContext(ctx, "Loaded AWS config",
			"region", cfg.Region,
			"profile", options.profile,
			"credential_source", source,
			"endpoint", options.endpoint)
	}

	return cfg, nil
}

func (o *options) loadOptions() []func(*awsconfig.LoadOptions) error {
	var loadOpts []func(*awsconfig.LoadOptions) error

	if o.region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(o.region))
	}
	if o.profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(o.profile))
	}
	if o.endpoint != "" {
		loadOpts = append(loadOpts, awsconfig.WithBaseEndpoint(o.endpoint))
	}
	if o.credentials != nil {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(o.credentials))
	}

	return loadOpts
}

// verifyCredentials retrieves credentials once and returns their source.
// Failures are wrapped in *errors.CredentialsError.
func verifyCredentials(ctx context.Context, provider aws.CredentialsProvider) (string, error) {
	if provider == nil {
		return "", &cwerrors.CredentialsError{Message: "no credentials provider configured"}
	}

	if aws.IsCredentialsProvider(provider, aws.AnonymousCredentials{}) {
		return "anonymous", nil
	}

	creds, err := provider.Retrieve(ctx)
	if err != nil {
		return "", &cwerrors.CredentialsError{Err: err}
	}

	return creds.Source, nil
}
