package config

import (
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// options holds the settings used to build an aws.Config.
type options struct {
	region      string
	profile     string
	endpoint    string
	credentials aws.CredentialsProvider
	logger      *slog.Logger
}

// Option is a functional option for configuring Load.
type Option func(*options)

// WithRegion sets the AWS region. When empty, the region is taken from the
// environment or the shared config file.
func WithRegion(region string) Option {
	return func(opts *options) {
		opts.region = region
	}
}

// WithProfile selects a named profile from the shared config and credentials
// files. A profile that does not exist is a credentials failure.
func WithProfile(profile string) Option {
	return func(opts *options) {
		opts.profile = profile
	}
}

// WithEndpoint overrides the base endpoint of every service client built from
// the loaded config, e.g. http://localhost:4566 for LocalStack.
func WithEndpoint(endpoint string) Option {
	return func(opts *options) {
		opts.endpoint = endpoint
	}
}

// WithCredentialsProvider replaces the default credential chain.
func WithCredentialsProvider(provider aws.CredentialsProvider) Option {
	return func(opts *options) {
		opts.credentials = provider
	}
}

// WithLogger configures a logger for config loading.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *options {
	return &options{
		logger: nil, // No default logger
	}
}

// applyOptions applies the given options to the config options.
func applyOptions(opts *options, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
