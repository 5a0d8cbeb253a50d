package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// Static errors for err113 compliance.
var (
	ErrIncompleteStaticKeys = errors.New("access key ID and secret access key must be set together")
	ErrNoCredentials        = errors.New("no credentials found in the default chain")
)

// AWSProvider adapts an aws.CredentialsProvider to apigw.CredentialsProvider.
// Retrieved credentials are cached until they expire.
type AWSProvider struct {
	cache *aws.CredentialsCache
}

// NewAWSProvider wraps provider in a credentials cache unless it already is one.
func NewAWSProvider(provider aws.CredentialsProvider) *AWSProvider {
	cache, ok := provider.(*aws.CredentialsCache)
	if !ok {
		cache = aws.NewCredentialsCache(provider)
	}

	return &AWSProvider{cache: cache}
}

// Credentials returns cached credentials, retrieving them when expired.
func (p *AWSProvider) Credentials(ctx context.Context) (aws.Credentials, error) {
	creds, err := p.cache.Retrieve(ctx)
	if err != nil {
		return aws.Credentials{}, fmt.Errorf("retrieving credentials: %w", err)
	}

	return creds, nil
}

// Refresh drops the cached credentials and retrieves new ones.
func (p *AWSProvider) Refresh(ctx context.Context) error {
	p.cache.Invalidate()

	_, err := p.Credentials(ctx)

	return err
}

// Retrieve implements aws.CredentialsProvider.
func (p *AWSProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	return p.Credentials(ctx)
}

// Options selects how credentials are resolved.
type Options struct {
	Region          string
	Profile         string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Provider        apigw.CredentialsProvider
	Anonymous       bool
}

// Resolved is the outcome of Resolve. Provider is nil for anonymous access.
type Resolved struct {
	Provider apigw.CredentialsProvider
	Region   string
}

// Resolve picks credentials in order: explicit provider, static keys,
// anonymous, then the default chain (environment, shared files, profile). The
// default chain also fills in the region when none is given.
func Resolve(ctx context.Context, opts Options) (*Resolved, error) {
	switch {
	case opts.Provider != nil:
		return &Resolved{Provider: opts.Provider, Region: opts.Region}, nil
	case opts.AccessKeyID != "" || opts.SecretAccessKey != "":
		if opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
			return nil, ErrIncompleteStaticKeys
		}

		return &Resolved{
			Provider: apigw.NewStaticKeysProvider(opts.AccessKeyID, opts.SecretAccessKey, opts.SessionToken),
			Region:   opts.Region,
		}, nil
	case opts.Anonymous:
		return &Resolved{Region: opts.Region}, nil
	}

	return resolveDefaultChain(ctx, opts)
}

func resolveDefaultChain(ctx context.Context, opts Options) (*Resolved, error) {
	provider, region, err := NewDefaultChainProvider(ctx, opts.Region, opts.Profile)
	if err != nil {
		return nil, err
	}

	return &Resolved{Provider: provider, Region: region}, nil
}

// NewDefaultChainProvider loads the SDK default configuration and returns its
// credentials with the effective region. An empty region or profile leaves
// the choice to the environment and shared config files.
func NewDefaultChainProvider(ctx context.Context, region, profile string) (*AWSProvider, string, error) {
	var loadOpts []func(*config.LoadOptions) error

	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}

	if profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	if awsCfg.Credentials == nil {
		return nil, "", ErrNoCredentials
	}

	return NewAWSProvider(awsCfg.Credentials), awsCfg.Region, nil
}
