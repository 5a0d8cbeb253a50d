package apigw

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
)

// CredentialsProvider supplies the credentials used to sign requests.
type CredentialsProvider interface {
	// Credentials returns the current credentials.
	Credentials(ctx context.Context) (aws.Credentials, error)
	// Refresh forces the provider to reload its credentials, if it can.
	Refresh(ctx context.Context) error
}

// StaticCredentialsProvider returns a fixed credential value. It never
// refreshes and never fails.
type StaticCredentialsProvider struct {
	creds aws.Credentials
}

// NewStaticCredentialsProvider creates a provider for the given credentials.
func NewStaticCredentialsProvider(creds aws.Credentials) *StaticCredentialsProvider {
	return &StaticCredentialsProvider{creds: creds}
}

// NewStaticKeysProvider creates a provider from an access key pair and an
// optional session token.
func NewStaticKeysProvider(accessKeyID, secretAccessKey, sessionToken string) *StaticCredentialsProvider {
	return NewStaticCredentialsProvider(aws.Credentials{
		AccessKeyID:     accessKeyID,
		SecretAccessKey: secretAccessKey,
		SessionToken:    sessionToken,
	})
}

// Credentials returns the credentials passed at construction.
func (p *StaticCredentialsProvider) Credentials(ctx context.Context) (aws.Credentials, error) {
	return p.creds, nil
}

// Refresh is a no-op.
func (p *StaticCredentialsProvider) Refresh(ctx context.Context) error {
	return nil
}

// Retrieve implements aws.CredentialsProvider so the same value can be handed
// to aws-sdk-go-v2 service clients.
func (p *StaticCredentialsProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	return p.creds, nil
}
