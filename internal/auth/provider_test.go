package auth_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/apigw/internal/auth"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

type countingProvider struct {
	calls atomic.Int32
	err   error
}

func (p *countingProvider) Retrieve(ctx context.Context) (aws.Credentials, error) {
	n := p.calls.Add(1)
	if p.err != nil {
		return aws.Credentials{}, p.err
	}

	return aws.Credentials{
		AccessKeyID:     "AKID",
		SecretAccessKey: "SECRET",
		SessionToken:    string(rune('0' + n)),
	}, nil
}

func TestAWSProvider_CachesAndRefreshes(t *testing.T) {
	t.Parallel()

	source := &countingProvider{}
	provider := auth.NewAWSProvider(source)

	first, err := provider.Credentials(context.Background())
	require.NoError(t, err)

	second, err := provider.Credentials(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), source.calls.Load())

	require.NoError(t, provider.Refresh(context.Background()))
	assert.Equal(t, int32(2), source.calls.Load())

	third, err := provider.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", third.SessionToken)
}

func TestAWSProvider_Error(t *testing.T) {
	t.Parallel()

	errExpired := errors.New("token expired")
	provider := auth.NewAWSProvider(&countingProvider{err: errExpired})

	_, err := provider.Credentials(context.Background())
	require.ErrorIs(t, err, errExpired)
	require.ErrorIs(t, provider.Refresh(context.Background()), errExpired)
}

func TestAWSProvider_ReusesExistingCache(t *testing.T) {
	t.Parallel()

	source := &countingProvider{}
	cache := aws.NewCredentialsCache(source)

	_, err := auth.NewAWSProvider(cache).Credentials(context.Background())
	require.NoError(t, err)

	_, err = cache.Retrieve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(1), source.calls.Load())
}

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	explicit := apigw.NewStaticKeysProvider("EXPLICIT", "secret", "")

	t.Run("explicit provider wins", func(t *testing.T) {
		t.Parallel()

		resolved, err := auth.Resolve(ctx, auth.Options{
			Region:          "eu-west-1",
			Provider:        explicit,
			AccessKeyID:     "IGNORED",
			SecretAccessKey: "ignored",
			Anonymous:       true,
		})
		require.NoError(t, err)
		assert.Same(t, explicit, resolved.Provider)
		assert.Equal(t, "eu-west-1", resolved.Region)
	})

	t.Run("static keys", func(t *testing.T) {
		t.Parallel()

		resolved, err := auth.Resolve(ctx, auth.Options{
			AccessKeyID:     "AKID",
			SecretAccessKey: "secret",
			SessionToken:    "token",
		})
		require.NoError(t, err)

		creds, err := resolved.Provider.Credentials(ctx)
		require.NoError(t, err)
		assert.Equal(t, "AKID", creds.AccessKeyID)
		assert.Equal(t, "token", creds.SessionToken)
	})

	t.Run("half a key pair", func(t *testing.T) {
		t.Parallel()

		_, err := auth.Resolve(ctx, auth.Options{AccessKeyID: "AKID"})
		require.ErrorIs(t, err, auth.ErrIncompleteStaticKeys)
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()

		resolved, err := auth.Resolve(ctx, auth.Options{Region: "us-east-1", Anonymous: true})
		require.NoError(t, err)
		assert.Nil(t, resolved.Provider)
		assert.Equal(t, "us-east-1", resolved.Region)
	})
}

func TestResolve_DefaultChainFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "ENVKEY")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "envsecret")
	t.Setenv("AWS_REGION", "ap-southeast-2")

	resolved, err := auth.Resolve(context.Background(), auth.Options{})
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", resolved.Region)

	creds, err := resolved.Provider.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ENVKEY", creds.AccessKeyID)
}

func TestResolve_ExplicitRegionOverridesEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "ENVKEY")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "envsecret")
	t.Setenv("AWS_REGION", "ap-southeast-2")

	resolved, err := auth.Resolve(context.Background(), auth.Options{Region: "us-west-2"})
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", resolved.Region)
}
