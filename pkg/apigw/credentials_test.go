package apigw_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticCredentialsProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	creds := aws.Credentials{
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "wJalrXUtnFEMI/K7MDENG+bPxRfiCYEXAMPLEKEY",
		SessionToken:    "token",
	}

	provider := apigw.NewStaticCredentialsProvider(creds)

	t.Run("returns the same value on every call", func(t *testing.T) {
		t.Parallel()

		first, err := provider.Credentials(ctx)
		require.NoError(t, err)

		second, err := provider.Credentials(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, "AKIDEXAMPLE", first.AccessKeyID)
		assert.Equal(t, "token", first.SessionToken)
		assert.Empty(t, first.Source)
	})

	t.Run("refresh is a no-op", func(t *testing.T) {
		t.Parallel()

		before, err := provider.Credentials(ctx)
		require.NoError(t, err)

		require.NoError(t, provider.Refresh(ctx))

		after, err := provider.Credentials(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("satisfies the aws provider interface", func(t *testing.T) {
		t.Parallel()

		var awsProvider aws.CredentialsProvider = provider

		got, err := awsProvider.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "AKIDEXAMPLE", got.AccessKeyID)
	})

	t.Run("concurrent reads", func(t *testing.T) {
		t.Parallel()

		var waitGroup sync.WaitGroup

		for range 20 {
			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				got, err := provider.Credentials(ctx)
				assert.NoError(t, err)
				assert.Equal(t, "AKIDEXAMPLE", got.AccessKeyID)
			}()
		}

		waitGroup.Wait()
	})
}

func TestNewStaticKeysProvider(t *testing.T) {
	t.Parallel()

	provider := apigw.NewStaticKeysProvider("AKID", "SECRET", "")

	creds, err := provider.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKID", creds.AccessKeyID)
	assert.Equal(t, "SECRET", creds.SecretAccessKey)
	assert.Empty(t, creds.SessionToken)
}

func TestNewStaticCredentialsProvider_KeepsSource(t *testing.T) {
	t.Parallel()

	provider := apigw.NewStaticCredentialsProvider(aws.Credentials{AccessKeyID: "AKID", Source: "vault"})

	creds, err := provider.Credentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "vault", creds.Source)
}

func TestNewStaticCredentialsProvider_ReturnsValueUnchanged(t *testing.T) {
	t.Parallel()

	in := aws.Credentials{AccessKeyID: "AKID", SecretAccessKey: "S"}
	provider := apigw.NewStaticCredentialsProvider(in)

	got, err := provider.Credentials(context.Background())
	require.NoError(t, err)
	assert.True(t, got == in, "got %+v, want %+v", got, in)

	retrieved, err := provider.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, in, retrieved)
}
