package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

func requireMissingParam(t *testing.T, err error, param string) {
	t.Helper()

	require.Error(t, err)
	require.ErrorIs(t, err, apigw.ErrMissingRequiredParameter)
	assert.True(t, apigw.IsClientError(err))
	assert.Contains(t, err.Error(), param)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, apigw.ErrConfigRequired)
	})

	t.Run("endpoint derived from region", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &apigw.Config{
			Region:          "eu-central-1",
			AccessKeyID:     "AKID",
			SecretAccessKey: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://apigateway.eu-central-1.amazonaws.com", client.Endpoint())
		assert.Equal(t, "eu-central-1", client.Region())
	})

	t.Run("explicit endpoint", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &apigw.Config{
			APIEndpoint: "http://localhost:4566/",
			Anonymous:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:4566", client.Endpoint())
	})

	t.Run("no region and no endpoint", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &apigw.Config{Anonymous: true})
		require.ErrorIs(t, err, apigw.ErrRegionOrEndpointRequired)
	})

	t.Run("signed endpoint without region", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &apigw.Config{
			APIEndpoint:     "http://localhost:4566",
			AccessKeyID:     "AKID",
			SecretAccessKey: "secret",
		})
		require.ErrorIs(t, err, apigw.ErrSigningRegionRequired)

		_, err = New(context.Background(), &apigw.Config{
			APIEndpoint:         "http://localhost:4566",
			CredentialsProvider: apigw.NewStaticKeysProvider("AKID", "secret", ""),
		})
		require.ErrorIs(t, err, apigw.ErrSigningRegionRequired)
	})

	t.Run("signed endpoint with region", func(t *testing.T) {
		t.Parallel()

		client, err := New(context.Background(), &apigw.Config{
			Region:          "us-east-1",
			APIEndpoint:     "http://localhost:4566",
			AccessKeyID:     "AKID",
			SecretAccessKey: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", client.Region())
	})

	t.Run("incomplete static keys", func(t *testing.T) {
		t.Parallel()

		_, err := New(context.Background(), &apigw.Config{Region: "us-east-1", AccessKeyID: "AKID"})
		require.Error(t, err)
	})
}

func TestNew_DefaultChain(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	t.Setenv("AWS_ACCESS_KEY_ID", "ENVKEY")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "envsecret")
	t.Setenv("AWS_REGION", "sa-east-1")

	client, err := New(context.Background(), &apigw.Config{})
	require.NoError(t, err)
	assert.Equal(t, "https://apigateway.sa-east-1.amazonaws.com", client.Endpoint())
}

func TestClient_ResourceAccessors(t *testing.T) {
	t.Parallel()

	var client apigw.Client = NewTestClient("http://localhost")

	assert.NotNil(t, client.RestAPIs())
	assert.NotNil(t, client.Resources())
	assert.NotNil(t, client.Methods())
	assert.NotNil(t, client.Integrations())
	assert.NotNil(t, client.Deployments())
	assert.NotNil(t, client.Stages())
	assert.NotNil(t, client.Authorizers())
	assert.NotNil(t, client.Models())
	assert.NotNil(t, client.RequestValidators())
	assert.NotNil(t, client.GatewayResponses())
	assert.NotNil(t, client.Documentation())
	assert.NotNil(t, client.Exports())
	assert.NotNil(t, client.APIKeys())
	assert.NotNil(t, client.UsagePlans())
	assert.NotNil(t, client.DomainNames())
	assert.NotNil(t, client.VpcLinks())
	assert.NotNil(t, client.ClientCertificates())
	assert.NotNil(t, client.Account())
	assert.NotNil(t, client.Tags())
}

func TestClient_SetEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/account", request.URL.Path)
		_, _ = writer.Write([]byte(`{"apiKeyVersion":"4"}`))
	}))
	defer server.Close()

	client := NewTestClient("http://unused.invalid")

	require.ErrorIs(t, client.SetEndpoint(""), apigw.ErrInvalidEndpoint)
	require.NoError(t, client.SetEndpoint(server.URL))
	assert.Equal(t, server.URL, client.Endpoint())

	account, err := client.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4", account.APIKeyVersion)

	err = client.SetEndpoint("http://other.invalid")
	require.ErrorIs(t, err, apigw.ErrEndpointInUse)
	assert.Equal(t, server.URL, client.Endpoint())
}

func TestClient_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		header string
		body   string
		check  func(error) bool
	}{
		{
			name:   "not found by header",
			status: http.StatusNotFound,
			header: "NotFoundException:http://internal.amazon.com/coral/com.amazonaws.backplane.controlplane/",
			body:   `{"message":"Invalid API identifier specified"}`,
			check:  apigw.IsNotFound,
		},
		{
			name:   "conflict by status",
			status: http.StatusConflict,
			body:   `{"message":"already exists"}`,
			check:  apigw.IsConflict,
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			header: "BadRequestException",
			body:   `{"message":"Invalid patch path"}`,
			check:  apigw.IsBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				if testCase.header != "" {
					writer.Header().Set("X-Amzn-ErrorType", testCase.header)
				}

				writer.Header().Set("X-Amzn-RequestId", "req-1")
				writer.WriteHeader(testCase.status)
				_, _ = writer.Write([]byte(testCase.body))
			}))
			defer server.Close()

			api, err := NewTestClient(server.URL).RestAPIs().Get(context.Background(), "a1")
			require.Error(t, err)
			assert.Nil(t, api)
			assert.True(t, testCase.check(err))

			svcErr := &apigw.ServiceError{}
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, testCase.status, svcErr.StatusCode)
			assert.Equal(t, "req-1", svcErr.RequestID)
			assert.Contains(t, err.Error(), "getting REST API")
		})
	}
}

func TestBuildPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/restapis/a1/resources", buildPath("restapis", "a1", "resources"))
	assert.Equal(t, "/tags/arn:aws:apigateway:us-east-1::%2Frestapis%2Fa1", buildPath("tags", "arn:aws:apigateway:us-east-1::/restapis/a1"))
	assert.Equal(t, "/domainnames/api.example.com/basepathmappings/%28none%29", buildPath("domainnames", "api.example.com", "basepathmappings", "(none)"))
}
