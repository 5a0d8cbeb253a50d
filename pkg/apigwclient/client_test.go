package apigwclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
	"github.com/fivetwenty-io/apigw/pkg/apigwclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := apigwclient.New(context.Background(), nil)
		require.ErrorIs(t, err, apigw.ErrConfigRequired)
	})

	t.Run("completes endpoint scheme", func(t *testing.T) {
		t.Parallel()

		config := &apigw.Config{APIEndpoint: "apigw.internal.example.com/", Anonymous: true}

		client, err := apigwclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.Equal(t, "https://apigw.internal.example.com", client.Endpoint())
		assert.Equal(t, "apigw.internal.example.com/", config.APIEndpoint)
	})

	t.Run("derives endpoint from region", func(t *testing.T) {
		t.Parallel()

		client, err := apigwclient.NewWithStaticCredentials(context.Background(), "ap-southeast-2", "AKID", "SECRET")
		require.NoError(t, err)
		assert.Equal(t, "https://apigateway.ap-southeast-2.amazonaws.com", client.Endpoint())
	})

	t.Run("rejects half a key pair", func(t *testing.T) {
		t.Parallel()

		_, err := apigwclient.NewWithStaticCredentials(context.Background(), "us-east-1", "AKID", "")
		require.Error(t, err)
	})
}

func TestNewWithCredentials_SignsRequests(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		authorization := request.Header.Get("Authorization")
		assert.True(t, strings.HasPrefix(authorization, "AWS4-HMAC-SHA256 Credential=AKID/"), authorization)
		assert.Contains(t, authorization, "/us-west-2/apigateway/aws4_request")
		assert.Equal(t, "session", request.Header.Get("X-Amz-Security-Token"))

		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]interface{}{"cloudwatchRoleArn": "arn:aws:iam::1:role/r"})
	}))
	defer server.Close()

	client, err := apigwclient.New(context.Background(), &apigw.Config{
		Region:      "us-west-2",
		APIEndpoint: server.URL,
		CredentialsProvider: apigw.NewStaticCredentialsProvider(aws.Credentials{
			AccessKeyID:     "AKID",
			SecretAccessKey: "SECRET",
			SessionToken:    "session",
		}),
	})
	require.NoError(t, err)

	account, err := client.Account().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::1:role/r", account.CloudwatchRoleArn)
}

func TestNewWithEndpoint_Unsigned(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Empty(t, request.Header.Get("Authorization"))
		assert.Equal(t, "/restapis/a1", request.URL.Path)

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"id":"a1","name":"orders"}`))
	}))
	defer server.Close()

	client, err := apigwclient.NewWithEndpoint(context.Background(), server.URL)
	require.NoError(t, err)

	api, err := client.RestAPIs().Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "orders", api.Name)
}

func TestNewWithCredentials_AsyncCall(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(`{"item":[{"id":"a1"},{"id":"a2"}]}`))
	}))
	defer server.Close()

	client, err := apigwclient.NewWithEndpoint(context.Background(), server.URL)
	require.NoError(t, err)

	runnable := apigw.NewReturningRunnable("listing REST APIs", func() (*apigw.Page[apigw.RestAPI], error) {
		return client.RestAPIs().List(context.Background(), nil)
	})

	pages := make(chan *apigw.Page[apigw.RestAPI], 1)
	errs := make(chan error, 1)

	runnable.RunAsync(apigw.CallbackFuncs[*apigw.Page[apigw.RestAPI]]{
		Result: func(page *apigw.Page[apigw.RestAPI]) { pages <- page },
		Error:  func(err error) { errs <- err },
	})

	select {
	case page := <-pages:
		assert.Len(t, page.Items, 2)
	case err := <-errs:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not invoked")
	}
}
