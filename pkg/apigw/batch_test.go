package apigw_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockClient implements apigw.Client for testing. Only the accessors used by
// the batch executor are mocked.
type MockClient struct {
	apigw.Client
	mock.Mock
}

func (m *MockClient) RestAPIs() apigw.RestAPIsClient {
	args := m.Called()

	return args.Get(0).(apigw.RestAPIsClient)
}

func (m *MockClient) APIKeys() apigw.APIKeysClient {
	args := m.Called()

	return args.Get(0).(apigw.APIKeysClient)
}

// MockRestAPIsClient implements apigw.RestAPIsClient for testing.
type MockRestAPIsClient struct {
	apigw.RestAPIsClient
	mock.Mock
}

func (m *MockRestAPIsClient) Create(ctx context.Context, req *apigw.RestAPICreateRequest) (*apigw.RestAPI, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*apigw.RestAPI), args.Error(1)
}

func (m *MockRestAPIsClient) Get(ctx context.Context, restAPIID string) (*apigw.RestAPI, error) {
	args := m.Called(ctx, restAPIID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*apigw.RestAPI), args.Error(1)
}

func (m *MockRestAPIsClient) Update(ctx context.Context, restAPIID string, req *apigw.UpdateRequest) (*apigw.RestAPI, error) {
	args := m.Called(ctx, restAPIID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*apigw.RestAPI), args.Error(1)
}

func (m *MockRestAPIsClient) Delete(ctx context.Context, restAPIID string) error {
	args := m.Called(ctx, restAPIID)

	return args.Error(0)
}

// MockAPIKeysClient implements apigw.APIKeysClient for testing.
type MockAPIKeysClient struct {
	apigw.APIKeysClient
	mock.Mock
}

func (m *MockAPIKeysClient) Get(ctx context.Context, apiKeyID string, includeValue bool) (*apigw.APIKey, error) {
	args := m.Called(ctx, apiKeyID, includeValue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*apigw.APIKey), args.Error(1)
}

func TestBatchExecutor_Execute(t *testing.T) {
	t.Parallel()

	restAPIs := &MockRestAPIsClient{}
	client := &MockClient{}
	client.On("RestAPIs").Return(restAPIs)

	createReq := &apigw.RestAPICreateRequest{Name: "orders"}
	patch := apigw.NewUpdateRequest(apigw.Replace("/description", "v2"))

	restAPIs.On("Create", mock.Anything, createReq).Return(&apigw.RestAPI{ID: "a1", Name: "orders"}, nil)
	restAPIs.On("Get", mock.Anything, "a2").Return(&apigw.RestAPI{ID: "a2"}, nil)
	restAPIs.On("Update", mock.Anything, "a3", patch).Return(&apigw.RestAPI{ID: "a3", Description: "v2"}, nil)
	restAPIs.On("Delete", mock.Anything, "a4").Return(nil)

	operations := apigw.NewBatchBuilder().
		AddCreate("op1", apigw.BatchResourceRestAPI, createReq).
		AddGet("op2", apigw.BatchResourceRestAPI, "a2").
		AddUpdate("op3", apigw.BatchResourceRestAPI, "a3", patch).
		AddDelete("op4", apigw.BatchResourceRestAPI, "a4").
		Build()

	executor := apigw.NewBatchExecutor(client, 2)

	results, err := executor.Execute(context.Background(), operations)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, id := range []string{"op1", "op2", "op3", "op4"} {
		assert.Equal(t, id, results[i].ID)
		assert.True(t, results[i].Success, id)
		require.NoError(t, results[i].Error)
	}

	created, ok := results[0].Data.(*apigw.RestAPI)
	require.True(t, ok)
	assert.Equal(t, "a1", created.ID)

	restAPIs.AssertExpectations(t)
}

func TestBatchExecutor_FailureKeepsCause(t *testing.T) {
	t.Parallel()

	restAPIs := &MockRestAPIsClient{}
	client := &MockClient{}
	client.On("RestAPIs").Return(restAPIs)

	restAPIs.On("Get", mock.Anything, "missing").Return(nil, &apigw.ServiceError{Kind: apigw.KindNotFound, StatusCode: 404})

	results, err := apigw.NewBatchExecutor(client, 1).Execute(context.Background(), []apigw.BatchOperation{
		{ID: "op1", Type: apigw.BatchGet, Resource: apigw.BatchResourceRestAPI, Data: "missing"},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.False(t, results[0].Success)
	assert.True(t, apigw.IsNotFound(results[0].Error))

	var opErr *apigw.OperationError
	require.ErrorAs(t, results[0].Error, &opErr)
	assert.Contains(t, opErr.Description, "op1")
}

func TestBatchExecutor_InvalidOperations(t *testing.T) {
	t.Parallel()

	client := &MockClient{}
	client.On("RestAPIs").Return(&MockRestAPIsClient{})

	results, err := apigw.NewBatchExecutor(client, 0).Execute(context.Background(), []apigw.BatchOperation{
		{ID: "bad-resource", Type: apigw.BatchGet, Resource: "stage", Data: "x"},
		{ID: "bad-type", Type: "rename", Resource: apigw.BatchResourceRestAPI, Data: "x"},
		{ID: "bad-data", Type: apigw.BatchCreate, Resource: apigw.BatchResourceRestAPI, Data: "x"},
	})
	require.NoError(t, err)

	require.ErrorIs(t, results[0].Error, apigw.ErrUnsupportedOperationType)
	require.ErrorIs(t, results[1].Error, apigw.ErrUnsupportedOperationType)
	require.ErrorIs(t, results[2].Error, apigw.ErrInvalidBatchData)
}

func TestBatchExecutor_APIKeyGetOmitsValue(t *testing.T) {
	t.Parallel()

	keys := &MockAPIKeysClient{}
	client := &MockClient{}
	client.On("APIKeys").Return(keys)

	keys.On("Get", mock.Anything, "k1", false).Return(&apigw.APIKey{ID: "k1"}, nil)

	results, err := apigw.NewBatchExecutor(client, 1).Execute(context.Background(),
		apigw.NewBatchBuilder().AddGet("op", apigw.BatchResourceAPIKey, "k1").Build())
	require.NoError(t, err)
	assert.True(t, results[0].Success)

	keys.AssertExpectations(t)
}

func TestBatchExecutor_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	restAPIs := &MockRestAPIsClient{}
	client := &MockClient{}
	client.On("RestAPIs").Return(restAPIs)

	var (
		mu      sync.Mutex
		running int
		peak    int
	)

	restAPIs.On("Get", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		mu.Lock()
		running++
		if running > peak {
			peak = running
		}
		mu.Unlock()

		time.Sleep(10 * time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
	}).Return(&apigw.RestAPI{}, nil)

	builder := apigw.NewBatchBuilder()
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		builder.AddGet(id, apigw.BatchResourceRestAPI, id)
	}

	_, err := apigw.NewBatchExecutor(client, 2).Execute(context.Background(), builder.Build())
	require.NoError(t, err)

	assert.LessOrEqual(t, peak, 2)
}

func TestBatchExecutor_Callback(t *testing.T) {
	t.Parallel()

	restAPIs := &MockRestAPIsClient{}
	client := &MockClient{}
	client.On("RestAPIs").Return(restAPIs)
	restAPIs.On("Delete", mock.Anything, "a1").Return(nil)

	var got *apigw.BatchResult

	_, err := apigw.NewBatchExecutor(client, 1).Execute(context.Background(), []apigw.BatchOperation{{
		ID:       "op",
		Type:     apigw.BatchDelete,
		Resource: apigw.BatchResourceRestAPI,
		Data:     "a1",
		Callback: func(result *apigw.BatchResult) { got = result },
	}})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Success)
}

func TestBatchTransaction_RollsBackCreates(t *testing.T) {
	t.Parallel()

	restAPIs := &MockRestAPIsClient{}
	client := &MockClient{}
	client.On("RestAPIs").Return(restAPIs)

	okReq := &apigw.RestAPICreateRequest{Name: "ok"}
	badReq := &apigw.RestAPICreateRequest{Name: "bad"}

	restAPIs.On("Create", mock.Anything, okReq).Return(&apigw.RestAPI{ID: "created-1"}, nil)
	restAPIs.On("Create", mock.Anything, badReq).Return(nil, errors.New("limit"))
	restAPIs.On("Delete", mock.Anything, "created-1").Return(nil).Once()

	tx := apigw.NewBatchTransaction(apigw.NewBatchExecutor(client, 1)).
		Add(apigw.BatchOperation{ID: "ok", Type: apigw.BatchCreate, Resource: apigw.BatchResourceRestAPI, Data: okReq}).
		Add(apigw.BatchOperation{ID: "bad", Type: apigw.BatchCreate, Resource: apigw.BatchResourceRestAPI, Data: badReq})

	_, err := tx.Execute(context.Background())
	require.ErrorIs(t, err, apigw.ErrTransactionFailed)

	restAPIs.AssertExpectations(t)
}

func TestBatchTransaction_NoRollback(t *testing.T) {
	t.Parallel()

	restAPIs := &MockRestAPIsClient{}
	client := &MockClient{}
	client.On("RestAPIs").Return(restAPIs)

	restAPIs.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("limit"))

	_, err := apigw.NewBatchTransaction(apigw.NewBatchExecutor(client, 1)).
		SetRollback(false).
		Add(apigw.BatchOperation{ID: "bad", Type: apigw.BatchCreate, Resource: apigw.BatchResourceRestAPI, Data: &apigw.RestAPICreateRequest{}}).
		Execute(context.Background())
	require.ErrorIs(t, err, apigw.ErrTransactionFailed)

	restAPIs.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
