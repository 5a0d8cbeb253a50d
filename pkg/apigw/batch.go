package apigw

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/apigw/internal/constants"
)

// Batch operation types.
const (
	BatchCreate = "create"
	BatchUpdate = "update"
	BatchDelete = "delete"
	BatchGet    = "get"
)

// Batch resource names.
const (
	BatchResourceRestAPI    = "restapi"
	BatchResourceAPIKey     = "apikey"
	BatchResourceUsagePlan  = "usageplan"
	BatchResourceVpcLink    = "vpclink"
	BatchResourceDomainName = "domainname"
)

// UpdateData pairs an identifier with the patch to apply to it.
type UpdateData struct {
	ID      string
	Request *UpdateRequest
}

// BatchOperation represents a single operation in a batch. Data is the create
// request for creates, an *UpdateData for updates and the identifier string
// for gets and deletes.
type BatchOperation struct {
	ID       string
	Type     string
	Resource string
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// crudOps is the subset of a resource client the executor drives.
type crudOps[TCreate, TResp any] interface {
	Create(ctx context.Context, req *TCreate) (*TResp, error)
	Get(ctx context.Context, id string) (*TResp, error)
	Update(ctx context.Context, id string, req *UpdateRequest) (*TResp, error)
	Delete(ctx context.Context, id string) error
}

// runCRUD dispatches operation to client.
func runCRUD[TCreate, TResp any](ctx context.Context, client crudOps[TCreate, TResp], operation BatchOperation) (interface{}, error) {
	switch operation.Type {
	case BatchCreate:
		req, ok := operation.Data.(*TCreate)
		if !ok {
			return nil, fmt.Errorf("%w: %s create", ErrInvalidBatchData, operation.Resource)
		}

		return client.Create(ctx, req)
	case BatchUpdate:
		data, ok := operation.Data.(*UpdateData)
		if !ok {
			return nil, fmt.Errorf("%w: %s update", ErrInvalidBatchData, operation.Resource)
		}

		return client.Update(ctx, data.ID, data.Request)
	case BatchDelete:
		id, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s delete", ErrInvalidBatchData, operation.Resource)
		}

		return nil, client.Delete(ctx, id)
	case BatchGet:
		id, ok := operation.Data.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s get", ErrInvalidBatchData, operation.Resource)
		}

		return client.Get(ctx, id)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}
}

// apiKeyOps drops the includeValue flag so API keys fit crudOps.
type apiKeyOps struct {
	APIKeysClient
}

func (a apiKeyOps) Get(ctx context.Context, id string) (*APIKey, error) {
	return a.APIKeysClient.Get(ctx, id, false)
}

// BatchExecutor executes batch operations concurrently.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor. Concurrency defaults to
// constants.DefaultConcurrencyLimit.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the timeout of each operation.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations, at most concurrency at a time. Each
// operation runs asynchronously through a ReturningRunnable; results keep the
// order of operations. Operations not started before ctx is done fail with
// the context error.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		select {
		case semaphore <- struct{}{}:
		case <-ctx.Done():
			results[index] = BatchResult{ID: operation.ID, Error: ctx.Err()}

			continue
		}

		waitGroup.Add(1)

		start := time.Now()
		opCtx, cancel := context.WithTimeout(ctx, b.timeout)

		runnable := NewReturningRunnable(
			fmt.Sprintf("batch %s %s %q", operation.Type, operation.Resource, operation.ID),
			func() (interface{}, error) {
				return b.executeOperation(opCtx, operation)
			},
		)

		finish := func(result BatchResult) {
			cancel()

			result.ID = operation.ID
			result.Duration = time.Since(start)
			results[index] = result

			if operation.Callback != nil {
				operation.Callback(&result)
			}

			<-semaphore
			waitGroup.Done()
		}

		runnable.RunAsync(CallbackFuncs[interface{}]{
			Result: func(data interface{}) { finish(BatchResult{Success: true, Data: data}) },
			Error:  func(err error) { finish(BatchResult{Error: err}) },
		})
	}

	waitGroup.Wait()

	return results, nil
}

// executeOperation executes a single operation.
func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) (interface{}, error) {
	switch operation.Resource {
	case BatchResourceRestAPI:
		return runCRUD[RestAPICreateRequest, RestAPI](ctx, b.client.RestAPIs(), operation)
	case BatchResourceAPIKey:
		return runCRUD[APIKeyCreateRequest, APIKey](ctx, apiKeyOps{b.client.APIKeys()}, operation)
	case BatchResourceUsagePlan:
		return runCRUD[UsagePlanCreateRequest, UsagePlan](ctx, b.client.UsagePlans(), operation)
	case BatchResourceVpcLink:
		return runCRUD[VpcLinkCreateRequest, VpcLink](ctx, b.client.VpcLinks(), operation)
	case BatchResourceDomainName:
		return runCRUD[DomainNameCreateRequest, DomainName](ctx, b.client.DomainNames(), operation)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Resource)
	}
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddCreate adds a creation operation. request must be the create request of
// resource, e.g. *RestAPICreateRequest for BatchResourceRestAPI.
func (b *BatchBuilder) AddCreate(id, resource string, request interface{}) *BatchBuilder {
	return b.AddOperation(BatchOperation{ID: id, Type: BatchCreate, Resource: resource, Data: request})
}

// AddUpdate adds an update operation.
func (b *BatchBuilder) AddUpdate(id, resource, resourceID string, request *UpdateRequest) *BatchBuilder {
	return b.AddOperation(BatchOperation{
		ID:       id,
		Type:     BatchUpdate,
		Resource: resource,
		Data:     &UpdateData{ID: resourceID, Request: request},
	})
}

// AddDelete adds a deletion operation.
func (b *BatchBuilder) AddDelete(id, resource, resourceID string) *BatchBuilder {
	return b.AddOperation(BatchOperation{ID: id, Type: BatchDelete, Resource: resource, Data: resourceID})
}

// AddGet adds a get operation.
func (b *BatchBuilder) AddGet(id, resource, resourceID string) *BatchBuilder {
	return b.AddOperation(BatchOperation{ID: id, Type: BatchGet, Resource: resource, Data: resourceID})
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}

// BatchTransaction runs a batch and deletes what it created when any
// operation fails.
type BatchTransaction struct {
	operations []BatchOperation
	results    []BatchResult
	executor   *BatchExecutor
	rollback   bool
}

// NewBatchTransaction creates a new batch transaction.
func NewBatchTransaction(executor *BatchExecutor) *BatchTransaction {
	return &BatchTransaction{
		executor:   executor,
		operations: make([]BatchOperation, 0),
		rollback:   true,
	}
}

// Add adds an operation to the transaction.
func (t *BatchTransaction) Add(operation BatchOperation) *BatchTransaction {
	t.operations = append(t.operations, operation)

	return t
}

// SetRollback sets whether to rollback on failure.
func (t *BatchTransaction) SetRollback(rollback bool) *BatchTransaction {
	t.rollback = rollback

	return t
}

// Execute executes the transaction. Updates and deletes are not reverted.
func (t *BatchTransaction) Execute(ctx context.Context) ([]BatchResult, error) {
	results, err := t.executor.Execute(ctx, t.operations)
	t.results = results

	var failedOps []string

	for _, result := range results {
		if !result.Success {
			failedOps = append(failedOps, result.ID)
		}
	}

	if len(failedOps) > 0 {
		if t.rollback {
			t.performRollback(ctx)
		}

		return results, fmt.Errorf("%w, %d operations failed: %v", ErrTransactionFailed, len(failedOps), failedOps)
	}

	return results, err
}

// performRollback deletes every resource created by the transaction.
func (t *BatchTransaction) performRollback(ctx context.Context) {
	var rollbackOps []BatchOperation

	for i, result := range t.results {
		original := t.operations[i]
		if !result.Success || original.Type != BatchCreate {
			continue
		}

		createdID := createdResourceID(result.Data)
		if createdID == "" {
			continue
		}

		rollbackOps = append(rollbackOps, BatchOperation{
			ID:       "rollback_" + original.ID,
			Type:     BatchDelete,
			Resource: original.Resource,
			Data:     createdID,
		})
	}

	if len(rollbackOps) > 0 {
		_, _ = t.executor.Execute(ctx, rollbackOps)
	}
}

func createdResourceID(data interface{}) string {
	switch created := data.(type) {
	case *RestAPI:
		return created.ID
	case *APIKey:
		return created.ID
	case *UsagePlan:
		return created.ID
	case *VpcLink:
		return created.ID
	case *DomainName:
		return created.DomainName
	default:
		return ""
	}
}
