package apigw

import (
	"net/url"
	"strconv"
	"strings"
)

// Page is one page of a list response. API Gateway returns the items under
// "item" and an opaque continuation token under "position".
type Page[T any] struct {
	Items    []T    `json:"item"               yaml:"items"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
}

// HasMore reports whether another page is available.
func (p *Page[T]) HasMore() bool {
	return p != nil && p.Position != ""
}

// ListOptions are the common paging options of list operations.
type ListOptions struct {
	// Limit is the maximum number of items per page (API Gateway caps it at 500).
	Limit int
	// Position is the continuation token returned by the previous page.
	Position string
}

// NewListOptions returns options with the default page size.
func NewListOptions() *ListOptions {
	return &ListOptions{Limit: DefaultPageLimit}
}

// DefaultPageLimit is the page size used when none is given.
const DefaultPageLimit = 25

// MaxPageLimit is the largest page size the service accepts.
const MaxPageLimit = 500

// WithLimit sets the page size.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	o.Limit = limit

	return o
}

// WithPosition sets the continuation token.
func (o *ListOptions) WithPosition(position string) *ListOptions {
	o.Position = position

	return o
}

// ToValues converts the options to query parameters.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Limit > 0 {
		limit := o.Limit
		if limit > MaxPageLimit {
			limit = MaxPageLimit
		}

		values.Set("limit", strconv.Itoa(limit))
	}

	if o.Position != "" {
		values.Set("position", o.Position)
	}

	return values
}

// PatchOp is the operation of a PatchOperation.
type PatchOp string

// Patch operations accepted by API Gateway update calls.
const (
	PatchOpAdd     PatchOp = "add"
	PatchOpRemove  PatchOp = "remove"
	PatchOpReplace PatchOp = "replace"
	PatchOpMove    PatchOp = "move"
	PatchOpCopy    PatchOp = "copy"
	PatchOpTest    PatchOp = "test"
)

// PatchOperation is a single JSON-patch style update.
type PatchOperation struct {
	Op    PatchOp `json:"op"              yaml:"op"`
	Path  string  `json:"path"            yaml:"path"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
	From  string  `json:"from,omitempty"  yaml:"from,omitempty"`
}

// UpdateRequest is the body of every update operation.
type UpdateRequest struct {
	PatchOperations []PatchOperation `json:"patchOperations" yaml:"patchOperations"`
}

// NewUpdateRequest creates an update request from operations.
func NewUpdateRequest(ops ...PatchOperation) *UpdateRequest {
	return &UpdateRequest{PatchOperations: ops}
}

// Replace returns a replace operation.
func Replace(path, value string) PatchOperation {
	return PatchOperation{Op: PatchOpReplace, Path: path, Value: &value}
}

// Add returns an add operation.
func Add(path, value string) PatchOperation {
	return PatchOperation{Op: PatchOpAdd, Path: path, Value: &value}
}

// Remove returns a remove operation.
func Remove(path string) PatchOperation {
	return PatchOperation{Op: PatchOpRemove, Path: path}
}

// EscapePatchPath escapes a path segment for use in a patch path, following
// the JSON pointer rules ("~" becomes "~0", "/" becomes "~1").
func EscapePatchPath(segment string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(segment)
}

// Tags is a set of resource tags.
type Tags map[string]string

// EndpointConfiguration describes the endpoint types of an API or domain.
type EndpointConfiguration struct {
	Types          []string `json:"types,omitempty"          yaml:"types,omitempty"`
	VpcEndpointIDs []string `json:"vpcEndpointIds,omitempty" yaml:"vpcEndpointIds,omitempty"`
}

// Endpoint types.
const (
	EndpointTypeEdge     = "EDGE"
	EndpointTypeRegional = "REGIONAL"
	EndpointTypePrivate  = "PRIVATE"
)

// String returns a pointer to s.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}

// Float64 returns a pointer to f.
func Float64(f float64) *float64 {
	return &f
}
