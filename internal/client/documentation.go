package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	internalhttp "github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// DocumentationClient implements apigw.DocumentationClient.
type DocumentationClient struct {
	httpClient *internalhttp.Client
}

// NewDocumentationClient creates a new documentation client.
func NewDocumentationClient(httpClient *internalhttp.Client) *DocumentationClient {
	return &DocumentationClient{
		httpClient: httpClient,
	}
}

func partsPath(restAPIID string, rest ...string) string {
	return buildPath(append([]string{"restapis", restAPIID, "documentation", "parts"}, rest...)...)
}

func versionsPath(restAPIID string, rest ...string) string {
	return buildPath(append([]string{"restapis", restAPIID, "documentation", "versions"}, rest...)...)
}

// CreatePart implements apigw.DocumentationClient.CreatePart.
func (c *DocumentationClient) CreatePart(ctx context.Context, restAPIID string, request *apigw.DocumentationPartCreateRequest) (*apigw.DocumentationPart, error) {
	err := requireParams("creating documentation part", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, partsPath(restAPIID), request)
	if err != nil {
		return nil, fmt.Errorf("creating documentation part: %w", err)
	}

	return decode[apigw.DocumentationPart](resp, "documentation part")
}

// GetPart implements apigw.DocumentationClient.GetPart.
func (c *DocumentationClient) GetPart(ctx context.Context, restAPIID, partID string) (*apigw.DocumentationPart, error) {
	err := requireParams("getting documentation part", "restApiId", restAPIID, "documentationPartId", partID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, partsPath(restAPIID, partID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting documentation part: %w", err)
	}

	return decode[apigw.DocumentationPart](resp, "documentation part")
}

// ListParts implements apigw.DocumentationClient.ListParts.
func (c *DocumentationClient) ListParts(ctx context.Context, restAPIID string, opts *apigw.DocumentationPartListOptions) (*apigw.Page[apigw.DocumentationPart], error) {
	err := requireParams("listing documentation parts", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if opts != nil {
		query = opts.ToValues()
		setIfNotEmpty(query, "type", opts.Type)
		setIfNotEmpty(query, "name", opts.NameQuery)
		setIfNotEmpty(query, "path", opts.Path)
		setIfNotEmpty(query, "locationStatus", opts.LocationStatus)
	}

	resp, err := c.httpClient.Get(ctx, partsPath(restAPIID), query)
	if err != nil {
		return nil, fmt.Errorf("listing documentation parts: %w", err)
	}

	return decode[apigw.Page[apigw.DocumentationPart]](resp, "documentation parts list")
}

// UpdatePart implements apigw.DocumentationClient.UpdatePart.
func (c *DocumentationClient) UpdatePart(ctx context.Context, restAPIID, partID string, request *apigw.UpdateRequest) (*apigw.DocumentationPart, error) {
	err := requireParams("updating documentation part", "restApiId", restAPIID, "documentationPartId", partID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, partsPath(restAPIID, partID), request)
	if err != nil {
		return nil, fmt.Errorf("updating documentation part: %w", err)
	}

	return decode[apigw.DocumentationPart](resp, "documentation part")
}

// DeletePart implements apigw.DocumentationClient.DeletePart.
func (c *DocumentationClient) DeletePart(ctx context.Context, restAPIID, partID string) error {
	err := requireParams("deleting documentation part", "restApiId", restAPIID, "documentationPartId", partID)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, partsPath(restAPIID, partID))
	if err != nil {
		return fmt.Errorf("deleting documentation part: %w", err)
	}

	return nil
}

// ImportParts implements apigw.DocumentationClient.ImportParts. An empty mode
// selects merge.
func (c *DocumentationClient) ImportParts(ctx context.Context, restAPIID string, definition []byte, mode apigw.ImportMode, failOnWarnings bool) (*apigw.DocumentationPartIDs, error) {
	err := requireParams("importing documentation parts", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	if len(definition) == 0 {
		return nil, requireParams("importing documentation parts", "body", "")
	}

	if mode == "" {
		mode = apigw.ImportModeMerge
	}

	query := url.Values{}
	query.Set("mode", string(mode))

	if failOnWarnings {
		query.Set("failonwarnings", strconv.FormatBool(failOnWarnings))
	}

	resp, err := c.httpClient.Do(ctx, &internalhttp.Request{
		Method:  http.MethodPut,
		Path:    partsPath(restAPIID),
		Query:   query,
		RawBody: definition,
	})
	if err != nil {
		return nil, fmt.Errorf("importing documentation parts: %w", err)
	}

	return decode[apigw.DocumentationPartIDs](resp, "documentation import result")
}

// CreateVersion implements apigw.DocumentationClient.CreateVersion.
func (c *DocumentationClient) CreateVersion(ctx context.Context, restAPIID string, request *apigw.DocumentationVersionCreateRequest) (*apigw.DocumentationVersion, error) {
	err := requireParams("creating documentation version", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, versionsPath(restAPIID), request)
	if err != nil {
		return nil, fmt.Errorf("creating documentation version: %w", err)
	}

	return decode[apigw.DocumentationVersion](resp, "documentation version")
}

// GetVersion implements apigw.DocumentationClient.GetVersion.
func (c *DocumentationClient) GetVersion(ctx context.Context, restAPIID, version string) (*apigw.DocumentationVersion, error) {
	err := requireParams("getting documentation version", "restApiId", restAPIID, "documentationVersion", version)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, versionsPath(restAPIID, version), nil)
	if err != nil {
		return nil, fmt.Errorf("getting documentation version: %w", err)
	}

	return decode[apigw.DocumentationVersion](resp, "documentation version")
}

// ListVersions implements apigw.DocumentationClient.ListVersions.
func (c *DocumentationClient) ListVersions(ctx context.Context, restAPIID string, opts *apigw.ListOptions) (*apigw.Page[apigw.DocumentationVersion], error) {
	err := requireParams("listing documentation versions", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, versionsPath(restAPIID), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing documentation versions: %w", err)
	}

	return decode[apigw.Page[apigw.DocumentationVersion]](resp, "documentation versions list")
}

// UpdateVersion implements apigw.DocumentationClient.UpdateVersion.
func (c *DocumentationClient) UpdateVersion(ctx context.Context, restAPIID, version string, request *apigw.UpdateRequest) (*apigw.DocumentationVersion, error) {
	err := requireParams("updating documentation version", "restApiId", restAPIID, "documentationVersion", version)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, versionsPath(restAPIID, version), request)
	if err != nil {
		return nil, fmt.Errorf("updating documentation version: %w", err)
	}

	return decode[apigw.DocumentationVersion](resp, "documentation version")
}

// DeleteVersion implements apigw.DocumentationClient.DeleteVersion.
func (c *DocumentationClient) DeleteVersion(ctx context.Context, restAPIID, version string) error {
	err := requireParams("deleting documentation version", "restApiId", restAPIID, "documentationVersion", version)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, versionsPath(restAPIID, version))
	if err != nil {
		return fmt.Errorf("deleting documentation version: %w", err)
	}

	return nil
}
