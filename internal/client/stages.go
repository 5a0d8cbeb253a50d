package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// StagesClient implements apigw.StagesClient.
type StagesClient struct {
	httpClient *http.Client
}

// NewStagesClient creates a new stages client.
func NewStagesClient(httpClient *http.Client) *StagesClient {
	return &StagesClient{
		httpClient: httpClient,
	}
}

// Create implements apigw.StagesClient.Create.
func (c *StagesClient) Create(ctx context.Context, restAPIID string, request *apigw.StageCreateRequest) (*apigw.Stage, error) {
	err := requireParams("creating stage", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, buildPath("restapis", restAPIID, "stages"), request)
	if err != nil {
		return nil, fmt.Errorf("creating stage: %w", err)
	}

	return decode[apigw.Stage](resp, "stage")
}

// Get implements apigw.StagesClient.Get.
func (c *StagesClient) Get(ctx context.Context, restAPIID, stageName string) (*apigw.Stage, error) {
	err := requireParams("getting stage", "restApiId", restAPIID, "stageName", stageName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "stages", stageName), nil)
	if err != nil {
		return nil, fmt.Errorf("getting stage: %w", err)
	}

	return decode[apigw.Stage](resp, "stage")
}

// List implements apigw.StagesClient.List.
func (c *StagesClient) List(ctx context.Context, restAPIID, deploymentID string) ([]apigw.Stage, error) {
	err := requireParams("listing stages", "restApiId", restAPIID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	setIfNotEmpty(query, "deploymentId", deploymentID)

	resp, err := c.httpClient.Get(ctx, buildPath("restapis", restAPIID, "stages"), query)
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}

	stages, err := apigw.DecodeStageList(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing stages list: %w", err)
	}

	return stages, nil
}

// Update implements apigw.StagesClient.Update.
func (c *StagesClient) Update(ctx context.Context, restAPIID, stageName string, request *apigw.UpdateRequest) (*apigw.Stage, error) {
	err := requireParams("updating stage", "restApiId", restAPIID, "stageName", stageName)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Patch(ctx, buildPath("restapis", restAPIID, "stages", stageName), request)
	if err != nil {
		return nil, fmt.Errorf("updating stage: %w", err)
	}

	return decode[apigw.Stage](resp, "stage")
}

// Delete implements apigw.StagesClient.Delete.
func (c *StagesClient) Delete(ctx context.Context, restAPIID, stageName string) error {
	err := requireParams("deleting stage", "restApiId", restAPIID, "stageName", stageName)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "stages", stageName))
	if err != nil {
		return fmt.Errorf("deleting stage: %w", err)
	}

	return nil
}

// FlushCache implements apigw.StagesClient.FlushCache.
func (c *StagesClient) FlushCache(ctx context.Context, restAPIID, stageName string) error {
	err := requireParams("flushing stage cache", "restApiId", restAPIID, "stageName", stageName)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "stages", stageName, "cache", "data"))
	if err != nil {
		return fmt.Errorf("flushing stage cache: %w", err)
	}

	return nil
}

// FlushAuthorizersCache implements apigw.StagesClient.FlushAuthorizersCache.
func (c *StagesClient) FlushAuthorizersCache(ctx context.Context, restAPIID, stageName string) error {
	err := requireParams("flushing authorizers cache", "restApiId", restAPIID, "stageName", stageName)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Delete(ctx, buildPath("restapis", restAPIID, "stages", stageName, "cache", "authorizers"))
	if err != nil {
		return fmt.Errorf("flushing authorizers cache: %w", err)
	}

	return nil
}
