package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/fivetwenty-io/apigw/internal/http"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// TagsClient implements apigw.TagsClient.
type TagsClient struct {
	httpClient *internalhttp.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *internalhttp.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// Get implements apigw.TagsClient.Get.
func (c *TagsClient) Get(ctx context.Context, resourceArn string) (apigw.Tags, error) {
	err := requireParams("getting tags", "resourceArn", resourceArn)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, buildPath("tags", resourceArn), nil)
	if err != nil {
		return nil, fmt.Errorf("getting tags: %w", err)
	}

	tags, err := apigw.DecodeTags(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing tags: %w", err)
	}

	return tags, nil
}

// Tag implements apigw.TagsClient.Tag.
func (c *TagsClient) Tag(ctx context.Context, resourceArn string, tags apigw.Tags) error {
	err := requireParams("tagging resource", "resourceArn", resourceArn)
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		return requireParams("tagging resource", "tags", "")
	}

	_, err = c.httpClient.Put(ctx, buildPath("tags", resourceArn), apigw.NewTagsBody(tags))
	if err != nil {
		return fmt.Errorf("tagging resource: %w", err)
	}

	return nil
}

// Untag implements apigw.TagsClient.Untag.
func (c *TagsClient) Untag(ctx context.Context, resourceArn string, tagKeys []string) error {
	err := requireParams("untagging resource", "resourceArn", resourceArn)
	if err != nil {
		return err
	}

	if len(tagKeys) == 0 {
		return requireParams("untagging resource", "tagKeys", "")
	}

	query := url.Values{}
	for _, key := range tagKeys {
		query.Add("tagKeys", key)
	}

	_, err = c.httpClient.Do(ctx, &internalhttp.Request{
		Method: http.MethodDelete,
		Path:   buildPath("tags", resourceArn),
		Query:  query,
	})
	if err != nil {
		return fmt.Errorf("untagging resource: %w", err)
	}

	return nil
}
