package apigw_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/apigw/pkg/apigw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestResource struct {
	ID string
}

// pagedSource serves pages keyed by position; "" is the first page.
type pagedSource struct {
	pages map[string]*apigw.Page[TestResource]
	seen  []*apigw.ListOptions
}

func (s *pagedSource) List(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[TestResource], error) {
	s.seen = append(s.seen, opts)

	page, ok := s.pages[opts.Position]
	if !ok {
		return &apigw.Page[TestResource]{}, nil
	}

	return page, nil
}

func threePages() *pagedSource {
	return &pagedSource{
		pages: map[string]*apigw.Page[TestResource]{
			"": {
				Items:    []TestResource{{ID: "1"}, {ID: "2"}},
				Position: "p2",
			},
			"p2": {
				Items:    []TestResource{{ID: "3"}, {ID: "4"}},
				Position: "p3",
			},
			"p3": {
				Items: []TestResource{{ID: "5"}},
			},
		},
	}
}

func ids(items []TestResource) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}

	return out
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	source := threePages()

	resources, err := apigw.FetchAllPages(context.Background(), source.List, &apigw.PaginationOptions{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(resources))

	require.Len(t, source.seen, 3)
	assert.Equal(t, 2, source.seen[0].Limit)
	assert.Equal(t, "p3", source.seen[2].Position)
}

func TestFetchAllPages_WithMaxPages(t *testing.T) {
	t.Parallel()

	source := threePages()

	resources, err := apigw.FetchAllPages(context.Background(), source.List, &apigw.PaginationOptions{PageSize: 2, MaxPages: 2})
	require.NoError(t, err)
	assert.Len(t, resources, 4)
}

func TestFetchAllPages_Error(t *testing.T) {
	t.Parallel()

	errList := errors.New("list failed")
	fetch := func(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[TestResource], error) {
		return nil, errList
	}

	_, err := apigw.FetchAllPages(context.Background(), fetch, nil)
	require.ErrorIs(t, err, errList)
}

func TestPageIterator(t *testing.T) {
	t.Parallel()

	iterator := apigw.NewPageIterator(context.Background(), threePages().List, nil)

	assert.True(t, iterator.HasNext())

	var got []string

	for iterator.HasNext() {
		item, err := iterator.Next()
		require.NoError(t, err)

		got = append(got, item.ID)
	}

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got)

	_, err := iterator.Next()
	require.ErrorIs(t, err, apigw.ErrNoMoreItems)
}

func TestPageIterator_All(t *testing.T) {
	t.Parallel()

	all, err := apigw.NewPageIterator(context.Background(), threePages().List, nil).All()
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestPageIterator_ForEach(t *testing.T) {
	t.Parallel()

	source := &pagedSource{
		pages: map[string]*apigw.Page[TestResource]{
			"": {Items: []TestResource{{ID: "1"}, {ID: "2"}}},
		},
	}

	var collected []string

	err := apigw.NewPageIterator(context.Background(), source.List, nil).ForEach(func(resource TestResource) error {
		collected = append(collected, resource.ID)

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, collected)
}

func TestPageIterator_EmptyList(t *testing.T) {
	t.Parallel()

	source := &pagedSource{pages: map[string]*apigw.Page[TestResource]{}}

	all, err := apigw.NewPageIterator(context.Background(), source.List, nil).All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStreamPages(t *testing.T) {
	t.Parallel()

	var allResources []TestResource

	pageCount := 0

	for result := range apigw.StreamPages(context.Background(), threePages().List, nil) {
		require.NoError(t, result.Err)

		allResources = append(allResources, result.Items...)
		pageCount++
	}

	assert.Equal(t, 3, pageCount)
	assert.Len(t, allResources, 5)
}

func TestListOptions_ToValues(t *testing.T) {
	t.Parallel()

	values := apigw.NewListOptions().WithLimit(1000).WithPosition("abc").ToValues()
	assert.Equal(t, "500", values.Get("limit"))
	assert.Equal(t, "abc", values.Get("position"))

	var nilOpts *apigw.ListOptions
	assert.Empty(t, nilOpts.ToValues())
}
