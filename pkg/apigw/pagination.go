package apigw

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/apigw/internal/constants"
)

// PageFetcher fetches one page. List methods that take only ListOptions can
// be passed directly, e.g. client.RestAPIs().List.
type PageFetcher[T any] func(ctx context.Context, opts *ListOptions) (*Page[T], error)

// PaginationOptions controls FetchAllPages and StreamPages.
type PaginationOptions struct {
	// PageSize is the limit sent with each request.
	PageSize int
	// MaxPages stops after this many pages. Zero means no limit beyond a
	// safety cap.
	MaxPages int
}

// DefaultPaginationOptions returns default pagination options.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: DefaultPageLimit,
		MaxPages: 0,
	}
}

func (o *PaginationOptions) maxPages() int {
	if o == nil || o.MaxPages <= 0 {
		return constants.MaxPages
	}

	return o.MaxPages
}

func (o *PaginationOptions) listOptions() *ListOptions {
	if o == nil || o.PageSize <= 0 {
		return NewListOptions()
	}

	return &ListOptions{Limit: o.PageSize}
}

// FetchAllPages follows position tokens until the last page and returns every
// item.
func FetchAllPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) ([]T, error) {
	var all []T

	opts := options.listOptions()

	for pageNum := 0; pageNum < options.maxPages(); pageNum++ {
		page, err := fetch(ctx, opts)
		if err != nil {
			return all, fmt.Errorf("fetching page %d: %w", pageNum+1, err)
		}

		all = append(all, page.Items...)

		if !page.HasMore() {
			break
		}

		opts = &ListOptions{Limit: opts.Limit, Position: page.Position}
	}

	return all, nil
}

// PageResult is one page delivered by StreamPages.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// StreamPages fetches pages in the background and delivers them on the
// returned channel, which is closed after the last page, an error, or
// cancellation of ctx.
func StreamPages[T any](ctx context.Context, fetch PageFetcher[T], options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		opts := options.listOptions()

		for pageNum := 0; pageNum < options.maxPages(); pageNum++ {
			page, err := fetch(ctx, opts)

			result := PageResult[T]{Err: err}
			if page != nil {
				result.Items = page.Items
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}

			if err != nil || !page.HasMore() {
				return
			}

			opts = &ListOptions{Limit: opts.Limit, Position: page.Position}
		}
	}()

	return results
}

// PageIterator iterates over items across pages, fetching lazily.
type PageIterator[T any] struct {
	ctx     context.Context //nolint:containedctx // iterator owns the context of its lazy fetches
	fetch   PageFetcher[T]
	opts    *ListOptions
	items   []T
	index   int
	started bool
	done    bool
}

// NewPageIterator creates an iterator starting at opts (nil for defaults).
func NewPageIterator[T any](ctx context.Context, fetch PageFetcher[T], opts *ListOptions) *PageIterator[T] {
	if opts == nil {
		opts = NewListOptions()
	}

	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
		opts:  opts,
	}
}

// HasNext reports whether Next may return another item. It returns true
// before the first fetch.
func (it *PageIterator[T]) HasNext() bool {
	if it.index < len(it.items) {
		return true
	}

	return !it.started || !it.done
}

// Next returns the next item, fetching the next page when needed. It returns
// ErrNoMoreItems when the iteration is complete.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	for it.index >= len(it.items) {
		if it.started && it.done {
			return zero, ErrNoMoreItems
		}

		err := it.fetchNext()
		if err != nil {
			return zero, err
		}
	}

	item := it.items[it.index]
	it.index++

	return item, nil
}

func (it *PageIterator[T]) fetchNext() error {
	page, err := it.fetch(it.ctx, it.opts)
	if err != nil {
		return fmt.Errorf("fetching next page: %w", err)
	}

	it.started = true
	it.items = page.Items
	it.index = 0

	if page.HasMore() {
		it.opts = &ListOptions{Limit: it.opts.Limit, Position: page.Position}
	} else {
		it.done = true
	}

	return nil
}

// All drains the iterator.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems { //nolint:errorlint // sentinel returned unwrapped by Next
				break
			}

			return all, err
		}

		all = append(all, item)
	}

	return all, nil
}

// ForEach calls fn for every item and stops at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			if err == ErrNoMoreItems { //nolint:errorlint // sentinel returned unwrapped by Next
				return nil
			}

			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}
