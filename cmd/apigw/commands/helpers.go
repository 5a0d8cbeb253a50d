package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

const (
	notAvailable = "N/A"
	stdinPath    = "-"
)

// pagingFlags are shared by list commands.
type pagingFlags struct {
	limit    int
	position string
	all      bool
}

func (p *pagingFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.limit, "limit", constants.StandardPageSize, "maximum results per page")
	cmd.Flags().StringVar(&p.position, "position", "", "continuation token from a previous page")
	cmd.Flags().BoolVar(&p.all, "all", false, "fetch all pages")
}

func (p *pagingFlags) listOptions() *apigw.ListOptions {
	return apigw.NewListOptions().WithLimit(p.limit).WithPosition(p.position)
}

// listed is the result of a list command. Position is set when more pages
// are available.
type listed[T any] struct {
	Items    []T    `json:"items"              yaml:"items"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
}

// collect fetches one page, or every page when --all is set.
func collect[T any](ctx context.Context, fetch apigw.PageFetcher[T], paging *pagingFlags) (*listed[T], error) {
	if paging.all {
		items, err := apigw.FetchAllPages(ctx, fetch, &apigw.PaginationOptions{PageSize: paging.limit})
		if err != nil {
			return nil, err
		}

		return &listed[T]{Items: items}, nil
	}

	page, err := fetch(ctx, paging.listOptions())
	if err != nil {
		return nil, err
	}

	return &listed[T]{Items: page.Items, Position: page.Position}, nil
}

// printNextPosition tells table readers how to continue a partial listing.
func printNextPosition(cmd *cobra.Command, position string) {
	if position == "" || !isTableOutput() {
		return
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nMore results available, use --position %s or --all\n", position)
}

func isTableOutput() bool {
	format := LoadSettings().Output

	return format == "" || format == constants.FormatTable
}

// parseKeyValues parses "key=value" pairs.
func parseKeyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", constants.KeyValueSplitParts)
		if len(parts) != constants.KeyValueSplitParts || parts[0] == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidKeyValue, pair)
		}

		result[parts[0]] = parts[1]
	}

	return result, nil
}

// parsePatchOps parses "op:path[=value]" expressions. For move and copy the
// value is the source path.
func parsePatchOps(exprs []string) (*apigw.UpdateRequest, error) {
	ops := make([]apigw.PatchOperation, 0, len(exprs))

	for _, expr := range exprs {
		op, err := parsePatchOp(expr)
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	return apigw.NewUpdateRequest(ops...), nil
}

func parsePatchOp(expr string) (apigw.PatchOperation, error) {
	name, rest, found := strings.Cut(expr, ":")
	if !found || !strings.HasPrefix(rest, "/") {
		return apigw.PatchOperation{}, fmt.Errorf("%w: %q", constants.ErrInvalidPatchOp, expr)
	}

	path, value, hasValue := strings.Cut(rest, "=")
	op := apigw.PatchOperation{Op: apigw.PatchOp(strings.ToLower(name)), Path: path}

	switch op.Op {
	case apigw.PatchOpAdd, apigw.PatchOpReplace, apigw.PatchOpTest:
		if hasValue {
			op.Value = apigw.String(value)
		}
	case apigw.PatchOpRemove:
		if hasValue {
			return apigw.PatchOperation{}, fmt.Errorf("%w: remove takes no value: %q", constants.ErrInvalidPatchOp, expr)
		}
	case apigw.PatchOpMove, apigw.PatchOpCopy:
		if !hasValue || value == "" {
			return apigw.PatchOperation{}, fmt.Errorf("%w: %s needs a source path: %q", constants.ErrInvalidPatchOp, name, expr)
		}

		op.From = value
	default:
		return apigw.PatchOperation{}, fmt.Errorf("%w: unknown op %q", constants.ErrInvalidPatchOp, name)
	}

	return op, nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, constants.ErrFileRequired
	}

	if path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}

func formatTime(t *apigw.Timestamp) string {
	if t == nil || t.IsZero() {
		return notAvailable
	}

	return t.UTC().Format(time.RFC3339)
}

func formatBool(b bool) string {
	return strconv.FormatBool(b)
}

func formatTags(tags apigw.Tags) string {
	if len(tags) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(tags))
	for key, value := range tags {
		pairs = append(pairs, key+"="+value)
	}

	slices.Sort(pairs)

	return strings.Join(pairs, ",")
}

func endpointTypes(cfg *apigw.EndpointConfiguration) string {
	if cfg == nil {
		return ""
	}

	return strings.Join(cfg.Types, ",")
}

func printDone(cmd *cobra.Command, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
