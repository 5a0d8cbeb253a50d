package commands

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewUsagePlansCommand creates the usage-plans command group.
func NewUsagePlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "usage-plans",
		Aliases: []string{"usage-plan", "plans"},
		Short:   "Manage usage plans, their keys and usage",
	}

	cmd.AddCommand(newUsagePlansListCommand())
	cmd.AddCommand(newUsagePlansGetCommand())
	cmd.AddCommand(newUsagePlansCreateCommand())
	cmd.AddCommand(newUsagePlansDeleteCommand())
	cmd.AddCommand(newUsagePlansKeysCommand())
	cmd.AddCommand(newUsagePlansUsageCommand())

	return cmd
}

func apiStages(plan apigw.UsagePlan) string {
	stages := make([]string, 0, len(plan.APIStages))
	for _, stage := range plan.APIStages {
		stages = append(stages, stage.APIID+"/"+stage.Stage)
	}

	return strings.Join(stages, ",")
}

func throttle(settings *apigw.ThrottleSettings) string {
	if settings == nil {
		return ""
	}

	return fmt.Sprintf("%g rps, burst %d", settings.RateLimit, settings.BurstLimit)
}

func quota(settings *apigw.QuotaSettings) string {
	if settings == nil {
		return ""
	}

	return fmt.Sprintf("%d per %s", settings.Limit, strings.ToLower(settings.Period))
}

func usagePlansTable(plans []apigw.UsagePlan) *table {
	view := newTable("ID", "Name", "Stages", "Throttle", "Quota")

	for _, plan := range plans {
		view.add(plan.ID, plan.Name, apiStages(plan), throttle(plan.Throttle), quota(plan.Quota))
	}

	return view
}

func newUsagePlansListCommand() *cobra.Command {
	var (
		paging pagingFlags
		keyID  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List usage plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				fetch := func(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.UsagePlan], error) {
					return client.UsagePlans().List(ctx, &apigw.UsagePlanListOptions{ListOptions: *opts, KeyID: keyID})
				}

				result, err := collect(ctx, fetch, &paging)
				if err != nil {
					return fmt.Errorf("failed to list usage plans: %w", err)
				}

				err = render(cmd, result, func() *table { return usagePlansTable(result.Items) })
				if err != nil {
					return err
				}

				printNextPosition(cmd, result.Position)

				return nil
			})
		},
	}

	paging.register(cmd)
	cmd.Flags().StringVar(&keyID, "key-id", "", "only plans containing this API key")

	return cmd
}

func newUsagePlansGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get USAGE_PLAN_ID",
		Short: "Show a usage plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				plan, err := client.UsagePlans().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get usage plan: %w", err)
				}

				return render(cmd, plan, func() *table {
					return details(
						"ID", plan.ID,
						"Name", plan.Name,
						"Description", plan.Description,
						"Stages", apiStages(*plan),
						"Throttle", throttle(plan.Throttle),
						"Quota", quota(plan.Quota),
						"Tags", formatTags(plan.Tags),
					)
				})
			})
		},
	}

	return cmd
}

func newUsagePlansCreateCommand() *cobra.Command {
	var (
		req         apigw.UsagePlanCreateRequest
		stageRefs   []string
		rateLimit   float64
		burstLimit  int
		quotaLimit  int
		quotaPeriod string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a usage plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Name == "" {
				return constants.ErrNameRequired
			}

			stageKeys, err := parseStageKeys(stageRefs)
			if err != nil {
				return err
			}

			for _, key := range stageKeys {
				req.APIStages = append(req.APIStages, apigw.APIStage{APIID: key.RestAPIID, Stage: key.StageName})
			}

			if rateLimit > 0 || burstLimit > 0 {
				req.Throttle = &apigw.ThrottleSettings{RateLimit: rateLimit, BurstLimit: burstLimit}
			}

			if quotaLimit > 0 {
				req.Quota = &apigw.QuotaSettings{Limit: quotaLimit, Period: strings.ToUpper(quotaPeriod)}
			}

			req.Tags, err = parseKeyValues(tags)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				plan, err := client.UsagePlans().Create(ctx, &req)
				if err != nil {
					return fmt.Errorf("failed to create usage plan: %w", err)
				}

				return render(cmd, plan, func() *table { return usagePlansTable([]apigw.UsagePlan{*plan}) })
			})
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "plan name")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "plan description")
	cmd.Flags().StringArrayVar(&stageRefs, "stage", nil, "stage as REST_API_ID/STAGE (repeatable)")
	cmd.Flags().Float64Var(&rateLimit, "rate-limit", 0, "steady-state requests per second")
	cmd.Flags().IntVar(&burstLimit, "burst-limit", 0, "burst capacity")
	cmd.Flags().IntVar(&quotaLimit, "quota", 0, "requests allowed per quota period")
	cmd.Flags().StringVar(&quotaPeriod, "quota-period", apigw.QuotaPeriodMonth, "DAY, WEEK or MONTH")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag as key=value (repeatable)")

	return cmd
}

func newUsagePlansDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete USAGE_PLAN_ID",
		Short: "Delete a usage plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.UsagePlans().Delete(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to delete usage plan: %w", err)
				}

				printDone(cmd, "Deleted usage plan %s", args[0])

				return nil
			})
		},
	}

	return cmd
}

func newUsagePlansKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage the API keys of a usage plan",
	}

	cmd.AddCommand(newUsagePlanKeysListCommand())
	cmd.AddCommand(newUsagePlanKeysAddCommand())
	cmd.AddCommand(newUsagePlanKeysRemoveCommand())

	return cmd
}

func usagePlanKeysTable(keys []apigw.UsagePlanKey) *table {
	view := newTable("ID", "Name", "Type")

	for _, key := range keys {
		view.add(key.ID, key.Name, key.Type)
	}

	return view
}

func newUsagePlanKeysListCommand() *cobra.Command {
	var paging pagingFlags

	cmd := &cobra.Command{
		Use:   "list USAGE_PLAN_ID",
		Short: "List the keys of a usage plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				fetch := func(ctx context.Context, opts *apigw.ListOptions) (*apigw.Page[apigw.UsagePlanKey], error) {
					return client.UsagePlans().ListKeys(ctx, args[0], &apigw.UsagePlanKeyListOptions{ListOptions: *opts})
				}

				result, err := collect(ctx, fetch, &paging)
				if err != nil {
					return fmt.Errorf("failed to list usage plan keys: %w", err)
				}

				return render(cmd, result, func() *table { return usagePlanKeysTable(result.Items) })
			})
		},
	}

	paging.register(cmd)

	return cmd
}

func newUsagePlanKeysAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add USAGE_PLAN_ID API_KEY_ID",
		Short: "Add an API key to a usage plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				key, err := client.UsagePlans().CreateKey(ctx, args[0], &apigw.UsagePlanKeyCreateRequest{KeyID: args[1]})
				if err != nil {
					return fmt.Errorf("failed to add key to usage plan: %w", err)
				}

				return render(cmd, key, func() *table { return usagePlanKeysTable([]apigw.UsagePlanKey{*key}) })
			})
		},
	}

	return cmd
}

func newUsagePlanKeysRemoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove USAGE_PLAN_ID API_KEY_ID",
		Short: "Remove an API key from a usage plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				err := client.UsagePlans().DeleteKey(ctx, args[0], args[1])
				if err != nil {
					return fmt.Errorf("failed to remove key from usage plan: %w", err)
				}

				printDone(cmd, "Removed key %s from usage plan %s", args[1], args[0])

				return nil
			})
		},
	}

	return cmd
}

func newUsagePlansUsageCommand() *cobra.Command {
	var opts apigw.UsageOptions

	cmd := &cobra.Command{
		Use:   "usage USAGE_PLAN_ID",
		Short: "Show daily usage per key",
		Long:  "Show used and remaining requests per API key and day. Dates are YYYY-MM-DD.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				usage, err := client.UsagePlans().GetUsage(ctx, args[0], &opts)
				if err != nil {
					return fmt.Errorf("failed to get usage: %w", err)
				}

				return render(cmd, usage, func() *table { return usageTable(usage) })
			})
		},
	}

	cmd.Flags().StringVar(&opts.StartDate, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.EndDate, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.KeyID, "key-id", "", "only this API key")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// usageTable shows one row per key and day. Each day is a [used, remaining]
// pair starting at StartDate.
func usageTable(usage *apigw.Usage) *table {
	view := newTable("Key", "Day", "Used", "Remaining")

	keys := make([]string, 0, len(usage.Items))
	for key := range usage.Items {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	for _, key := range keys {
		for day, counts := range usage.Items[key] {
			used, remaining := notAvailable, notAvailable
			if len(counts) > 0 {
				used = strconv.FormatInt(counts[0], 10)
			}

			if len(counts) > 1 {
				remaining = strconv.FormatInt(counts[1], 10)
			}

			view.add(key, strconv.Itoa(day+1), used, remaining)
		}
	}

	return view
}
