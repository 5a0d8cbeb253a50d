package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/apigw/internal/archive"
	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

// NewRestAPIsCommand creates the restapis command group.
func NewRestAPIsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "restapis",
		Aliases: []string{"restapi", "apis", "api"},
		Short:   "Manage REST APIs",
		Long:    "List, create, import, export and delete API Gateway REST APIs",
	}

	cmd.AddCommand(newRestAPIsListCommand())
	cmd.AddCommand(newRestAPIsGetCommand())
	cmd.AddCommand(newRestAPIsCreateCommand())
	cmd.AddCommand(newRestAPIsUpdateCommand())
	cmd.AddCommand(newRestAPIsDeleteCommand())
	cmd.AddCommand(newRestAPIsImportCommand())
	cmd.AddCommand(newRestAPIsPutCommand())
	cmd.AddCommand(newRestAPIsExportCommand())

	return cmd
}

func restAPIsTable(apis []apigw.RestAPI) *table {
	view := newTable("ID", "Name", "Description", "Endpoint", "Created")

	for _, api := range apis {
		view.add(api.ID, api.Name,
			truncate(api.Description, constants.MaxDescriptionDisplayLength),
			endpointTypes(api.EndpointConfiguration),
			formatTime(api.CreatedDate))
	}

	return view
}

func restAPIDetails(api *apigw.RestAPI) *table {
	return details(
		"ID", api.ID,
		"Name", api.Name,
		"Description", api.Description,
		"Version", api.Version,
		"Root Resource", api.RootResourceID,
		"Endpoint Types", endpointTypes(api.EndpointConfiguration),
		"API Key Source", api.APIKeySource,
		"Created", formatTime(api.CreatedDate),
		"Tags", formatTags(api.Tags),
	)
}

func newRestAPIsListCommand() *cobra.Command {
	var paging pagingFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List REST APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				result, err := collect(ctx, client.RestAPIs().List, &paging)
				if err != nil {
					return fmt.Errorf("failed to list REST APIs: %w", err)
				}

				err = render(cmd, result, func() *table { return restAPIsTable(result.Items) })
				if err != nil {
					return err
				}

				printNextPosition(cmd, result.Position)

				return nil
			})
		},
	}

	paging.register(cmd)

	return cmd
}

// restAPIWithStages is the output of "restapis get --with-stages".
type restAPIWithStages struct {
	apigw.RestAPI `yaml:",inline"`

	Stages []apigw.Stage `json:"stages" yaml:"stages"`
}

func newRestAPIsGetCommand() *cobra.Command {
	var withStages bool

	cmd := &cobra.Command{
		Use:   "get REST_API_ID",
		Short: "Show a REST API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				if withStages {
					return runRestAPIGetWithStages(ctx, cmd, client, args[0])
				}

				api, err := client.RestAPIs().Get(ctx, args[0])
				if err != nil {
					return fmt.Errorf("failed to get REST API: %w", err)
				}

				return render(cmd, api, func() *table { return restAPIDetails(api) })
			})
		},
	}

	cmd.Flags().BoolVar(&withStages, "with-stages", false, "also list the stages of the API")

	return cmd
}

// runRestAPIGetWithStages fetches the API and its stages concurrently.
func runRestAPIGetWithStages(ctx context.Context, cmd *cobra.Command, client apigw.Client, restAPIID string) error {
	type stagesOutcome struct {
		stages []apigw.Stage
		err    error
	}

	outcome := make(chan stagesOutcome, 1)

	apigw.NewReturningRunnable("list stages of "+restAPIID, func() ([]apigw.Stage, error) {
		return client.Stages().List(ctx, restAPIID, "")
	}).RunAsync(apigw.CallbackFuncs[[]apigw.Stage]{
		Result: func(stages []apigw.Stage) { outcome <- stagesOutcome{stages: stages} },
		Error:  func(err error) { outcome <- stagesOutcome{err: err} },
	})

	api, err := apigw.NewReturningRunnable("get REST API "+restAPIID, func() (*apigw.RestAPI, error) {
		return client.RestAPIs().Get(ctx, restAPIID)
	}).Run()

	stages := <-outcome

	if err != nil {
		return fmt.Errorf("failed to get REST API: %w", err)
	}

	if stages.err != nil {
		return fmt.Errorf("failed to list stages: %w", stages.err)
	}

	result := &restAPIWithStages{RestAPI: *api, Stages: stages.stages}

	return render(cmd, result, func() *table {
		view := restAPIDetails(api)
		for _, stage := range stages.stages {
			view.add("Stage", stage.StageName+" ("+stage.DeploymentID+")")
		}

		return view
	})
}

func newRestAPIsCreateCommand() *cobra.Command {
	var (
		req           apigw.RestAPICreateRequest
		endpointType  string
		tags          []string
		minCompressed int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a REST API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Name == "" {
				return constants.ErrNameRequired
			}

			parsed, err := parseKeyValues(tags)
			if err != nil {
				return err
			}

			req.Tags = parsed

			if endpointType != "" {
				req.EndpointConfiguration = &apigw.EndpointConfiguration{Types: []string{endpointType}}
			}

			if cmd.Flags().Changed("minimum-compression-size") {
				req.MinimumCompressionSize = apigw.Int(minCompressed)
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				api, err := client.RestAPIs().Create(ctx, &req)
				if err != nil {
					return fmt.Errorf("failed to create REST API: %w", err)
				}

				return render(cmd, api, func() *table { return restAPIDetails(api) })
			})
		},
	}

	cmd.Flags().StringVarP(&req.Name, "name", "n", "", "API name")
	cmd.Flags().StringVarP(&req.Description, "description", "d", "", "API description")
	cmd.Flags().StringVar(&req.Version, "version", "", "API version label")
	cmd.Flags().StringVar(&req.CloneFrom, "clone-from", "", "ID of an API to clone")
	cmd.Flags().StringVar(&req.APIKeySource, "api-key-source", "", "HEADER or AUTHORIZER")
	cmd.Flags().StringVar(&endpointType, "endpoint-type", "", "EDGE, REGIONAL or PRIVATE")
	cmd.Flags().StringSliceVar(&req.BinaryMediaTypes, "binary-media-type", nil, "binary media type (repeatable)")
	cmd.Flags().IntVar(&minCompressed, "minimum-compression-size", 0, "minimum payload size to compress")
	cmd.Flags().BoolVar(&req.DisableExecuteAPIEndpoint, "disable-execute-api-endpoint", false, "disable the default execute-api endpoint")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag as key=value (repeatable)")

	return cmd
}

func newRestAPIsUpdateCommand() *cobra.Command {
	var patches []string

	cmd := &cobra.Command{
		Use:   "update REST_API_ID",
		Short: "Update a REST API with patch operations",
		Long: `Update a REST API. Each --patch is op:path[=value], for example

  apigw restapis update a1b2c3 --patch replace:/description=Orders --patch remove:/binaryMediaTypes/image~1png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := parsePatchOps(patches)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				api, err := client.RestAPIs().Update(ctx, args[0], update)
				if err != nil {
					return fmt.Errorf("failed to update REST API: %w", err)
				}

				return render(cmd, api, func() *table { return restAPIDetails(api) })
			})
		},
	}

	cmd.Flags().StringArrayVarP(&patches, "patch", "p", nil, "patch operation op:path[=value] (repeatable)")
	_ = cmd.MarkFlagRequired("patch")

	return cmd
}

func newRestAPIsDeleteCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "delete REST_API_ID...",
		Short: "Delete one or more REST APIs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				builder := apigw.NewBatchBuilder()
				for _, id := range args {
					builder.AddDelete(id, apigw.BatchResourceRestAPI, id)
				}

				results, err := apigw.NewBatchExecutor(client, concurrency).Execute(ctx, builder.Build())
				if err != nil {
					return fmt.Errorf("failed to delete REST APIs: %w", err)
				}

				return reportBatch(cmd, results, "Deleted REST API")
			})
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit, "number of deletes in flight")

	return cmd
}

// reportBatch prints one line per result and fails if any operation failed.
func reportBatch(cmd *cobra.Command, results []apigw.BatchResult, success string) error {
	failed := 0

	for _, result := range results {
		if result.Success {
			printDone(cmd, "%s %s", success, result.ID)

			continue
		}

		failed++

		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Failed %s: %v\n", result.ID, result.Error)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d operations failed: %w", failed, len(results), ErrBatchFailed)
	}

	return nil
}

// importFlags are shared by import and put.
type importFlags struct {
	file           string
	failOnWarnings bool
	parameters     []string
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "OpenAPI definition file, or - for stdin")
	cmd.Flags().BoolVar(&f.failOnWarnings, "fail-on-warnings", false, "roll back when the import produces warnings")
	cmd.Flags().StringArrayVar(&f.parameters, "parameter", nil, "import parameter as key=value (repeatable)")
}

func (f *importFlags) options(mode apigw.ImportMode) (*apigw.RestAPIImportOptions, error) {
	parameters, err := parseKeyValues(f.parameters)
	if err != nil {
		return nil, err
	}

	return &apigw.RestAPIImportOptions{
		Mode:           mode,
		FailOnWarnings: f.failOnWarnings,
		Parameters:     parameters,
	}, nil
}

func newRestAPIsImportCommand() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create a REST API from an OpenAPI definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			definition, err := readInput(cmd, flags.file)
			if err != nil {
				return err
			}

			opts, err := flags.options("")
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				api, err := client.RestAPIs().Import(ctx, definition, opts)
				if err != nil {
					return fmt.Errorf("failed to import REST API: %w", err)
				}

				return render(cmd, api, func() *table { return restAPIDetails(api) })
			})
		},
	}

	flags.register(cmd)

	return cmd
}

func parseImportMode(mode string) (apigw.ImportMode, error) {
	switch apigw.ImportMode(mode) {
	case apigw.ImportModeMerge, apigw.ImportModeOverwrite:
		return apigw.ImportMode(mode), nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidImportMode, mode)
	}
}

func newRestAPIsPutCommand() *cobra.Command {
	var (
		flags importFlags
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "put REST_API_ID",
		Short: "Merge or overwrite a REST API with an OpenAPI definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importMode, err := parseImportMode(mode)
			if err != nil {
				return err
			}

			definition, err := readInput(cmd, flags.file)
			if err != nil {
				return err
			}

			opts, err := flags.options(importMode)
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				api, err := client.RestAPIs().Put(ctx, args[0], definition, opts)
				if err != nil {
					return fmt.Errorf("failed to put REST API: %w", err)
				}

				return render(cmd, api, func() *table { return restAPIDetails(api) })
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&mode, "mode", string(apigw.ImportModeMerge), "merge or overwrite")

	return cmd
}

type exportFlags struct {
	exportType string
	format     string
	extensions string
	file       string
	s3Bucket   string
	s3Prefix   string
	s3Endpoint string
	s3Region   string
	pathStyle  bool
}

func (f *exportFlags) validate() error {
	if f.s3Prefix != "" && f.s3Bucket == "" {
		return constants.ErrS3KeyPrefixWithoutS3
	}

	switch f.format {
	case constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, f.format)
	}
}

func (f *exportFlags) options() *apigw.ExportOptions {
	opts := &apigw.ExportOptions{Accepts: "application/" + f.format}
	if f.extensions != "" {
		opts.Parameters = map[string]string{"extensions": f.extensions}
	}

	return opts
}

func newRestAPIsExportCommand() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export REST_API_ID STAGE",
		Short: "Export the definition of a deployed stage",
		Long: `Export the OpenAPI or Swagger definition of a stage. The definition is
written to stdout unless --file or --s3-bucket is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := flags.validate()
			if err != nil {
				return err
			}

			return withSession(cmd.Context(), func(ctx context.Context, client apigw.Client) error {
				result, err := client.Exports().GetExport(ctx, args[0], args[1], flags.exportType, flags.options())
				if err != nil {
					return fmt.Errorf("failed to export REST API: %w", err)
				}

				return writeExport(ctx, cmd, &flags, args[0], args[1], result)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.exportType, "type", "t", apigw.ExportTypeOAS30, "oas30 or swagger")
	cmd.Flags().StringVar(&flags.format, "format", constants.FormatJSON, "json or yaml")
	cmd.Flags().StringVar(&flags.extensions, "extensions", "", "extensions to include, e.g. integrations,authorizers")
	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "write the definition to this file")
	cmd.Flags().StringVar(&flags.s3Bucket, "s3-bucket", "", "upload the definition to this S3 bucket")
	cmd.Flags().StringVar(&flags.s3Prefix, "s3-prefix", "", "key prefix inside the bucket")
	cmd.Flags().StringVar(&flags.s3Endpoint, "s3-endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVar(&flags.s3Region, "s3-region", "", "bucket region, defaults to --region")
	cmd.Flags().BoolVar(&flags.pathStyle, "s3-path-style", false, "use path-style S3 addressing")

	return cmd
}

func writeExport(ctx context.Context, cmd *cobra.Command, flags *exportFlags, restAPIID, stage string, result *apigw.ExportResult) error {
	switch {
	case flags.s3Bucket != "":
		settings := LoadSettings()

		region := flags.s3Region
		if region == "" {
			region = settings.Region
		}

		archiver, err := archive.NewS3Archiver(ctx, archive.S3Config{
			Bucket:          flags.s3Bucket,
			Region:          region,
			Endpoint:        flags.s3Endpoint,
			AccessKeyID:     settings.AccessKeyID,
			SecretAccessKey: settings.SecretAccessKey,
			Prefix:          flags.s3Prefix,
			UsePathStyle:    flags.pathStyle,
		})
		if err != nil {
			return err
		}

		name := archive.FileName(result, flags.exportType+"."+flags.format)

		object, err := archiver.Store(ctx, archiver.Key(restAPIID, stage, name), result)
		if err != nil {
			return err
		}

		printDone(cmd, "Uploaded %s (%d bytes)", object.URI(), object.Size)

		return nil
	case flags.file != "":
		err := os.WriteFile(flags.file, result.Body, constants.ConfigFilePerm)
		if err != nil {
			return fmt.Errorf("writing %s: %w", flags.file, err)
		}

		printDone(cmd, "Wrote %s", flags.file)

		return nil
	default:
		_, err := cmd.OutOrStdout().Write(result.Body)
		if err != nil {
			return fmt.Errorf("writing export: %w", err)
		}

		return nil
	}
}
