package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/apigw/cmd/apigw/commands"
	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "apigw",
	Short: "Amazon API Gateway control-plane CLI",
	Long: `A command-line interface for the Amazon API Gateway control plane.

It manages REST APIs, their resources, deployments and stages, as well as
account-wide API keys, usage plans, custom domains and tags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.apigw/config.yml)")
	flags.StringP("region", "r", "", "AWS region")
	flags.String("profile", "", "shared config profile for the default credential chain")
	flags.String("endpoint", "", "control-plane endpoint URL (default https://apigateway.{region}.amazonaws.com)")
	flags.Bool("anonymous", false, "send unsigned requests, e.g. to a local emulator")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log requests and responses")
	flags.Int("rate-limit", constants.DefaultRequestsPerSecond, "client-side requests per second, 0 disables")
	flags.String("events-nats-url", "", "publish mutation events to this NATS server")
	flags.String("events-subject", apigw.DefaultEventSubject, "subject prefix of mutation events")

	for key, flag := range map[string]string{
		commands.KeyConfig: "config",
		"region":           "region",
		"profile":          "profile",
		"endpoint":         "endpoint",
		"anonymous":        "anonymous",
		"output":           "output",
		"verbose":          "verbose",
		"rate_limit":       "rate-limit",
		"events_nats_url":  "events-nats-url",
		"events_subject":   "events-subject",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigureCommand())
	rootCmd.AddCommand(commands.NewRestAPIsCommand())
	rootCmd.AddCommand(commands.NewResourcesCommand())
	rootCmd.AddCommand(commands.NewMethodsCommand())
	rootCmd.AddCommand(commands.NewDeploymentsCommand())
	rootCmd.AddCommand(commands.NewStagesCommand())
	rootCmd.AddCommand(commands.NewAPIKeysCommand())
	rootCmd.AddCommand(commands.NewUsagePlansCommand())
	rootCmd.AddCommand(commands.NewDomainsCommand())
	rootCmd.AddCommand(commands.NewAccountCommand())
	rootCmd.AddCommand(commands.NewTagsCommand())
}

func initConfig() {
	cfgFile := viper.GetString(commands.KeyConfig)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := commands.ConfigDir()
		if err != nil {
			_, _ = fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.apigw/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// APIGW_REGION, APIGW_ACCESS_KEY_ID, ...
	viper.SetEnvPrefix("APIGW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
