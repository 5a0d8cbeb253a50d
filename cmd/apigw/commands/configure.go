package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/apigw/internal/constants"
)

const (
	// KeyConfig is the viper key of the --config flag.
	KeyConfig = "config"

	configDirName  = ".apigw"
	configFileName = "config.yml"
)

// ConfigDir returns ~/.apigw.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}

// ConfigFilePath returns the --config path, or ~/.apigw/config.yml.
func ConfigFilePath() (string, error) {
	if path := viper.GetString(KeyConfig); path != "" {
		return path, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configFileName), nil
}

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	var (
		accessKeyID     string
		secretAccessKey string
		sessionToken    string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Save region, credentials and defaults",
		Long: `Save the effective settings to the config file. Global flags such as
--region, --profile, --endpoint and --output are stored along with the
credentials given here. The secret access key is prompted for when an
access key ID is given without one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := LoadSettings()
			settings.Verbose = false

			if accessKeyID != "" {
				settings.AccessKeyID = accessKeyID
				settings.SecretAccessKey = secretAccessKey
				settings.SessionToken = sessionToken
			}

			if settings.AccessKeyID != "" && settings.SecretAccessKey == "" {
				secret, err := promptSecret(cmd, "Secret access key: ")
				if err != nil {
					return err
				}

				settings.SecretAccessKey = secret
			}

			if settings.Region == "" {
				return constants.ErrNoRegionConfigured
			}

			err := settings.Validate()
			if err != nil {
				return err
			}

			path, err := saveSettings(settings)
			if err != nil {
				return err
			}

			printDone(cmd, "Configuration saved to %s", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&accessKeyID, "access-key-id", "", "AWS access key ID")
	cmd.Flags().StringVar(&secretAccessKey, "secret-access-key", "", "AWS secret access key, prompted for when omitted")
	cmd.Flags().StringVar(&sessionToken, "session-token", "", "AWS session token for temporary credentials")

	cmd.AddCommand(newConfigureShowCommand())

	return cmd
}

func promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrConfigureNoTerminal
	}

	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)

	secret, err := term.ReadPassword(fd)

	_, _ = fmt.Fprintln(cmd.ErrOrStderr())

	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

func saveSettings(settings *Settings) (string, error) {
	path, err := ConfigFilePath()
	if err != nil {
		return "", err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	return path, nil
}

// loadSavedSettings reads the config file without flags or environment.
func loadSavedSettings(path string) (*Settings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer func() { _ = file.Close() }()

	var settings Settings

	err = yaml.NewDecoder(bufio.NewReader(file)).Decode(&settings)
	if err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &settings, nil
}

func newConfigureShowCommand() *cobra.Command {
	var saved bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Show the effective configuration, or with --saved only what the config file holds. Secrets are masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := LoadSettings()

			if saved {
				path, err := ConfigFilePath()
				if err != nil {
					return err
				}

				settings, err = loadSavedSettings(path)
				if err != nil {
					return err
				}
			}

			if settings.SecretAccessKey != "" {
				settings.SecretAccessKey = maskedValue
			}

			if settings.SessionToken != "" {
				settings.SessionToken = maskedValue
			}

			return render(cmd, settings, func() *table {
				return details(
					"Region", settings.Region,
					"Profile", settings.Profile,
					"Endpoint", settings.Endpoint,
					"Access Key ID", settings.AccessKeyID,
					"Secret Access Key", settings.SecretAccessKey,
					"Session Token", settings.SessionToken,
					"Anonymous", formatOptionalBool(settings.Anonymous),
					"Output", settings.Output,
					"Events NATS URL", settings.EventsNATSURL,
					"Events Subject", settings.EventsSubject,
				)
			})
		},
	}

	cmd.Flags().BoolVar(&saved, "saved", false, "show the config file instead of the effective settings")

	return cmd
}

func formatOptionalBool(b bool) string {
	if !b {
		return ""
	}

	return formatBool(b)
}
