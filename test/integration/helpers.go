//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BinaryPath      string
	Verbose         bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	config := &TestConfig{
		Endpoint:        os.Getenv("APIGW_INTEGRATION_ENDPOINT"),
		Region:          os.Getenv("APIGW_INTEGRATION_REGION"),
		AccessKeyID:     os.Getenv("APIGW_INTEGRATION_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("APIGW_INTEGRATION_SECRET_ACCESS_KEY"),
		BinaryPath:      getBinaryPath(),
		Verbose:         os.Getenv("APIGW_VERBOSE") == "true",
	}

	if config.Region == "" {
		config.Region = "us-east-1"
	}

	// LocalStack accepts any key pair.
	if config.AccessKeyID == "" {
		config.AccessKeyID = "test"
		config.SecretAccessKey = "test"
	}

	return config
}

// getBinaryPath determines the path to the apigw binary.
func getBinaryPath() string {
	if path := os.Getenv("APIGW_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../apigw", "./apigw", "../apigw"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "apigw"
}

// SkipIfMissingEndpoint skips the test when no control plane is configured.
func (config *TestConfig) SkipIfMissingEndpoint(t *testing.T) {
	t.Helper()

	if config.Endpoint == "" {
		t.Skip("APIGW_INTEGRATION_ENDPOINT not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()
	config.SkipIfMissingEndpoint(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("apigw binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs apigw commands against the configured endpoint.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes an apigw command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{
		"--endpoint", runner.config.Endpoint,
		"--region", runner.config.Region,
	}, args...)

	cmd := exec.Command(runner.config.BinaryPath, args...)
	cmd.Env = append(os.Environ(),
		"APIGW_ACCESS_KEY_ID="+runner.config.AccessKeyID,
		"APIGW_SECRET_ACCESS_KEY="+runner.config.SecretAccessKey,
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a command with JSON output and decodes the result.
func (runner *CommandRunner) RunJSON(target interface{}, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	require.NoError(runner.t, err, "apigw %s: %s", strings.Join(args, " "), stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), target), stdout)
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// CleanupResource attempts to delete a test resource.
func (runner *CommandRunner) CleanupResource(resourceType, id string) {
	var args []string

	switch resourceType {
	case "restapi":
		args = []string{"restapis", "delete", id}
	case "apikey":
		args = []string{"apikeys", "delete", id}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}

// WaitForCondition waits for a condition to be met with timeout.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}
