package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// recordedRequest is a request seen by the fake control plane.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeControlPlane serves canned responses keyed by "METHOD path".
type fakeControlPlane struct {
	t         *testing.T
	responses map[string]fakeResponse
	requests  chan recordedRequest
}

type fakeResponse struct {
	status  int
	body    interface{}
	headers map[string]string
}

func newFakeControlPlane(t *testing.T) (*fakeControlPlane, *httptest.Server) {
	t.Helper()

	fake := &fakeControlPlane{
		t:         t,
		responses: map[string]fakeResponse{},
		requests:  make(chan recordedRequest, 32),
	}

	server := httptest.NewServer(http.HandlerFunc(fake.serve))
	t.Cleanup(server.Close)

	return fake, server
}

func (f *fakeControlPlane) on(method, path string, status int, body interface{}) {
	f.responses[method+" "+path] = fakeResponse{status: status, body: body}
}

func (f *fakeControlPlane) onRaw(method, path string, body []byte, headers map[string]string) {
	f.responses[method+" "+path] = fakeResponse{status: http.StatusOK, body: body, headers: headers}
}

func (f *fakeControlPlane) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.requests <- recordedRequest{Method: r.Method, Path: r.URL.EscapedPath(), Query: r.URL.RawQuery, Body: string(body)}

	resp, ok := f.responses[r.Method+" "+r.URL.EscapedPath()]
	if !ok {
		w.Header().Set("X-Amzn-Errortype", "NotFoundException")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Invalid resource identifier specified"}`))

		return
	}

	for key, value := range resp.headers {
		w.Header().Set(key, value)
	}

	if raw, isRaw := resp.body.([]byte); isRaw {
		w.WriteHeader(resp.status)
		_, _ = w.Write(raw)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)

	if resp.body != nil {
		_ = json.NewEncoder(w).Encode(resp.body)
	}
}

// drain returns every request received so far.
func (f *fakeControlPlane) drain() []recordedRequest {
	var requests []recordedRequest

	for {
		select {
		case req := <-f.requests:
			requests = append(requests, req)
		default:
			return requests
		}
	}
}

// useServer points the CLI settings at server. Viper is global, so tests
// using it must not run in parallel.
func useServer(t *testing.T, server *httptest.Server, output string) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("endpoint", server.URL)
	viper.Set("region", "us-east-1")
	viper.Set("anonymous", true)
	viper.Set("output", output)
}

// execute runs cmd with args and returns what it wrote.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func decodeJSON(t *testing.T, data string, target interface{}) {
	t.Helper()

	require.NoError(t, json.Unmarshal([]byte(data), target), data)
}
