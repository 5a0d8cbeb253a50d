package apigw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultEventSubject is the subject prefix used for mutation events.
const DefaultEventSubject = "apigw.mutations"

// MutationEvent describes a successful create, update or delete call.
type MutationEvent struct {
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	RequestID  string    `json:"request_id,omitempty"`
	Time       time.Time `json:"time"`
}

// EventPublisher publishes raw messages. *nats.Conn satisfies it.
type EventPublisher interface {
	Publish(subject string, data []byte) error
}

// ConnectEventPublisher connects to a NATS server for publishing mutation
// events. The caller owns the returned connection.
func ConnectEventPublisher(url string, opts ...nats.Option) (*nats.Conn, error) {
	opts = append([]nats.Option{nats.Name("apigw")}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}

	return conn, nil
}

// MutationEventInterceptor publishes a MutationEvent for every successful
// POST, PUT, PATCH or DELETE. Events go to "<subject>.<method>", with the
// method in lower case. Publish failures are logged and never fail the call.
func MutationEventInterceptor(pub EventPublisher, subject string, logger Logger) ResponseInterceptor {
	if subject == "" {
		subject = DefaultEventSubject
	}

	return func(ctx context.Context, req *Request, resp *Response) error {
		if !isMutation(req.Method) || resp.Error != nil || resp.StatusCode >= http.StatusBadRequest {
			return nil
		}

		event := MutationEvent{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Time:       time.Now().UTC(),
		}

		if resp.Headers != nil {
			event.RequestID = resp.Headers.Get("X-Amzn-RequestId")
		}

		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshaling mutation event: %w", err)
		}

		target := subject + "." + strings.ToLower(req.Method)
		if err := pub.Publish(target, data); err != nil && logger != nil {
			logger.Warn("Failed to publish mutation event", map[string]interface{}{
				"subject": target,
				"error":   err.Error(),
			})
		}

		return nil
	}
}

func isMutation(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
