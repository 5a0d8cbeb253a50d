package apigw

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind identifies a category of API Gateway failure.
type ErrorKind string

// Error kinds returned by the API Gateway control plane. KindService is used
// for error responses that do not match any known kind, KindClient for
// failures that happen before or outside the service round trip.
const (
	KindBadRequest         ErrorKind = "BadRequestException"
	KindUnauthorized       ErrorKind = "UnauthorizedException"
	KindNotFound           ErrorKind = "NotFoundException"
	KindConflict           ErrorKind = "ConflictException"
	KindLimitExceeded      ErrorKind = "LimitExceededException"
	KindTooManyRequests    ErrorKind = "TooManyRequestsException"
	KindServiceUnavailable ErrorKind = "ServiceUnavailableException"
	KindService            ErrorKind = "ServiceException"
	KindClient             ErrorKind = "ClientException"
)

// knownKinds maps wire error codes to their kind.
var knownKinds = map[string]ErrorKind{
	string(KindBadRequest):         KindBadRequest,
	string(KindUnauthorized):       KindUnauthorized,
	string(KindNotFound):           KindNotFound,
	string(KindConflict):           KindConflict,
	string(KindLimitExceeded):      KindLimitExceeded,
	string(KindTooManyRequests):    KindTooManyRequests,
	string(KindServiceUnavailable): KindServiceUnavailable,
}

// ServiceError is an error response returned by API Gateway.
type ServiceError struct {
	Kind       ErrorKind `json:"kind"                  yaml:"kind"`
	StatusCode int       `json:"status_code"           yaml:"status_code"`
	Code       string    `json:"code,omitempty"        yaml:"code,omitempty"`
	Message    string    `json:"message,omitempty"     yaml:"message,omitempty"`
	RequestID  string    `json:"request_id,omitempty"  yaml:"request_id,omitempty"`
	RetryAfter string    `json:"retry_after,omitempty" yaml:"retry_after,omitempty"`
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	code := e.Code
	if code == "" {
		code = string(e.Kind)
	}

	msg := fmt.Sprintf("%s: %s (status: %d", code, e.Message, e.StatusCode)
	if e.RequestID != "" {
		msg += ", request id: " + e.RequestID
	}

	return msg + ")"
}

// Is reports whether target is a ServiceError of the same kind. It lets callers
// write errors.Is(err, apigw.ErrNotFound).
func (e *ServiceError) Is(target error) bool {
	t, ok := target.(*ServiceError)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// ClientError is a failure that happened on the client side, for example a
// marshalling failure, a credentials failure or an unreachable network.
type ClientError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err == nil {
		if e.Op == "" {
			return "client error"
		}

		return "client error during " + e.Op
	}

	if e.Op == "" {
		return "client error: " + e.Err.Error()
	}

	return fmt.Sprintf("client error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// Is matches ErrClient so callers can branch on client-side failures.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ServiceError)

	return ok && t.Kind == KindClient
}

// Sentinel errors for errors.Is checks.
var (
	ErrBadRequest         = &ServiceError{Kind: KindBadRequest}
	ErrUnauthorized       = &ServiceError{Kind: KindUnauthorized}
	ErrNotFound           = &ServiceError{Kind: KindNotFound}
	ErrConflict           = &ServiceError{Kind: KindConflict}
	ErrLimitExceeded      = &ServiceError{Kind: KindLimitExceeded}
	ErrTooManyRequests    = &ServiceError{Kind: KindTooManyRequests}
	ErrServiceUnavailable = &ServiceError{Kind: KindServiceUnavailable}
	ErrService            = &ServiceError{Kind: KindService}
	ErrClient             = &ServiceError{Kind: KindClient}
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrRegionOrEndpointRequired = errors.New("region or API endpoint is required")
	ErrSigningRegionRequired    = errors.New("region is required to sign requests")
	ErrMissingRequiredParameter = errors.New("missing required parameter")
	ErrEndpointInUse            = errors.New("endpoint cannot be changed after the first request")
	ErrInvalidEndpoint          = errors.New("invalid endpoint")
	ErrCircuitBreakerOpen       = errors.New("circuit breaker is open")
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrInvalidBatchData         = errors.New("invalid data for batch operation")
	ErrTransactionFailed        = errors.New("transaction failed")
	ErrNoMoreItems              = errors.New("no more items")
)

// errorBody is the JSON error payload. API Gateway uses "message" but older
// responses carry "Message", and the error code may appear as "__type" or "code".
type errorBody struct {
	Type         string `json:"__type"`
	Code         string `json:"code"`
	Message      string `json:"message"`
	MessageUpper string `json:"Message"`
}

// ParseServiceError builds a ServiceError from an HTTP error response. The
// error code comes from the X-Amzn-ErrorType header when present, then from
// the body, and the kind falls back to the status code only when no code is
// available at all.
func ParseServiceError(statusCode int, header http.Header, body []byte) *ServiceError {
	svcErr := &ServiceError{
		StatusCode: statusCode,
	}

	if header != nil {
		svcErr.Code = sanitizeErrorCode(header.Get("X-Amzn-ErrorType"))
		svcErr.RequestID = header.Get("X-Amzn-RequestId")
		svcErr.RetryAfter = header.Get("Retry-After")
	}

	var payload errorBody
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		if svcErr.Code == "" {
			svcErr.Code = sanitizeErrorCode(payload.Type)
		}

		if svcErr.Code == "" {
			svcErr.Code = sanitizeErrorCode(payload.Code)
		}

		svcErr.Message = payload.Message
		if svcErr.Message == "" {
			svcErr.Message = payload.MessageUpper
		}
	}

	if svcErr.Message == "" && len(body) > 0 && !json.Valid(body) {
		svcErr.Message = strings.TrimSpace(string(body))
	}

	svcErr.Kind = classify(statusCode, svcErr.Code)

	return svcErr
}

// sanitizeErrorCode strips the namespace prefix ("aws#") and the trailing
// documentation URL ("Code:http://...") from a wire error code.
func sanitizeErrorCode(code string) string {
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}

	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}

	return strings.TrimSpace(code)
}

func classify(statusCode int, code string) ErrorKind {
	if code != "" {
		if kind, ok := knownKinds[code]; ok {
			return kind
		}

		return KindService
	}

	switch statusCode {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusTooManyRequests:
		return KindTooManyRequests
	case http.StatusServiceUnavailable:
		return KindServiceUnavailable
	default:
		return KindService
	}
}

// KindOf returns the kind of err, or the empty kind if err is not an API
// Gateway error.
func KindOf(err error) ErrorKind {
	svcErr := &ServiceError{}
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}

	clientErr := &ClientError{}
	if errors.As(err, &clientErr) {
		return KindClient
	}

	return ""
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsBadRequest checks if the error is a bad request error.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsThrottled checks if the error is a throttling error, either
// TooManyRequests or LimitExceeded.
func IsThrottled(err error) bool {
	return errors.Is(err, ErrTooManyRequests) || errors.Is(err, ErrLimitExceeded)
}

// IsClientError checks if the error happened on the client side.
func IsClientError(err error) bool {
	return errors.Is(err, ErrClient)
}
