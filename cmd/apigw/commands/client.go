package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/apigw/internal/constants"
	"github.com/fivetwenty-io/apigw/pkg/apigw"
	"github.com/fivetwenty-io/apigw/pkg/apigwclient"
)

// Settings is the effective CLI configuration after merging the config file,
// APIGW_* environment variables and flags.
type Settings struct {
	Region          string `json:"region,omitempty"            yaml:"region,omitempty"`
	Profile         string `json:"profile,omitempty"           yaml:"profile,omitempty"`
	Endpoint        string `json:"endpoint,omitempty"          yaml:"endpoint,omitempty"`
	AccessKeyID     string `json:"access_key_id,omitempty"     yaml:"access_key_id,omitempty"`
	SecretAccessKey string `json:"secret_access_key,omitempty" yaml:"secret_access_key,omitempty"`
	SessionToken    string `json:"session_token,omitempty"     yaml:"session_token,omitempty"`
	Anonymous       bool   `json:"anonymous,omitempty"         yaml:"anonymous,omitempty"`
	Output          string `json:"output,omitempty"            yaml:"output,omitempty"`
	Verbose         bool   `json:"verbose,omitempty"           yaml:"verbose,omitempty"`
	RateLimit       int    `json:"rate_limit,omitempty"        yaml:"rate_limit,omitempty"`
	EventsNATSURL   string `json:"events_nats_url,omitempty"   yaml:"events_nats_url,omitempty"`
	EventsSubject   string `json:"events_subject,omitempty"    yaml:"events_subject,omitempty"`
}

// Viper keys.
const (
	keyRegion          = "region"
	keyProfile         = "profile"
	keyEndpoint        = "endpoint"
	keyAccessKeyID     = "access_key_id"
	keySecretAccessKey = "secret_access_key"
	keySessionToken    = "session_token"
	keyAnonymous       = "anonymous"
	keyOutput          = "output"
	keyVerbose         = "verbose"
	keyRateLimit       = "rate_limit"
	keyEventsNATSURL   = "events_nats_url"
	keyEventsSubject   = "events_subject"
)

// LoadSettings reads the current settings from viper.
func LoadSettings() *Settings {
	return &Settings{
		Region:          viper.GetString(keyRegion),
		Profile:         viper.GetString(keyProfile),
		Endpoint:        viper.GetString(keyEndpoint),
		AccessKeyID:     viper.GetString(keyAccessKeyID),
		SecretAccessKey: viper.GetString(keySecretAccessKey),
		SessionToken:    viper.GetString(keySessionToken),
		Anonymous:       viper.GetBool(keyAnonymous),
		Output:          viper.GetString(keyOutput),
		Verbose:         viper.GetBool(keyVerbose),
		RateLimit:       viper.GetInt(keyRateLimit),
		EventsNATSURL:   viper.GetString(keyEventsNATSURL),
		EventsSubject:   viper.GetString(keyEventsSubject),
	}
}

// Validate checks settings that can be rejected before any network call.
func (s *Settings) Validate() error {
	if s.AccessKeyID != "" && s.SecretAccessKey == "" {
		return constants.ErrSecretKeyRequired
	}

	if s.SecretAccessKey != "" && s.AccessKeyID == "" {
		return constants.ErrAccessKeyRequired
	}

	return validateOutputFormat(s.Output)
}

// Session is a client plus the resources that must be released with it.
type Session struct {
	Client apigw.Client
	Logger apigw.Logger

	conn *nats.Conn
}

// Close drains the event connection, if any.
func (s *Session) Close() {
	if s.conn == nil {
		return
	}

	if err := s.conn.Drain(); err != nil {
		s.Logger.Warn("Failed to drain NATS connection", map[string]interface{}{"error": err.Error()})
	}
}

// NewSession builds a client from the current settings.
func NewSession(ctx context.Context) (*Session, error) {
	settings := LoadSettings()

	err := settings.Validate()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(settings.Verbose)
	session := &Session{Logger: logger}

	chain, err := buildInterceptors(settings, logger, session)
	if err != nil {
		return nil, err
	}

	client, err := apigwclient.New(ctx, &apigw.Config{
		Region:          settings.Region,
		APIEndpoint:     settings.Endpoint,
		AccessKeyID:     settings.AccessKeyID,
		SecretAccessKey: settings.SecretAccessKey,
		SessionToken:    settings.SessionToken,
		Profile:         settings.Profile,
		Anonymous:       settings.Anonymous,
		Debug:           settings.Verbose,
		Logger:          logger,
		Interceptors:    chain,
	})
	if err != nil {
		session.Close()

		if errors.Is(err, apigw.ErrRegionOrEndpointRequired) || errors.Is(err, apigw.ErrSigningRegionRequired) {
			return nil, constants.ErrNoRegionConfigured
		}

		return nil, fmt.Errorf("failed to create API Gateway client: %w", err)
	}

	session.Client = client

	return session, nil
}

func buildInterceptors(settings *Settings, logger apigw.Logger, session *Session) (*apigw.InterceptorChain, error) {
	chain := apigw.NewInterceptorChain()
	if settings.RateLimit > 0 {
		chain.AddRequestInterceptor(apigw.RateLimitInterceptor(settings.RateLimit))
	}

	breaker := apigw.NewCircuitBreaker(nil)
	chain.AddRequestInterceptor(apigw.CircuitBreakerRequestInterceptor(breaker))
	chain.AddResponseInterceptor(apigw.CircuitBreakerResponseInterceptor(breaker))

	if settings.EventsNATSURL != "" {
		conn, err := apigw.ConnectEventPublisher(settings.EventsNATSURL)
		if err != nil {
			return nil, fmt.Errorf("enabling mutation events: %w", err)
		}

		session.conn = conn
		chain.AddResponseInterceptor(apigw.MutationEventInterceptor(conn, settings.EventsSubject, logger))
	}

	return chain, nil
}

// withSession runs fn with a fresh session and closes it afterwards.
func withSession(ctx context.Context, fn func(ctx context.Context, client apigw.Client) error) error {
	session, err := NewSession(ctx)
	if err != nil {
		return err
	}
	defer session.Close()

	return fn(ctx, session.Client)
}
