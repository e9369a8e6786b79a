package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"intranet-portal/internal/domain"
	"intranet-portal/internal/validator"
)

// ClientConfig holds configuration for the remote seed source client.
type ClientConfig struct {
	BaseURL  string
	Endpoint string
	Timeout  time.Duration
	Retry    RetryConfig
	CB       CBConfig
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client implements domain.SnapshotSource against an intranet CMS export
// endpoint serving the seed file format as JSON.
type Client struct {
	name      string
	endpoint  string
	client    *resty.Client
	cb        *gobreaker.CircuitBreaker[*resty.Response]
	validator *validator.Validator
	logger    *zap.Logger
}

// NewClient creates a remote seed source client with retry and circuit
// breaker protection.
func NewClient(cfg ClientConfig, v *validator.Validator, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retry.MaxAttempts).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on network errors or 5xx status codes
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500
		})

	settings := gobreaker.Settings{
		Name:        "cms-export",
		MaxRequests: cfg.CB.MaxRequests,
		Interval:    cfg.CB.Interval,
		Timeout:     cfg.CB.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.CB.FailureRatio
		},
	}

	return &Client{
		name:      "cms-export",
		endpoint:  cfg.Endpoint,
		client:    client,
		cb:        gobreaker.NewCircuitBreaker[*resty.Response](settings),
		validator: v,
		logger:    logger,
	}
}

// Name returns the source identifier.
func (c *Client) Name() string {
	return c.name
}

// Fetch retrieves and parses the complete data set from the CMS export.
func (c *Client) Fetch(ctx context.Context) ([]*domain.User, []*domain.ContentItem, error) {
	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			Get(c.endpoint)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("cms export returned status %d", r.StatusCode())
		}

		return r, nil
	})

	if err != nil {
		c.logger.Warn("cms export fetch failed",
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return nil, nil, fmt.Errorf("fetching cms export: %w", err)
	}

	users, contents, err := Parse(resp.Body(), c.validator)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing cms export: %w", err)
	}

	c.logger.Info("cms export fetch completed",
		zap.Int("users", len(users)),
		zap.Int("contents", len(contents)),
	)

	return users, contents, nil
}

// HealthCheck verifies the CMS export endpoint is accessible.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}
