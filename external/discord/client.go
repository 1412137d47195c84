package discord

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/rinksidehq/rinkside/internal/domain/event"
	"github.com/rinksidehq/rinkside/internal/platform/logging"
	"github.com/rinksidehq/rinkside/internal/platform/resilience"
)

const defaultBaseURL = "https://discord.com/api/v10"

var errDiscordTransient = crerr.New("discord transient failure")

// Scheduled-event status codes as Discord defines them.
var statusLabels = map[int]string{
	1: "SCHEDULED",
	2: "ACTIVE",
	3: "COMPLETED",
	4: "CANCELED",
}

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	BotToken       string
	GuildID        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the community guild's scheduled events. The payload is passed
// through mostly opaquely; only the fields the portal shows are mapped.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	botToken       string
	guildID        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		botToken:       strings.TrimSpace(cfg.BotToken),
		guildID:        strings.TrimSpace(cfg.GuildID),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type scheduledEvent struct {
	ID                 string `json:"id"`
	GuildID            string `json:"guild_id"`
	Name               string `json:"name"`
	ScheduledStartTime string `json:"scheduled_start_time"`
	Status             int    `json:"status"`
}

// ListScheduledEvents returns the guild's upcoming and running events.
func (c *Client) ListScheduledEvents(ctx context.Context) ([]event.Event, error) {
	if c.botToken == "" || c.guildID == "" {
		return nil, fmt.Errorf("discord credentials are not configured")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "discord circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: chat platform is temporarily unavailable", errDiscordTransient)
		}
	}

	fullURL := fmt.Sprintf("%s/guilds/%s/scheduled-events", c.baseURL, c.guildID)
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errDiscordTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	var items []scheduledEvent
	if err := sonic.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode discord payload: %w", err)
	}

	events := make([]event.Event, 0, len(items))
	for _, item := range items {
		guildID := item.GuildID
		if guildID == "" {
			guildID = c.guildID
		}
		status := statusLabels[item.Status]
		if status == "" {
			status = "UNKNOWN"
		}
		events = append(events, event.Event{
			ID:        item.ID,
			Name:      item.Name,
			URL:       fmt.Sprintf("https://discord.com/events/%s/%s", guildID, item.ID),
			StartTime: item.ScheduledStartTime,
			Status:    status,
		})
	}
	return events, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Authorization", "Bot "+c.botToken)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errDiscordTransient, c.redactToken(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errDiscordTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: discord status=%d body=%s", errDiscordTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("discord status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("discord request failed")
	}
	c.logger.WarnContext(ctx, "discord request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) redactToken(value string) string {
	value = strings.TrimSpace(value)
	if c.botToken != "" {
		value = strings.ReplaceAll(value, c.botToken, "REDACTED")
	}
	return value
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
