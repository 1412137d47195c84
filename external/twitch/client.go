package twitch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/rinksidehq/rinkside/internal/domain/stream"
	"github.com/rinksidehq/rinkside/internal/platform/logging"
	"github.com/rinksidehq/rinkside/internal/platform/resilience"
)

const (
	defaultAuthURL = "https://id.twitch.tv/oauth2/token"
	defaultAPIURL  = "https://api.twitch.tv/helix"

	// Helix caps user_login parameters per streams request.
	maxLoginsPerRequest = 100

	// A token within this window of its expiry is treated as expired so a
	// request never goes out with a token about to die mid-flight.
	tokenExpirySlack = 60 * time.Second
)

var errTwitchTransient = crerr.New("twitch transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	AuthURL        string
	APIURL         string
	ClientID       string
	ClientSecret   string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the Twitch Helix API with an app access token obtained
// through the client-credentials grant. The token is cached on the client
// with its expiry; refresh is lazy and collapsed by singleflight.
type Client struct {
	httpClient     *http.Client
	authURL        string
	apiURL         string
	clientID       string
	clientSecret   string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight

	tokenMu     sync.Mutex
	accessToken string
	tokenExpiry time.Time

	now func() time.Time
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

	authURL := strings.TrimRight(strings.TrimSpace(cfg.AuthURL), "/")
	if authURL == "" {
		authURL = defaultAuthURL
	}
	apiURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		authURL:        authURL,
		apiURL:         apiURL,
		clientID:       strings.TrimSpace(cfg.ClientID),
		clientSecret:   strings.TrimSpace(cfg.ClientSecret),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		now:            time.Now,
	}
}

type streamsEnvelope struct {
	Data []struct {
		UserLogin    string `json:"user_login"`
		Title        string `json:"title"`
		GameName     string `json:"game_name"`
		ViewerCount  int    `json:"viewer_count"`
		StartedAt    string `json:"started_at"`
		ThumbnailURL string `json:"thumbnail_url"`
	} `json:"data"`
}

// CheckLive resolves which of the given channel handles are live right now.
// The returned map is keyed by lowercased handle; absent handles are offline.
func (c *Client) CheckLive(ctx context.Context, usernames []string) (map[string]stream.Metadata, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return nil, fmt.Errorf("twitch credentials are not configured")
	}

	logins := make([]string, 0, len(usernames))
	for _, username := range usernames {
		username = strings.ToLower(strings.TrimSpace(username))
		if username != "" {
			logins = append(logins, username)
		}
	}
	if len(logins) == 0 {
		return map[string]stream.Metadata{}, nil
	}

	out := make(map[string]stream.Metadata, 4)
	for start := 0; start < len(logins); start += maxLoginsPerRequest {
		end := start + maxLoginsPerRequest
		if end > len(logins) {
			end = len(logins)
		}

		var envelope streamsEnvelope
		if err := c.getJSON(ctx, "/streams", streamsQuery(logins[start:end]), &envelope); err != nil {
			return nil, err
		}
		for _, item := range envelope.Data {
			out[strings.ToLower(item.UserLogin)] = stream.Metadata{
				Title:        item.Title,
				GameName:     item.GameName,
				ViewerCount:  item.ViewerCount,
				StartedAt:    item.StartedAt,
				ThumbnailURL: item.ThumbnailURL,
			}
		}
	}

	return out, nil
}

func streamsQuery(logins []string) url.Values {
	values := url.Values{}
	for _, login := range logins {
		values.Add("user_login", login)
	}
	values.Set("first", "100")
	return values
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "twitch circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: streaming provider is temporarily unavailable", errTwitchTransient)
		}
	}

	fullURL := c.apiURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errTwitchTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode twitch payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		token, err := c.accessTokenValue(ctx)
		if err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Client-Id", c.clientID)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errTwitchTransient, c.redactSecrets(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errTwitchTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusUnauthorized:
				// The cached token was revoked upstream; drop it so the
				// next attempt fetches a fresh one.
				c.invalidateToken()
				lastErr = fmt.Errorf("%w: twitch status=%d body=%s", errTwitchTransient, resp.StatusCode, abbreviateBody(raw))
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: twitch status=%d body=%s", errTwitchTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("twitch status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
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
		lastErr = fmt.Errorf("twitch request failed")
	}
	c.logger.WarnContext(ctx, "twitch request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

type tokenEnvelope struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// accessTokenValue returns the cached app token, fetching a new one when the
// cache is empty or inside the expiry slack window. Concurrent refreshes
// collapse onto one grant request.
func (c *Client) accessTokenValue(ctx context.Context) (string, error) {
	if token, ok := c.cachedToken(); ok {
		return token, nil
	}

	out, err, _ := c.flight.Do("oauth:token", func() (any, error) {
		if token, ok := c.cachedToken(); ok {
			return token, nil
		}
		return c.fetchToken(ctx)
	})
	if err != nil {
		return "", err
	}

	token, ok := out.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token payload type %T", out)
	}
	return token, nil
}

func (c *Client) cachedToken() (string, bool) {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()
	if c.accessToken == "" {
		return "", false
	}
	if !c.now().Add(tokenExpirySlack).Before(c.tokenExpiry) {
		return "", false
	}
	return c.accessToken, true
}

func (c *Client) invalidateToken() {
	c.tokenMu.Lock()
	c.accessToken = ""
	c.tokenExpiry = time.Time{}
	c.tokenMu.Unlock()
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.WriteString("client_id=")
	_, _ = buf.WriteString(url.QueryEscape(c.clientID))
	_, _ = buf.WriteString("&client_secret=")
	_, _ = buf.WriteString(url.QueryEscape(c.clientSecret))
	_, _ = buf.WriteString("&grant_type=client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(buf.String()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request token: %s", errTwitchTransient, c.redactSecrets(err.Error()))
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	_ = resp.Body.Close()
	if readErr != nil {
		return "", fmt.Errorf("%w: read token response: %v", errTwitchTransient, readErr)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if isRetryableStatus(resp.StatusCode) {
			return "", fmt.Errorf("%w: token grant status=%d body=%s", errTwitchTransient, resp.StatusCode, abbreviateBody(raw))
		}
		return "", fmt.Errorf("token grant status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	var envelope tokenEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if envelope.AccessToken == "" || envelope.ExpiresIn <= 0 {
		return "", fmt.Errorf("token grant returned an empty token")
	}

	c.tokenMu.Lock()
	c.accessToken = envelope.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(envelope.ExpiresIn) * time.Second)
	c.tokenMu.Unlock()

	return envelope.AccessToken, nil
}

func (c *Client) redactSecrets(value string) string {
	value = strings.TrimSpace(value)
	if c.clientSecret != "" {
		value = strings.ReplaceAll(value, c.clientSecret, "REDACTED")
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
