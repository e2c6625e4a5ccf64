package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/futebolao/futebolao/internal/platform/logging"
	"github.com/futebolao/futebolao/internal/platform/resilience"
	"github.com/futebolao/futebolao/internal/usecase"
)

const (
	defaultBaseURL = "https://api.football-data.org"
	matchesPath    = "/v4/matches"
	dateLayout     = "2006-01-02"
)

var errFootballDataTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the football-data.org v4 API. It implements
// usecase.MatchProvider with one windowed request per sync run; the free tier
// allows ten requests a minute, so per-match calls are out of the question.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
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
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) FetchMatchesByWindow(ctx context.Context, from, to time.Time) ([]usecase.ExternalMatch, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("window bounds are required")
	}
	if to.Before(from) {
		return nil, fmt.Errorf("window end precedes start")
	}

	query := map[string]string{
		"dateFrom": from.UTC().Format(dateLayout),
		"dateTo":   to.UTC().Format(dateLayout),
	}

	var envelope matchesEnvelope
	if err := c.doJSON(ctx, matchesPath, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches window=%s..%s: %w", query["dateFrom"], query["dateTo"], err)
	}

	out := make([]usecase.ExternalMatch, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		if item.ID <= 0 {
			continue
		}
		out = append(out, mapMatchItem(item))
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: match data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isCircuitFailure(reqErr) {
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
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("X-Auth-Token", c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errFootballDataTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errFootballDataTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: provider status=%d body=%s", errFootballDataTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "football-data request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errFootballDataTransient)
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

func mapMatchItem(item matchItem) usecase.ExternalMatch {
	out := usecase.ExternalMatch{
		ExternalID:   item.ID,
		Status:       strings.TrimSpace(item.Status),
		HomeTeamName: strings.TrimSpace(item.HomeTeam.Name),
		AwayTeamName: strings.TrimSpace(item.AwayTeam.Name),
		HomeCrestURL: strings.TrimSpace(item.HomeTeam.Crest),
		AwayCrestURL: strings.TrimSpace(item.AwayTeam.Crest),
		FullTime: usecase.ExternalScore{
			Home: item.Score.FullTime.Home,
			Away: item.Score.FullTime.Away,
		},
	}
	if parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(item.UTCDate)); err == nil {
		out.KickoffAt = parsed.UTC()
	}
	if item.Score.RegularTime != nil {
		out.RegularTime = &usecase.ExternalScore{
			Home: item.Score.RegularTime.Home,
			Away: item.Score.RegularTime.Away,
		}
	}
	return out
}

type matchesEnvelope struct {
	Matches []matchItem `json:"matches"`
}

type matchItem struct {
	ID       int64          `json:"id"`
	UTCDate  string         `json:"utcDate"`
	Status   string         `json:"status"`
	HomeTeam matchTeamItem  `json:"homeTeam"`
	AwayTeam matchTeamItem  `json:"awayTeam"`
	Score    matchScoreItem `json:"score"`
}

type matchTeamItem struct {
	Name  string `json:"name"`
	Crest string `json:"crest"`
}

type matchScoreItem struct {
	FullTime    scorePairItem  `json:"fullTime"`
	RegularTime *scorePairItem `json:"regularTime"`
}

type scorePairItem struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}
