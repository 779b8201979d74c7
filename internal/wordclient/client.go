// Package wordclient is a Go client for the word API.
//
// Transient failures (connection errors, 429, 5xx) are retried with backoff
// by go-retryablehttp. Retry policy belongs to the caller; the server never
// retries on a client's behalf.
package wordclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"github.com/wordventure/word-api/internal/game"
	"github.com/wordventure/word-api/internal/round"
)

// Config holds client settings. Zero values get defaults.
type Config struct {
	BaseURL      string
	HTTPClient   *http.Client
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	// Logger receives retry attempts; nil keeps the client quiet.
	Logger *zerolog.Logger
}

// Client talks to one word API server.
type Client struct {
	base string
	http *retryablehttp.Client
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("word api: %d %s", e.Status, e.Message)
}

// New returns a Client for cfg.BaseURL.
func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.RetryMax <= 0 {
		cfg.RetryMax = 3
	}
	if cfg.RetryWaitMin <= 0 {
		cfg.RetryWaitMin = 200 * time.Millisecond
	}
	if cfg.RetryWaitMax <= 0 {
		cfg.RetryWaitMax = 2 * time.Second
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = cfg.HTTPClient
	rc.RetryMax = cfg.RetryMax
	rc.RetryWaitMin = cfg.RetryWaitMin
	rc.RetryWaitMax = cfg.RetryWaitMax
	// Hand the last response back so its status and body reach the caller.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = nil
	if cfg.Logger != nil {
		rc.Logger = leveled{cfg.Logger}
	}

	return &Client{base: strings.TrimRight(cfg.BaseURL, "/"), http: rc}
}

// RandomWord fetches a random dictionary word.
func (c *Client) RandomWord(ctx context.Context) (string, error) {
	var out struct {
		Word string `json:"word"`
	}
	if err := c.do(ctx, http.MethodGet, "/random-word", nil, &out); err != nil {
		return "", err
	}
	return out.Word, nil
}

// CheckWord reports whether guess is in the server's dictionary.
func (c *Client) CheckWord(ctx context.Context, guess string) (bool, error) {
	var out struct {
		Valid bool `json:"valid"`
	}
	if err := c.do(ctx, http.MethodPost, "/check-word", map[string]string{"guess": guess}, &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// NewRound starts a hidden-target round.
func (c *Client) NewRound(ctx context.Context) (round.Round, error) {
	var out round.Round
	err := c.do(ctx, http.MethodPost, "/rounds", nil, &out)
	return out, err
}

// GuessResult is the server's verdict on one round guess.
type GuessResult struct {
	RoundID string      `json:"roundId"`
	Marks   []game.Mark `json:"marks"`
	Solved  bool        `json:"solved"`
	Word    string      `json:"word,omitempty"`
}

// Guess submits guess for the round carried by token.
func (c *Client) Guess(ctx context.Context, token, guess string) (GuessResult, error) {
	var out GuessResult
	err := c.do(ctx, http.MethodPost, "/rounds/guess", map[string]string{"token": token, "guess": guess}, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiError reads the server's {"error"} or {"message"} body.
func apiError(resp *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&body)
	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// leveled adapts zerolog to retryablehttp.LeveledLogger.
type leveled struct{ l *zerolog.Logger }

func (z leveled) Error(msg string, kv ...interface{}) { z.l.Error().Fields(kv).Msg(msg) }
func (z leveled) Info(msg string, kv ...interface{})  { z.l.Info().Fields(kv).Msg(msg) }
func (z leveled) Debug(msg string, kv ...interface{}) { z.l.Debug().Fields(kv).Msg(msg) }
func (z leveled) Warn(msg string, kv ...interface{})  { z.l.Warn().Fields(kv).Msg(msg) }
