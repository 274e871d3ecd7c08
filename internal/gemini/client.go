package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	pkghttp "interview-prep/pkg/http"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.5-flash-preview-05-20"
)

// Generator is the single operation the analysis and interview services
// need from the external model.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}

// RetryPolicy describes how generation calls are retried: up to MaxAttempts
// attempts total, sleeping InitialDelay before the first retry and growing
// the delay by Multiplier after each retryable failure.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Multiplier   float64
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 5, InitialDelay: time.Second, Multiplier: 2}
}

func (p RetryPolicy) backOff() backoff.BackOff {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.InitialDelay
	bo.Multiplier = p.Multiplier
	bo.RandomizationFactor = 0
	bo.MaxInterval = time.Hour // doubling is never capped for our attempt counts
	bo.MaxElapsedTime = 0
	bo.Reset()
	return backoff.WithMaxRetries(bo, uint64(attempts-1))
}

// APIError is a non-success response from the generateContent endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini api error: %d - %s", e.StatusCode, e.Body)
}

// RateLimited reports whether the response signaled throttling.
func (e *APIError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Client talks to the Google Generative Language REST API. A rate-limited
// response or a transport failure is retried per the RetryPolicy; any other
// non-success status fails immediately.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	policy  RetryPolicy
	http    *pkghttp.Client
	timer   backoff.Timer // nil means wall-clock sleeps; tests inject a fake
}

func NewClient(apiKey, model string, policy RetryPolicy, timeout time.Duration) *Client {
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: DefaultBaseURL,
		policy:  policy,
		http:    pkghttp.NewClient(timeout),
	}
}

func (c *Client) Generate(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, errors.Wrap(err, "marshal generate request")
	}

	// The key travels in a header, never in the URL: transport errors
	// quote the full URL, and those end up in logs and error responses.
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	headers := map[string]string{"x-goog-api-key": c.apiKey}

	var out Response
	op := func() error {
		resp, err := c.http.PostJSON(ctx, url, body, headers)
		if err != nil {
			return errors.Wrap(err, "send generate request")
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "read generate response")
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(&APIError{StatusCode: resp.StatusCode, Body: string(respBody)})
		}

		var parsed Response
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return errors.Wrap(err, "decode generate response")
		}
		out = parsed
		return nil
	}

	// Attempt failures are logged without the payload: prompts can carry
	// the caller's job-description text.
	attempt := 0
	notify := func(err error, delay time.Duration) {
		attempt++
		log.Printf("gemini: attempt %d failed: %v (retrying in %s)", attempt, err, delay)
	}

	if err := backoff.RetryNotifyWithTimer(op, backoff.WithContext(c.policy.backOff(), ctx), notify, c.timer); err != nil {
		log.Printf("gemini: attempt %d failed: %v (giving up)", attempt+1, err)
		return Response{}, err
	}
	return out, nil
}
