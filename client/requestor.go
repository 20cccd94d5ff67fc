package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/logx"
	"github.com/mezonai/wavesgo/monitoring"
	"github.com/mezonai/wavesgo/ratelimit"
)

const DefaultTimeout = 60 * time.Second

// HTTPRequestor is the net/http Requestor. The underlying http.Client is shared.
type HTTPRequestor struct {
	client  *http.Client
	limiter *ratelimit.RateLimiter
}

func NewHTTPRequestor(timeout time.Duration) *HTTPRequestor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPRequestor{client: &http.Client{Timeout: timeout}}
}

// WithRateLimit throttles requests to at most maxPerSecond per node host.
func (r *HTTPRequestor) WithRateLimit(maxPerSecond int) *HTTPRequestor {
	r.limiter = ratelimit.NewRateLimiter(&ratelimit.RateLimiterConfig{
		MaxRequests: maxPerSecond,
		WindowSize:  time.Second,
	})
	return r
}

func (r *HTTPRequestor) Get(ctx context.Context, rawURL string) (jsonx.Value, error) {
	return r.do(ctx, http.MethodGet, rawURL, "", nil)
}

func (r *HTTPRequestor) Post(ctx context.Context, rawURL string, body interface{}) (jsonx.Value, error) {
	payload, err := jsonx.Marshal(body)
	if err != nil {
		return jsonx.Value{}, errors.Wrap(errors.KindJSONParseError, err, "encode request body")
	}
	return r.do(ctx, http.MethodPost, rawURL, "application/json", payload)
}

func (r *HTTPRequestor) PostText(ctx context.Context, rawURL string, text string) (jsonx.Value, error) {
	return r.do(ctx, http.MethodPost, rawURL, "text/plain", []byte(text))
}

func (r *HTTPRequestor) do(ctx context.Context, method, rawURL, contentType string, body []byte) (jsonx.Value, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return jsonx.Value{}, errors.Wrap(errors.KindURLParseError, err, rawURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return jsonx.Value{}, errors.Newf(errors.KindURLParseError, "%s: missing scheme or host", rawURL)
	}

	if r.limiter != nil && !r.limiter.Allow(u.Host) {
		monitoring.IncreaseThrottledCount()
		logx.Debug("CLIENT", "throttling request to ", u.Host)
		if err := r.limiter.Wait(ctx, u.Host); err != nil {
			return jsonx.Value{}, errors.Wrap(errors.KindIoError, err, method+" "+u.Path)
		}
	}

	start := time.Now()
	status := 0
	defer func() {
		monitoring.RecordRequest(method, status, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return jsonx.Value{}, errors.Wrap(errors.KindIoError, err, method+" "+u.Path)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	logx.Debug("CLIENT", method, " ", u.String())
	resp, err := r.client.Do(req)
	if err != nil {
		return jsonx.Value{}, errors.Wrap(errors.KindIoError, err, method+" "+u.Path)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return jsonx.Value{}, errors.Wrap(errors.KindIoError, err, "read response body")
	}
	value, err := jsonx.Parse(data)
	if err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return jsonx.Value{}, errors.Newf(errors.KindIoError, "%s %s: http status %d: %s",
				method, u.Path, resp.StatusCode, strings.TrimSpace(string(data)))
		}
		return jsonx.Value{}, err
	}
	if err := nodeError(value); err != nil {
		if errors.IsNotFound(err) {
			logx.Debug("CLIENT", method, " ", u.Path, ": ", err.Error())
		} else {
			logx.Warn("CLIENT", method, " ", u.Path, ": ", err.Error())
		}
		return jsonx.Value{}, err
	}
	return value, nil
}

// nodeError translates an {"error": code, "message": text} body into a NodeError.
func nodeError(v jsonx.Value) error {
	if !v.IsObject() {
		return nil
	}
	field := v.Get("error")
	if field.IsNull() {
		return nil
	}
	code, err := field.Int()
	if err != nil {
		code = 0
	}
	message, _, _ := v.Get("message").OptString()
	if message == "" && field.IsString() {
		message, _ = field.String()
	}
	return errors.NewNodeError(code, message)
}
