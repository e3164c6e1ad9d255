package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"ozonsync_api/internal/ozon/business/services"
	"ozonsync_api/metrics"
	"ozonsync_api/pkg/apperr"
	"ozonsync_api/pkg/logger"
)

type BaseClient struct {
	ApiURL  string
	auth    services.AuthEngine
	log     logger.Logger
	client  *http.Client
	limiter *rate.Limiter
}

func NewBaseClient(apiURL string, auth services.AuthEngine, log logger.Logger, timeout time.Duration, limiter *rate.Limiter) *BaseClient {
	return &BaseClient{
		ApiURL:  apiURL,
		auth:    auth,
		log:     log,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

// DoRequest выполняет один POST к Ozon API и раскладывает ответ в response.
// 4xx классифицируется как RemoteRejected, остальные сбои -- RemoteUnavailable.
func (c *BaseClient) DoRequest(ctx context.Context, endpoint string, requestBody interface{}, response interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return apperr.RemoteUnavailable(endpoint, 0, fmt.Errorf("rate limiter: %w", err))
		}
	}

	var bodyBytes []byte
	if requestBody != nil {
		var err error
		bodyBytes, err = json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s%s", c.ApiURL, endpoint), bytes.NewBuffer(bodyBytes))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.auth != nil {
		c.auth.SetAuth(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordRequest(endpoint, 0, time.Since(start))
		select {
		case <-ctx.Done():
			return apperr.RemoteUnavailable(endpoint, 0, fmt.Errorf("request was cancelled: %w", ctx.Err()))
		default:
			return apperr.RemoteUnavailable(endpoint, 0, err)
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	metrics.RecordRequest(endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return apperr.RemoteUnavailable(endpoint, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		c.log.Errorf("ozon rejected request to %s: %d %s", endpoint, resp.StatusCode, string(body))
		return apperr.RemoteRejected(endpoint, resp.StatusCode, string(body))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperr.RemoteUnavailable(endpoint, resp.StatusCode, nil)
	}

	if response != nil {
		if err := json.Unmarshal(body, response); err != nil {
			return apperr.RemoteUnavailable(endpoint, resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err))
		}
	}

	return nil
}
