package orderservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/polkiloo/orderboard/internal/domain/model"
)

const (
	allOrdersPath = "/api/order/get-all-order"
	statusOK      = "OK"
)

// ErrUnauthorized indicates the order service refused the access token.
var ErrUnauthorized = errors.New("order service rejected access token")

// RejectedError carries a non-OK status envelope returned with HTTP 200.
type RejectedError struct {
	Status  string
	Message string
}

func (e RejectedError) Error() string {
	return fmt.Sprintf("order service returned %s: %s", e.Status, e.Message)
}

// Client exposes read operations of the remote order service.
type Client interface {
	AllOrders(ctx context.Context, accessToken string) ([]model.Order, error)
}

// HTTPClient implements Client via the order service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// envelope mirrors the JSON wrapper used by every order service response.
type envelope struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    []model.Order `json:"data"`
}

// NewHTTPClient creates an order service client bounded by the given timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order service url must be absolute")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// AllOrders requests every order visible to the holder of accessToken.
func (c *HTTPClient) AllOrders(ctx context.Context, accessToken string) ([]model.Order, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, allOrdersPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("token", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data envelope
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
		if data.Status != "" && data.Status != statusOK {
			return nil, RejectedError{Status: data.Status, Message: data.Message}
		}
		if data.Data == nil {
			return []model.Order{}, nil
		}
		return data.Data, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("order service request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("order service error: %s", resp.Status)
	}
}
