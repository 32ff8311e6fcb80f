// Package client provides a typed HTTP client for the marketplace REST
// contract consumed by the storefront: the product catalogue, the order
// list, and order submission.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"digikart/internal/model"

	"github.com/rs/zerolog"
)

// Client calls the marketplace API. Every request carries a context with a
// per-call timeout so a stalled backend cannot pin a session forever.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
	logger  zerolog.Logger
}

// New creates a marketplace API client. baseURL is the externally configured
// API root, e.g. "http://localhost:8080/api".
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		timeout: timeout,
		logger:  logger.With().Str("component", "backend_client").Logger(),
	}
}

// FetchProducts retrieves the full product catalogue.
func (c *Client) FetchProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

// FetchOrders retrieves every order for the admin panel.
func (c *Client) FetchOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.get(ctx, "/orders", &orders); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// SubmitOrder posts the checkout payload and returns the created order.
func (c *Client) SubmitOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("submit order: encode payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("submit order: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		c.logger.Error().Err(err).Msg("order submission request failed")
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("backend rejected order submission")
		return nil, fmt.Errorf("submit order: backend returned status %d", resp.StatusCode)
	}

	var order model.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("submit order: decode response: %w", err)
	}

	c.logger.Info().
		Str("order_id", order.ID.String()).
		Float64("total_amount", order.TotalAmount).
		Msg("order submitted")

	return &order, nil
}

// get performs a GET request against the API root and decodes the response.
func (c *Client) get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("backend request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Str("path", path).
			Msg("backend returned non-OK status")
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
