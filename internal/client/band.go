package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/VistorGiese/back-proj-7-REDUZIDO/internal/domain"
)

// BandClient talks to the band service over HTTP.
type BandClient struct {
	baseURL string
	client  *http.Client
}

func NewBandClient(baseURL string, timeout time.Duration) *BandClient {
	return &BandClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *BandClient) Exists(ctx context.Context, id string) (bool, error) {
	resp, err := c.get(ctx, id)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("band service returned status %d", resp.StatusCode)
	}
}

func (c *BandClient) Summary(ctx context.Context, id string) (*domain.BandSummary, error) {
	resp, err := c.get(ctx, id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.ErrBandNotFound
	default:
		return nil, fmt.Errorf("band service returned status %d", resp.StatusCode)
	}

	var body struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode band response: %w", err)
	}

	return &domain.BandSummary{
		ID:          body.ID,
		Name:        body.Name,
		Description: body.Description,
	}, nil
}

func (c *BandClient) get(ctx context.Context, id string) (*http.Response, error) {
	url := fmt.Sprintf("%s/api/bands/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build band request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call band service: %w", err)
	}
	return resp, nil
}
