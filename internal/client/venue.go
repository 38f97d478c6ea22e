package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// VenueClient talks to the establishment service over HTTP.
type VenueClient struct {
	baseURL string
	client  *http.Client
}

func NewVenueClient(baseURL string, timeout time.Duration) *VenueClient {
	return &VenueClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *VenueClient) Exists(ctx context.Context, id string) (bool, error) {
	url := fmt.Sprintf("%s/api/establishments/%s", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("build establishment request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("call establishment service: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("establishment service returned status %d", resp.StatusCode)
	}
}
