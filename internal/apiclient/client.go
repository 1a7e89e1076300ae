package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecomeal/ecomeal/internal/types"
)

// Client talks to the EcoMeal analysis API. One POST per submission, no
// retries; the transport timeout is the only outer bound on a pending call.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// GenerateRecipe calls POST /generate-recipe.
func (c *Client) GenerateRecipe(ctx context.Context, req *types.RecipeRequest) (*types.RecipeResponse, error) {
	var resp types.RecipeResponse
	if err := c.post(ctx, "/generate-recipe", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalyzeMenu calls POST /restaurant-analysis.
func (c *Client) AnalyzeMenu(ctx context.Context, req *types.MenuRequest) (*types.MenuAnalysisResponse, error) {
	var resp types.MenuAnalysisResponse
	if err := c.post(ctx, "/restaurant-analysis", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
