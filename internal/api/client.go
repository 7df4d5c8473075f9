// Package api is the HTTP client for the course-generation backend. Every
// call is fire-once: no retries, no backoff, the only timeout is the one
// on the underlying http.Client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/coursetrail/coursetrail/internal/course"
)

// Client talks to the course-generation backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a backend client. A zero timeout leaves the transport
// default in place.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the backend address the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

type healthResponse struct {
	Status string `json:"status"`
	Ollama struct {
		Status string `json:"status"`
		URL    string `json:"url"`
		Error  string `json:"error"`
	} `json:"ollama"`
}

// CheckHealth reports whether the backend and its Ollama runtime are
// reachable.
func (c *Client) CheckHealth(ctx context.Context) (*HealthStatus, error) {
	var resp healthResponse
	if err := c.getJSON(ctx, "/api/health", &resp); err != nil {
		return nil, err
	}
	return &HealthStatus{
		Connected:    resp.Ollama.Status == "connected",
		OllamaStatus: resp.Ollama.Status,
		OllamaURL:    resp.Ollama.URL,
		Detail:       resp.Ollama.Error,
	}, nil
}

// ListModels returns the models installed on the backend's Ollama runtime.
// An empty list is a valid result, not an error.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var resp struct {
		Models []Model `json:"models"`
	}
	if err := c.getJSON(ctx, "/api/models", &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}

// GenerateOutline asks the backend for a full weekly course outline.
func (c *Client) GenerateOutline(ctx context.Context, goal, model string) (*course.Course, error) {
	payload := struct {
		Goal  string `json:"goal"`
		Model string `json:"model,omitempty"`
	}{Goal: goal, Model: model}

	var crs course.Course
	if err := c.postJSON(ctx, "/api/generate/outline", payload, &crs); err != nil {
		return nil, err
	}
	crs.Request = course.GenerationRequest{Goal: goal, Model: model}
	return &crs, nil
}

// GenerateWeek asks the backend for the daily breakdown of one week.
func (c *Client) GenerateWeek(ctx context.Context, req WeekRequest) ([]course.Day, error) {
	var resp struct {
		Days []course.Day `json:"days"`
	}
	if err := c.postJSON(ctx, "/api/generate/week", req, &resp); err != nil {
		return nil, err
	}
	return resp.Days, nil
}

// GenerateDay asks the backend for the detail content of one day.
func (c *Client) GenerateDay(ctx context.Context, req DayRequest) (*course.DayDetails, error) {
	var details course.DayDetails
	if err := c.postJSON(ctx, "/api/generate/day", req, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding backend response: %w", err)
	}
	return nil
}
