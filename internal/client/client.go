// Package client is a Go client for the job board API. It carries the
// acting persona (the demo stand-in for a session) and implements the
// message-thread behavior the browser UI performs: interval polling and
// optimistic sends with reconciliation.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/job-board/internal/dto"
	"github.com/fadilmartias/job-board/internal/model"
	"github.com/go-resty/resty/v2"
)

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")
	return &Client{http: http}
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether a retry could plausibly succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode >= 500
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type messagesEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []dto.MessageItem `json:"data"`
}

type messageEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    model.Message `json:"data"`
}

type personasEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    dto.PersonaList `json:"data"`
}

func apiError(resp *resty.Response) *APIError {
	message := "request failed"
	if env, ok := resp.Error().(*errorEnvelope); ok && env.Message != "" {
		message = env.Message
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}

// Messages fetches the ordered thread of an application.
func (c *Client) Messages(ctx context.Context, applicationID string) ([]dto.MessageItem, error) {
	var result messagesEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("applicationId", applicationID).
		SetResult(&result).
		SetError(&errorEnvelope{}).
		Get("/api/messages")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return result.Data, nil
}

// SendMessage posts one message; the request should carry a client token
// so the server can deduplicate retries.
func (c *Client) SendMessage(ctx context.Context, req dto.CreateMessageRequest) (*model.Message, error) {
	var result messageEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		SetError(&errorEnvelope{}).
		Post("/api/messages")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result.Data, nil
}

// Personas fetches the landing page identities.
func (c *Client) Personas(ctx context.Context) (*dto.PersonaList, error) {
	var result personasEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&errorEnvelope{}).
		Get("/api/personas")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiError(resp)
	}
	return &result.Data, nil
}
