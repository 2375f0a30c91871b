package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const registerManagerPath = "/internal/v1/identities/manager"

// Client is an HTTP adapter for the auth service's registration endpoint.
type Client struct {
	log     *zap.SugaredLogger
	baseURL string
	http    *http.Client
}

// NewClient constructs an identity client against the given base URL.
func NewClient(log *zap.SugaredLogger, baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		log:     log.Named("identity"),
		baseURL: baseURL,
		http:    httpClient,
	}
}

type registerRequest struct {
	AccountID  string `json:"account_id"`
	Email      string `json:"email"`
	Credential string `json:"credential"`
}

type registerResponse struct {
	Succeeded bool   `json:"succeeded"`
	Message   string `json:"message"`
}

// RegisterManagerIdentity posts the registration request. A reachable auth
// service that rejects the request yields a failed Result, not an error;
// transport failures are returned as errors.
func (c *Client) RegisterManagerIdentity(ctx context.Context, accountID, email, credential string) (Result, error) {
	body, err := json.Marshal(registerRequest{
		AccountID:  accountID,
		Email:      email,
		Credential: credential,
	})
	if err != nil {
		return Result{}, fmt.Errorf("marshal register request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+registerManagerPath, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build register request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("call identity service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var decoded registerResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("decode identity response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.log.Warnw("identity registration rejected",
			"account_id", accountID,
			"status", resp.StatusCode,
			"message", decoded.Message,
		)
		return Result{Succeeded: false, Message: decoded.Message}, nil
	}

	return Result{Succeeded: decoded.Succeeded, Message: decoded.Message}, nil
}
