package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.paystack.co"

// ErrTransactionNotFound maps the gateway's 404 on verify: the reference is
// unknown to Paystack.
var ErrTransactionNotFound = errors.New("paystack: transaction not found")

type InitializeRequest struct {
	Email       string            `json:"email"`
	AmountMinor int64             `json:"amount"` // kobo
	Reference   string            `json:"reference"`
	CallbackURL string            `json:"callback_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type Transaction struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type Verification struct {
	Status      string            `json:"status"`
	Reference   string            `json:"reference"`
	AmountMinor int64             `json:"amount"`
	Metadata    map[string]string `json:"metadata"`
	Raw         json.RawMessage   `json:"raw,omitempty"`
}

type Client struct {
	secretKey string
	baseURL   string
	httpc     *http.Client
	log       *zap.Logger
}

// New builds a Paystack client. Calls are plain blocking I/O with the client
// timeout as the upper bound; callers must not hold session locks across them.
func New(secretKey, baseURL string, log *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		secretKey: secretKey,
		baseURL:   baseURL,
		httpc:     &http.Client{Timeout: 15 * time.Second},
		log:       log,
	}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) InitializeTransaction(ctx context.Context, in InitializeRequest) (*Transaction, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack: initialize request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("paystack: invalid initialize response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Status {
		c.log.Warn("paystack initialize rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", env.Message),
			zap.String("reference", in.Reference),
		)
		if env.Message != "" {
			return nil, fmt.Errorf("paystack: %s", env.Message)
		}
		return nil, fmt.Errorf("paystack: initialize failed with status %d", resp.StatusCode)
	}

	var tx Transaction
	if err := json.Unmarshal(env.Data, &tx); err != nil {
		return nil, fmt.Errorf("paystack: invalid initialize payload: %w", err)
	}
	if tx.AuthorizationURL == "" {
		return nil, errors.New("paystack: initialize response missing authorization_url")
	}

	return &tx, nil
}

func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*Verification, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paystack: verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrTransactionNotFound
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("paystack: invalid verify response: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Status {
		if env.Message != "" {
			return nil, fmt.Errorf("paystack: %s", env.Message)
		}
		return nil, fmt.Errorf("paystack: verify failed with status %d", resp.StatusCode)
	}

	// Metadata values are not guaranteed to be strings, pick out the ones
	// that are.
	var data struct {
		Status    string          `json:"status"`
		Reference string          `json:"reference"`
		Amount    int64           `json:"amount"`
		Metadata  map[string]any  `json:"metadata"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("paystack: invalid verify payload: %w", err)
	}

	meta := make(map[string]string, len(data.Metadata))
	for k, v := range data.Metadata {
		if s, ok := v.(string); ok {
			meta[k] = s
		}
	}

	return &Verification{
		Status:      data.Status,
		Reference:   data.Reference,
		AmountMinor: data.Amount,
		Metadata:    meta,
		Raw:         env.Data,
	}, nil
}
