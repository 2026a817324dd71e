// Package banking talks to the Capital One Nessie sandbox.
package banking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/financial-coach/backend/internal/application/adapter"
)

// DefaultBaseURL is the public Nessie endpoint.
const DefaultBaseURL = "http://api.nessieisreal.com"

// maxMerchants caps how many merchants purchases are spread across.
const maxMerchants = 10

// StatusError is returned when Nessie answers with an unexpected status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nessie %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Retryable reports whether the request may succeed if repeated.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// permanentError marks failures that repeating the request cannot fix.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }

func (e *permanentError) Unwrap() error { return e.err }

// ClientConfig holds the Nessie connection settings.
type ClientConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	Attempts   uint
	RetryDelay time.Duration
}

// NessieClient implements adapter.BankingClient over the Nessie REST API.
type NessieClient struct {
	http   *http.Client
	config ClientConfig
	logger *slog.Logger
}

// NewNessieClient creates a new Nessie client.
func NewNessieClient(config ClientConfig) *NessieClient {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Attempts == 0 {
		config.Attempts = 3
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = 500 * time.Millisecond
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &NessieClient{
		http:   &http.Client{Timeout: config.Timeout},
		config: config,
		logger: slog.With("component", "nessie"),
	}
}

type nessieAddress struct {
	StreetNumber string `json:"street_number"`
	StreetName   string `json:"street_name"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
}

type nessieCustomer struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Address   nessieAddress `json:"address"`
}

type nessieAccount struct {
	Type     string  `json:"type"`
	Nickname string  `json:"nickname"`
	Rewards  int     `json:"rewards"`
	Balance  float64 `json:"balance"`
}

type nessiePurchase struct {
	MerchantID  string  `json:"merchant_id"`
	Medium      string  `json:"medium"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

type createdResponse struct {
	ObjectCreated struct {
		ID string `json:"_id"`
	} `json:"objectCreated"`
}

type merchant struct {
	ID string `json:"_id"`
}

// CreateCustomer creates a customer and returns its Nessie id.
func (c *NessieClient) CreateCustomer(ctx context.Context, customer adapter.BankCustomer) (string, error) {
	body := nessieCustomer{
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Address: nessieAddress{
			StreetNumber: customer.StreetNumber,
			StreetName:   customer.StreetName,
			City:         customer.City,
			State:        customer.State,
			Zip:          customer.Zip,
		},
	}

	var created createdResponse
	if err := c.do(ctx, http.MethodPost, "/customers", body, http.StatusCreated, &created); err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}
	if created.ObjectCreated.ID == "" {
		return "", errors.New("failed to create customer: response has no id")
	}
	return created.ObjectCreated.ID, nil
}

// CreateAccount opens an account for customerID and returns its Nessie id.
func (c *NessieClient) CreateAccount(ctx context.Context, customerID string, account adapter.BankAccount) (string, error) {
	balance, _ := account.Balance.Float64()
	body := nessieAccount{
		Type:     account.Type,
		Nickname: account.Nickname,
		Rewards:  account.Rewards,
		Balance:  balance,
	}

	var created createdResponse
	path := "/customers/" + url.PathEscape(customerID) + "/accounts"
	if err := c.do(ctx, http.MethodPost, path, body, http.StatusCreated, &created); err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}
	if created.ObjectCreated.ID == "" {
		return "", errors.New("failed to create account: response has no id")
	}
	return created.ObjectCreated.ID, nil
}

// ListMerchantIDs returns the ids of the first merchants Nessie knows about.
func (c *NessieClient) ListMerchantIDs(ctx context.Context) ([]string, error) {
	var merchants []merchant
	if err := c.do(ctx, http.MethodGet, "/merchants", nil, http.StatusOK, &merchants); err != nil {
		return nil, fmt.Errorf("failed to list merchants: %w", err)
	}

	ids := make([]string, 0, maxMerchants)
	for _, m := range merchants {
		if len(ids) == maxMerchants {
			break
		}
		if m.ID != "" {
			ids = append(ids, m.ID)
		}
	}
	return ids, nil
}

// CreatePurchase posts a purchase to accountID.
func (c *NessieClient) CreatePurchase(ctx context.Context, accountID string, purchase adapter.BankPurchase) error {
	amount, _ := purchase.Amount.Float64()
	body := nessiePurchase{
		MerchantID:  purchase.MerchantID,
		Medium:      purchase.Medium,
		Amount:      amount,
		Description: purchase.Description,
	}

	path := "/accounts/" + url.PathEscape(accountID) + "/purchases"
	if err := c.do(ctx, http.MethodPost, path, body, http.StatusCreated, nil); err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// do sends one JSON request, retrying rate limits, server errors and transport failures.
func (c *NessieClient) do(ctx context.Context, method, path string, body any, expected int, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	endpoint := c.config.BaseURL + path + "?key=" + url.QueryEscape(c.config.APIKey)

	return retry.Do(
		func() error {
			var reader io.Reader
			if payload != nil {
				reader = bytes.NewReader(payload)
			}
			req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
			if err != nil {
				return &permanentError{err: err}
			}
			if payload != nil {
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if resp.StatusCode != expected {
				return &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(raw)}
			}
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(raw, out); err != nil {
				return &permanentError{err: fmt.Errorf("failed to decode response: %w", err)}
			}
			return nil
		},
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			var permanent *permanentError
			if errors.As(err, &permanent) {
				return false
			}
			var statusErr *StatusError
			if errors.As(err, &statusErr) {
				if statusErr.Retryable() {
					c.logger.Warn("Nessie request failed, will retry", "path", path, "status", statusErr.StatusCode)
					return true
				}
				return false
			}
			return ctx.Err() == nil
		}),
		retry.Attempts(c.config.Attempts),
		retry.Delay(c.config.RetryDelay),
		retry.LastErrorOnly(true),
	)
}

var _ adapter.BankingClient = (*NessieClient)(nil)
