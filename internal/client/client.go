package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PatternsTechGit/PT-HandlingNoContent/internal/dto"
)

// ErrUnexpectedStatus is returned when the server answers with a transport
// status the envelope protocol does not use
var ErrUnexpectedStatus = errors.New("unexpected response status")

const lookupPath = "/api/Accounts/GetAccountByAccountNumber/"

// LookupOutcome is the decoded result of one account lookup. Exactly one of
// the two shapes is populated: Account when the envelope carried a view, or
// NoContentText when the envelope's statusCode was 204.
type LookupOutcome struct {
	Account       *dto.AccountDetail
	NoContent     bool
	NoContentText string
}

// AccountClientInterface defines the consumer side of the accounts endpoint
type AccountClientInterface interface {
	GetAccountByAccountNumber(ctx context.Context, accountNumber string) (*LookupOutcome, error)
}

// Client talks to the accounts API and unwraps its response envelopes
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an accounts API client
func NewClient(baseURL string, timeout time.Duration) AccountClientInterface {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetAccountByAccountNumber fetches one account by number.
//
// The server answers 200 for both hits and misses; the envelope's statusCode
// discriminates. A miss is reported through the outcome, not the error: the
// error return is reserved for transport and protocol failures.
func (c *Client) GetAccountByAccountNumber(ctx context.Context, accountNumber string) (*LookupOutcome, error) {
	endpoint := c.baseURL + lookupPath + url.PathEscape(accountNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read lookup response: %w", err)
	}

	var envelope dto.Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode lookup envelope: %w", err)
	}

	if envelope.IsNoContent() {
		return &LookupOutcome{
			NoContent:     true,
			NoContentText: envelope.ResultText(),
		}, nil
	}

	account, err := envelope.DecodeAccount()
	if err != nil {
		return nil, err
	}

	return &LookupOutcome{Account: account}, nil
}
