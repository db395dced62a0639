package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the wrapper object returned by the accounts endpoint. The HTTP
// layer always answers 200 for a handled lookup; StatusCode inside the
// envelope carries the real discriminator, with 204 repurposed to signal
// "no account matched".
//
// Result is polymorphic on the wire: the account view on success, or a plain
// explanatory string when StatusCode is 204. RawMessage keeps both shapes
// round-trippable on the client side.
type Envelope struct {
	IsError           bool            `json:"isError"`
	Message           string          `json:"message"`
	StatusCode        int             `json:"statusCode"`
	Result            json.RawMessage `json:"result"`
	ResponseException *APIException   `json:"responseException,omitempty"`
}

// APIException carries structured error detail alongside the envelope
type APIException struct {
	ExceptionMessage string `json:"exceptionMessage"`
	Details          string `json:"details,omitempty"`
}

// NewAccountEnvelope builds a success envelope carrying the account view
func NewAccountEnvelope(account *AccountDetail) (*Envelope, error) {
	result, err := json.Marshal(account)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account result: %w", err)
	}

	return &Envelope{
		IsError:    false,
		Message:    "GET Request successful.",
		StatusCode: http.StatusOK,
		Result:     result,
	}, nil
}

// NewNoContentEnvelope builds an envelope signalling that no account matched.
// The explanatory text travels in Result, matching the observed wire shape.
func NewNoContentEnvelope(text string) (*Envelope, error) {
	result, err := json.Marshal(text)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal no-content result: %w", err)
	}

	return &Envelope{
		IsError:    false,
		Message:    "GET Request successful.",
		StatusCode: http.StatusNoContent,
		Result:     result,
	}, nil
}

// IsNoContent reports whether the envelope signals the no-account case
func (e *Envelope) IsNoContent() bool {
	return e.StatusCode == http.StatusNoContent
}

// DecodeAccount decodes the Result payload as an account view
func (e *Envelope) DecodeAccount() (*AccountDetail, error) {
	if len(e.Result) == 0 {
		return nil, fmt.Errorf("envelope has no result payload")
	}

	var account AccountDetail
	if err := json.Unmarshal(e.Result, &account); err != nil {
		return nil, fmt.Errorf("failed to decode account result: %w", err)
	}
	return &account, nil
}

// ResultText decodes the Result payload as the explanatory string carried by
// no-content envelopes. Falls back to the envelope Message when Result is
// absent or not a string.
func (e *Envelope) ResultText() string {
	var text string
	if len(e.Result) > 0 {
		if err := json.Unmarshal(e.Result, &text); err == nil && text != "" {
			return text
		}
	}
	return e.Message
}
