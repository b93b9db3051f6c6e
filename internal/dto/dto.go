package dto

import "encoding/json"

// Cart is kept raw: it is priced leniently and echoed back to the gateway as metadata.
type CheckoutRequest struct {
	Cart  json.RawMessage `json:"cart"`
	Email string          `json:"email"`
}

type YocoSessionResponse struct {
	URL string          `json:"url"`
	Raw json.RawMessage `json:"raw"`
}

type SnapscanSessionResponse struct {
	CheckoutURL *string `json:"checkout_url"`
}

type TransactionRequest struct {
	Email  string          `json:"email"`
	Amount json.RawMessage `json:"amount"`
}

type ErrorResponse struct {
	Error   any `json:"error"`
	Details any `json:"details,omitempty"`
}
