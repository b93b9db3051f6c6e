package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"net/url"

	"github.com/shopspring/decimal"
)

const PaymentStatusPaid = "paid"

// PaymentEvent is the SnapScan payment notification. The event is vendor-defined
// and never checked against a schema: a field of an unexpected type reads as absent.
// Raw keeps the event as delivered.
type PaymentEvent struct {
	Status        string
	Amount        Number
	CustomerEmail string
	MetadataEmail string

	Raw json.RawMessage
}

// ParsePaymentEvent decodes a webhook body. SnapScan posts form-encoded bodies
// carrying the JSON event in the "payload" field; plain JSON bodies are accepted too.
func ParsePaymentEvent(contentType string, body []byte) (*PaymentEvent, error) {
	payload := body

	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType == "application/x-www-form-urlencoded" {
		form, err := url.ParseQuery(string(body))
		if err != nil {
			return nil, fmt.Errorf("parse form body: %w", err)
		}
		if !form.Has("payload") {
			return nil, fmt.Errorf("form body has no payload field")
		}
		payload = []byte(form.Get("payload"))
	}

	if !json.Valid(payload) {
		return nil, fmt.Errorf("decode payment event: body is not json")
	}

	fields := objectFields(payload)
	event := PaymentEvent{
		Status:        stringField(fields["status"]),
		CustomerEmail: stringField(objectFields(fields["customer"])["email"]),
		MetadataEmail: stringField(objectFields(fields["metadata"])["email"]),
	}
	// Number never rejects a value; an unreadable amount stays invalid.
	_ = event.Amount.UnmarshalJSON(fields["amount"])

	var compact bytes.Buffer
	if err := json.Compact(&compact, payload); err != nil {
		return nil, fmt.Errorf("compact payment event: %w", err)
	}
	event.Raw = compact.Bytes()

	return &event, nil
}

func (e *PaymentEvent) IsPaid() bool {
	return e.Status == PaymentStatusPaid
}

// PayerEmail looks in customer.email first, then metadata.email.
func (e *PaymentEvent) PayerEmail() string {
	if e.CustomerEmail != "" {
		return e.CustomerEmail
	}
	return e.MetadataEmail
}

// AmountMajor renders the cent amount in major units with two decimals, e.g. 10000 -> "100.00".
func (e *PaymentEvent) AmountMajor() string {
	return e.Amount.Or(decimal.Zero).Shift(-2).StringFixed(2)
}

// objectFields reads raw as a JSON object; anything else yields no fields.
func objectFields(raw json.RawMessage) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

// stringField reads raw as a JSON string; anything else yields "".
func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
