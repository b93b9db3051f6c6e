package client

import (
	"context"
	"encoding/json"
	"fmt"
	"storefront-checkout/internal/metrics"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type Customer struct {
	Email string `json:"email"`
}

// CartMetadata echoes the cart back to the gateway exactly as the shopper sent it.
type CartMetadata struct {
	Cart json.RawMessage `json:"cart"`
}

// VendorError is a non-2xx answer from a payment gateway.
type VendorError struct {
	Gateway    string
	StatusCode int
	Body       []byte
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("%s error %d: %s", e.Gateway, e.StatusCode, string(e.Body))
}

func newGatewayHTTPClient(token string, timeout time.Duration, logger *zap.Logger) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(logger.Sugar())
}

// postJSON sends one POST and returns the body of a 2xx response.
// Non-2xx answers come back as *VendorError.
func postJSON(ctx context.Context, httpClient *resty.Client, gateway, url string, payload any) ([]byte, error) {
	resp, err := httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(url)
	if err != nil {
		metrics.ObserveGatewayCall(gateway, metrics.OutcomeTransportError)
		return nil, fmt.Errorf("%s request: %w", gateway, err)
	}

	if !resp.IsSuccess() {
		metrics.ObserveGatewayCall(gateway, metrics.OutcomeVendorError)
		return nil, &VendorError{
			Gateway:    gateway,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}

	metrics.ObserveGatewayCall(gateway, metrics.OutcomeSuccess)
	return resp.Body(), nil
}
