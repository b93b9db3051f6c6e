package client

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"storefront-checkout/internal/config"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const GatewaySnapscan = "snapscan"

var ErrInvalidSignature = errors.New("invalid webhook signature")

type SnapscanClient interface {
	CreateCheckout(ctx context.Context, req *SnapscanCheckoutRequest) ([]byte, error)
	VerifyWebhookSignature(headers http.Header, body []byte) error
}

type SnapscanCheckoutRequest struct {
	MerchantID string       `json:"merchant_id"`
	Amount     int64        `json:"amount"`
	Currency   string       `json:"currency"`
	Customer   Customer     `json:"customer"`
	ReturnURL  string       `json:"return_url"`
	Metadata   CartMetadata `json:"metadata"`
}

type snapscanClientImpl struct {
	httpClient    *resty.Client
	apiURL        string
	webhookSecret []byte
}

func NewSnapscanClient(snapscanCfg *config.Snapscan, timeout time.Duration, logger *zap.Logger) SnapscanClient {
	return &snapscanClientImpl{
		httpClient:    newGatewayHTTPClient(snapscanCfg.ApiToken, timeout, logger),
		apiURL:        snapscanCfg.ApiURL,
		webhookSecret: []byte(snapscanCfg.WebhookSecret),
	}
}

func (c *snapscanClientImpl) CreateCheckout(ctx context.Context, req *SnapscanCheckoutRequest) ([]byte, error) {
	return postJSON(ctx, c.httpClient, GatewaySnapscan, c.apiURL, req)
}

// VerifyWebhookSignature checks the hex HMAC-SHA256 of the raw body, sent either as
// "Authorization: SnapScan signature=<hex>" or as "X-Signature: <hex>".
func (c *snapscanClientImpl) VerifyWebhookSignature(headers http.Header, body []byte) error {
	if len(c.webhookSecret) == 0 {
		return fmt.Errorf("%w: no webhook secret configured", ErrInvalidSignature)
	}

	signature := signatureFromHeaders(headers)
	if signature == "" {
		return fmt.Errorf("%w: missing signature", ErrInvalidSignature)
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("%w: malformed signature", ErrInvalidSignature)
	}

	if !hmac.Equal(got, SignWebhookBody(c.webhookSecret, body)) {
		return ErrInvalidSignature
	}
	return nil
}

func SignWebhookBody(secret, body []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return mac.Sum(nil)
}

func signatureFromHeaders(headers http.Header) string {
	auth := strings.TrimSpace(headers.Get("Authorization"))
	if scheme, params, ok := strings.Cut(auth, " "); ok && strings.EqualFold(scheme, "SnapScan") {
		if value, ok := strings.CutPrefix(strings.TrimSpace(params), "signature="); ok {
			return strings.TrimSpace(value)
		}
	}
	return strings.TrimSpace(headers.Get("X-Signature"))
}
