package client

import (
	"context"
	"encoding/json"
	"storefront-checkout/internal/config"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const GatewayPaystack = "paystack"

type PaystackClient interface {
	InitializeTransaction(ctx context.Context, req *PaystackInitializeRequest) ([]byte, error)
}

// Amount is forwarded untouched; Paystack expects it in the smallest currency unit.
type PaystackInitializeRequest struct {
	Email  string          `json:"email"`
	Amount json.RawMessage `json:"amount"`
}

type paystackClientImpl struct {
	httpClient *resty.Client
	apiURL     string
}

func NewPaystackClient(paystackCfg *config.Paystack, timeout time.Duration, logger *zap.Logger) PaystackClient {
	return &paystackClientImpl{
		httpClient: newGatewayHTTPClient(paystackCfg.SecretKey, timeout, logger),
		apiURL:     paystackCfg.ApiURL,
	}
}

func (c *paystackClientImpl) InitializeTransaction(ctx context.Context, req *PaystackInitializeRequest) ([]byte, error) {
	return postJSON(ctx, c.httpClient, GatewayPaystack, c.apiURL, req)
}
