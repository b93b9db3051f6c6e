package client

import (
	"context"
	"storefront-checkout/internal/config"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const GatewayYoco = "yoco"

type YocoClient interface {
	CreateCheckoutSession(ctx context.Context, req *YocoCheckoutRequest) ([]byte, error)
}

type YocoCheckoutRequest struct {
	Amount      int64        `json:"amount"`
	Currency    string       `json:"currency"`
	CallbackURL string       `json:"callback_url"`
	Customer    Customer     `json:"customer"`
	Metadata    CartMetadata `json:"metadata"`
}

type yocoClientImpl struct {
	httpClient *resty.Client
	apiURL     string
}

func NewYocoClient(yocoCfg *config.Yoco, timeout time.Duration, logger *zap.Logger) YocoClient {
	return &yocoClientImpl{
		httpClient: newGatewayHTTPClient(yocoCfg.SecretKey, timeout, logger),
		apiURL:     yocoCfg.ApiURL,
	}
}

func (c *yocoClientImpl) CreateCheckoutSession(ctx context.Context, req *YocoCheckoutRequest) ([]byte, error) {
	return postJSON(ctx, c.httpClient, GatewayYoco, c.apiURL, req)
}
