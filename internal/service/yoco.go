package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/pricing"

	"go.uber.org/zap"
)

// Yoco responses have carried the hosted page URL under different keys; first match wins.
var yocoRedirectPaths = []string{
	"data.checkout_url",
	"data.authorization_url",
	"checkout_url",
	"redirect_url",
	"url",
}

type YocoService interface {
	CreateSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.YocoSessionResponse, error)
}

type yocoServiceImpl struct {
	yocoClient  client.YocoClient
	pricing     pricing.Profile
	callbackURL string
	logger      *zap.Logger
}

func NewYocoService(
	yocoClient client.YocoClient,
	profile pricing.Profile,
	callbackURL string,
	logger *zap.Logger,
) YocoService {
	return &yocoServiceImpl{
		yocoClient:  yocoClient,
		pricing:     profile,
		callbackURL: callbackURL,
		logger:      logger,
	}
}

func (s *yocoServiceImpl) CreateSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.YocoSessionResponse, error) {
	items := model.ParseCart(req.Cart)
	if len(items) == 0 {
		return nil, badRequest("Cart is empty")
	}
	if req.Email == "" {
		return nil, badRequest("Email required")
	}

	amount := s.pricing.AmountCents(items)

	body, err := s.yocoClient.CreateCheckoutSession(ctx, &client.YocoCheckoutRequest{
		Amount:      amount,
		Currency:    pricing.Currency,
		CallbackURL: s.callbackURL,
		Customer:    client.Customer{Email: req.Email},
		Metadata:    client.CartMetadata{Cart: req.Cart},
	})
	if err != nil {
		if vendorErr, ok := asVendorError(err); ok {
			s.logger.Error("yoco create session error",
				zap.Int("status", vendorErr.StatusCode),
				zap.ByteString("body", vendorErr.Body),
			)
			return nil, &ServiceError{
				StatusCode: UpstreamStatus(vendorErr.StatusCode),
				Message:    yocoErrorMessage(vendorErr.Body),
				Err:        err,
			}
		}
		s.logger.Error("yoco create session failed", zap.Error(err))
		return nil, internalError(err)
	}

	obj := decodeObject(body)
	checkoutURL := firstString(obj, yocoRedirectPaths...)
	if checkoutURL == "" {
		s.logger.Error("yoco response missing redirect url", zap.ByteString("body", body))
		return nil, &ServiceError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Missing checkout URL from Yoco",
			Err:        errors.New("yoco response has no redirect url"),
		}
	}

	s.logger.Info("yoco session created",
		zap.Int64("amount", amount),
		zap.String("rule", string(s.pricing.Rule)),
	)

	return &dto.YocoSessionResponse{
		URL: checkoutURL,
		Raw: json.RawMessage(body),
	}, nil
}

// yocoErrorMessage prefers the gateway's "message" field and falls back to the whole body.
func yocoErrorMessage(body []byte) any {
	obj := decodeObject(body)
	if msg, ok := obj["message"]; ok && msg != nil && msg != "" && msg != false && msg != float64(0) {
		return msg
	}
	return obj
}
