package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/dto"

	"go.uber.org/zap"
)

const transactionFailedMessage = "Transaction initialization failed"

type PaystackService interface {
	InitializeTransaction(ctx context.Context, req *dto.TransactionRequest) (json.RawMessage, error)
}

type paystackServiceImpl struct {
	paystackClient client.PaystackClient
	logger         *zap.Logger
}

func NewPaystackService(paystackClient client.PaystackClient, logger *zap.Logger) PaystackService {
	return &paystackServiceImpl{
		paystackClient: paystackClient,
		logger:         logger,
	}
}

// InitializeTransaction returns Paystack's response body untouched.
func (s *paystackServiceImpl) InitializeTransaction(ctx context.Context, req *dto.TransactionRequest) (json.RawMessage, error) {
	amount := bytes.TrimSpace(req.Amount)
	if req.Email == "" || len(amount) == 0 || bytes.Equal(amount, []byte("null")) {
		return nil, badRequest("email and amount required")
	}

	body, err := s.paystackClient.InitializeTransaction(ctx, &client.PaystackInitializeRequest{
		Email:  req.Email,
		Amount: amount,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if vendorErr, ok := asVendorError(err); ok {
			status = UpstreamStatus(vendorErr.StatusCode)
			s.logger.Error("transaction initialization error",
				zap.Int("status", vendorErr.StatusCode),
				zap.ByteString("body", vendorErr.Body),
			)
		} else {
			s.logger.Error("transaction initialization failed", zap.Error(err))
		}
		return nil, &ServiceError{StatusCode: status, Message: transactionFailedMessage, Err: err}
	}

	if !json.Valid(body) {
		quoted, _ := json.Marshal(string(body))
		return quoted, nil
	}
	return json.RawMessage(body), nil
}
