package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/metrics"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/pricing"
	"storefront-checkout/internal/repository"
	"strings"

	"go.uber.org/zap"
)

type SnapscanService interface {
	CreateSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.SnapscanSessionResponse, error)
	HandleWebhook(ctx context.Context, headers http.Header, body []byte) error
}

type snapscanServiceImpl struct {
	snapscanClient      client.SnapscanClient
	mailClient          client.MailClient
	notificationLogRepo repository.NotificationLogRepository
	pricing             pricing.Profile
	merchantID          string
	returnURL           string
	merchantEmail       string
	logger              *zap.Logger
}

func NewSnapscanService(
	snapscanClient client.SnapscanClient,
	mailClient client.MailClient,
	notificationLogRepo repository.NotificationLogRepository,
	profile pricing.Profile,
	merchantID string,
	returnURL string,
	merchantEmail string,
	logger *zap.Logger,
) SnapscanService {
	return &snapscanServiceImpl{
		snapscanClient:      snapscanClient,
		mailClient:          mailClient,
		notificationLogRepo: notificationLogRepo,
		pricing:             profile,
		merchantID:          merchantID,
		returnURL:           returnURL,
		merchantEmail:       merchantEmail,
		logger:              logger,
	}
}

func (s *snapscanServiceImpl) CreateSession(ctx context.Context, req *dto.CheckoutRequest) (*dto.SnapscanSessionResponse, error) {
	if req.Email == "" {
		return nil, badRequest("email required")
	}
	items := model.ParseCart(req.Cart)
	if len(items) == 0 {
		return nil, badRequest("cart empty")
	}

	amount := s.pricing.AmountCents(items)

	body, err := s.snapscanClient.CreateCheckout(ctx, &client.SnapscanCheckoutRequest{
		MerchantID: s.merchantID,
		Amount:     amount,
		Currency:   pricing.Currency,
		Customer:   client.Customer{Email: req.Email},
		ReturnURL:  s.returnURLFor(req.Email),
		Metadata:   client.CartMetadata{Cart: req.Cart},
	})
	if err != nil {
		if vendorErr, ok := asVendorError(err); ok {
			s.logger.Error("snapscan create checkout error",
				zap.Int("status", vendorErr.StatusCode),
				zap.ByteString("body", vendorErr.Body),
			)
			return nil, &ServiceError{
				StatusCode: UpstreamStatus(vendorErr.StatusCode),
				Message:    "snapscan error",
				Details:    bodyDetails(vendorErr.Body),
				Err:        err,
			}
		}
		s.logger.Error("snapscan create checkout failed", zap.Error(err))
		return nil, internalError(err)
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		s.logger.Error("snapscan response is not json", zap.ByteString("body", body))
		return nil, internalError(fmt.Errorf("decode snapscan response: %w", err))
	}

	resp := &dto.SnapscanSessionResponse{}
	if checkoutURL := firstString(obj, "checkout_url", "url"); checkoutURL != "" {
		resp.CheckoutURL = &checkoutURL
	}

	s.logger.Info("snapscan checkout created",
		zap.Int64("amount", amount),
		zap.Bool("has_checkout_url", resp.CheckoutURL != nil),
	)
	return resp, nil
}

// returnURLFor appends the shopper's email to the configured return URL, leaving
// any query already configured as written.
func (s *snapscanServiceImpl) returnURLFor(email string) string {
	param := "email=" + strings.ReplaceAll(url.QueryEscape(email), "+", "%20")

	u, err := url.Parse(s.returnURL)
	if err != nil {
		sep := "?"
		if strings.Contains(s.returnURL, "?") {
			sep = "&"
		}
		return s.returnURL + sep + param
	}

	if u.RawQuery == "" {
		u.RawQuery = param
	} else {
		u.RawQuery += "&" + param
	}
	return u.String()
}

func (s *snapscanServiceImpl) HandleWebhook(ctx context.Context, headers http.Header, body []byte) error {
	if err := s.snapscanClient.VerifyWebhookSignature(headers, body); err != nil {
		s.logger.Warn("snapscan webhook rejected", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusUnauthorized, Message: "unauthorized", Err: err}
	}

	event, err := model.ParsePaymentEvent(headers.Get("Content-Type"), body)
	if err != nil {
		s.logger.Error("snapscan webhook unreadable", zap.Error(err))
		return fmt.Errorf("parse snapscan webhook: %w", err)
	}

	if !event.IsPaid() {
		s.logger.Info("snapscan webhook ignored", zap.String("status", event.Status))
		return nil
	}

	payerEmail := event.PayerEmail()
	if payerEmail == "" {
		s.logger.Error("paid snapscan event without payer email")
		return fmt.Errorf("snapscan webhook: paid event has no payer email")
	}

	amount := event.AmountMajor()

	if err := s.notify(ctx, model.NotificationKindCustomer, payerEmail,
		"Payment received",
		fmt.Sprintf("Thank you — we received your payment of R%s.", amount),
	); err != nil {
		return err
	}

	if err := s.notify(ctx, model.NotificationKindMerchant, s.merchantEmail,
		"New payment received",
		fmt.Sprintf("A payment of R%s was received. Details: %s", amount, event.Raw),
	); err != nil {
		return err
	}

	s.logger.Info("snapscan payment confirmed", zap.String("amount", amount))
	return nil
}

// notify sends one email and records the attempt. A failed audit write is logged only.
func (s *snapscanServiceImpl) notify(ctx context.Context, kind, to, subject, text string) error {
	sendErr := s.mailClient.Send(ctx, to, subject, text)

	entry := &model.NotificationLog{
		Recipient: to,
		Subject:   subject,
		Kind:      kind,
		Status:    model.NotificationStatusSent,
	}
	if sendErr != nil {
		entry.Status = model.NotificationStatusFailed
		entry.Error = sendErr.Error()
	}
	metrics.ObserveEmail(entry.Status)

	if err := s.notificationLogRepo.Create(ctx, entry); err != nil {
		s.logger.Warn("failed to record notification", zap.String("kind", kind), zap.Error(err))
	}

	if sendErr != nil {
		s.logger.Error("failed to send email", zap.String("kind", kind), zap.Error(sendErr))
		return fmt.Errorf("send %s email: %w", kind, sendErr)
	}
	return nil
}
