package service

import (
	"context"
	"errors"
	"net/http"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/model"
	"sync"
)

type fakeYocoClient struct {
	body []byte
	err  error
	got  *client.YocoCheckoutRequest
}

func (f *fakeYocoClient) CreateCheckoutSession(ctx context.Context, req *client.YocoCheckoutRequest) ([]byte, error) {
	f.got = req
	return f.body, f.err
}

type fakePaystackClient struct {
	body []byte
	err  error
	got  *client.PaystackInitializeRequest
}

func (f *fakePaystackClient) InitializeTransaction(ctx context.Context, req *client.PaystackInitializeRequest) ([]byte, error) {
	f.got = req
	return f.body, f.err
}

type fakeSnapscanClient struct {
	body      []byte
	err       error
	verifyErr error
	got       *client.SnapscanCheckoutRequest
}

func (f *fakeSnapscanClient) CreateCheckout(ctx context.Context, req *client.SnapscanCheckoutRequest) ([]byte, error) {
	f.got = req
	return f.body, f.err
}

func (f *fakeSnapscanClient) VerifyWebhookSignature(headers http.Header, body []byte) error {
	return f.verifyErr
}

type sentMail struct {
	to, subject, text string
}

type fakeMailClient struct {
	mu     sync.Mutex
	sent   []sentMail
	failTo map[string]error
}

func (f *fakeMailClient) Send(ctx context.Context, to, subject, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failTo[to]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, text: text})
	return nil
}

func (f *fakeMailClient) Close() error { return nil }

type fakeNotificationLogRepo struct {
	entries []*model.NotificationLog
	err     error
}

func (f *fakeNotificationLogRepo) Create(ctx context.Context, entry *model.NotificationLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

var errTransport = errors.New("dial tcp: connection refused")
