package service

import (
	"context"
	"encoding/json"
	"net/http"
	"storefront-checkout/internal/client"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/pricing"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestYocoService(t *testing.T, yoco *fakeYocoClient) YocoService {
	t.Helper()
	profile, err := pricing.NewProfile(pricing.RuleTiered)
	require.NoError(t, err)
	return NewYocoService(yoco, profile, "https://shop.example/callback", zap.NewNop())
}

func TestYocoCreateSession_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CheckoutRequest
		want string
	}{
		{"missing cart", dto.CheckoutRequest{Email: "a@b.com"}, "Cart is empty"},
		{"empty cart", dto.CheckoutRequest{Cart: json.RawMessage(`[]`), Email: "a@b.com"}, "Cart is empty"},
		{"cart not a list", dto.CheckoutRequest{Cart: json.RawMessage(`{"price":1}`), Email: "a@b.com"}, "Cart is empty"},
		{"cart checked before email", dto.CheckoutRequest{Cart: json.RawMessage(`[]`)}, "Cart is empty"},
		{"missing email", dto.CheckoutRequest{Cart: json.RawMessage(`[{"price":10,"quantity":1}]`)}, "Email required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yoco := &fakeYocoClient{}
			svc := newTestYocoService(t, yoco)

			resp, err := svc.CreateSession(context.Background(), &tt.req)

			assert.Nil(t, resp)
			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
			assert.Equal(t, tt.want, svcErr.Message)
			assert.Nil(t, yoco.got, "gateway must not be called")
		})
	}
}

func TestYocoCreateSession_Success(t *testing.T) {
	yoco := &fakeYocoClient{body: []byte(`{"id":"ch_1","redirectUrl":"ignored","data":{"checkout_url":"https://pay.yoco/x"},"url":"https://other"}`)}
	svc := newTestYocoService(t, yoco)

	cart := json.RawMessage(`[{"price":100,"quantity":1}]`)
	resp, err := svc.CreateSession(context.Background(), &dto.CheckoutRequest{Cart: cart, Email: "a@b.com"})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.yoco/x", resp.URL)
	assert.JSONEq(t, string(yoco.body), string(resp.Raw))

	require.NotNil(t, yoco.got)
	assert.Equal(t, int64(12100), yoco.got.Amount)
	assert.Equal(t, "ZAR", yoco.got.Currency)
	assert.Equal(t, "https://shop.example/callback", yoco.got.CallbackURL)
	assert.Equal(t, "a@b.com", yoco.got.Customer.Email)
	assert.JSONEq(t, string(cart), string(yoco.got.Metadata.Cart))
}

func TestYocoCreateSession_RedirectFallbackOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"authorization url", `{"data":{"authorization_url":"https://a"},"checkout_url":"https://b"}`, "https://a"},
		{"top level checkout url", `{"checkout_url":"https://b","redirect_url":"https://c"}`, "https://b"},
		{"redirect url", `{"redirect_url":"https://c","url":"https://d"}`, "https://c"},
		{"plain url", `{"url":"https://d"}`, "https://d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestYocoService(t, &fakeYocoClient{body: []byte(tt.body)})

			resp, err := svc.CreateSession(context.Background(), &dto.CheckoutRequest{
				Cart:  json.RawMessage(`[{"price":1,"quantity":1}]`),
				Email: "a@b.com",
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.URL)
		})
	}
}

func TestYocoCreateSession_MissingRedirect(t *testing.T) {
	svc := newTestYocoService(t, &fakeYocoClient{body: []byte(`{"id":"ch_1"}`)})

	_, err := svc.CreateSession(context.Background(), &dto.CheckoutRequest{
		Cart:  json.RawMessage(`[{"price":1,"quantity":1}]`),
		Email: "a@b.com",
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, "Missing checkout URL from Yoco", svcErr.Message)
}

func TestYocoCreateSession_VendorError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    any
	}{
		{"message passes through", http.StatusPaymentRequired, `{"message":"card declined"}`, http.StatusPaymentRequired, "card declined"},
		{"body when no message", http.StatusBadGateway, `{"code":"x"}`, http.StatusBadGateway, map[string]any{"code": "x"}},
		{"zero message falls back to body", http.StatusBadRequest, `{"message":0,"code":"x"}`, http.StatusBadRequest, map[string]any{"message": float64(0), "code": "x"}},
		{"empty message falls back to body", http.StatusBadRequest, `{"message":""}`, http.StatusBadRequest, map[string]any{"message": ""}},
		{"redirect status becomes 500", http.StatusFound, `{"message":"moved"}`, http.StatusInternalServerError, "moved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestYocoService(t, &fakeYocoClient{err: &client.VendorError{
				Gateway:    client.GatewayYoco,
				StatusCode: tt.status,
				Body:       []byte(tt.body),
			}})

			_, err := svc.CreateSession(context.Background(), &dto.CheckoutRequest{
				Cart:  json.RawMessage(`[{"price":1,"quantity":1}]`),
				Email: "a@b.com",
			})

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.wantStatus, svcErr.StatusCode)
			assert.Equal(t, tt.wantMsg, svcErr.Message)
		})
	}
}

func TestYocoCreateSession_TransportError(t *testing.T) {
	svc := newTestYocoService(t, &fakeYocoClient{err: errTransport})

	_, err := svc.CreateSession(context.Background(), &dto.CheckoutRequest{
		Cart:  json.RawMessage(`[{"price":1,"quantity":1}]`),
		Email: "a@b.com",
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.ErrorIs(t, err, errTransport)
}
