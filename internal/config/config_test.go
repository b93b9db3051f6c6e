package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, "4242", cfg.HTTP.Port)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ClientTimeout)
	assert.Equal(t, "https://online.yoco.com/v1/checkout/sessions", cfg.Yoco.ApiURL)
	assert.Equal(t, "https://api.snapscan.io/v1/checkouts", cfg.Snapscan.ApiURL)
	assert.Equal(t, "https://api.paystack.co/transaction/initialize", cfg.Paystack.ApiURL)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "merchant@example.com", cfg.Mail.MerchantEmail)
	assert.Equal(t, "tiered", cfg.Shipping.Yoco)
	assert.Equal(t, "flat", cfg.Shipping.Snapscan)
}

func TestParsePrefixedOverrides(t *testing.T) {
	t.Setenv("YOCO_SECRET_KEY", "sk_live_abc")
	t.Setenv("SNAPSCAN_MERCHANT_ID", "shop-42")
	t.Setenv("SMTP_POOL_SIZE", "5")
	t.Setenv("SHIPPING_RULE_YOCO", "flat")
	t.Setenv("PORT", "9000")

	cfg := &Config{}
	require.NoError(t, env.Parse(cfg))

	assert.Equal(t, "sk_live_abc", cfg.Yoco.SecretKey)
	assert.Equal(t, "shop-42", cfg.Snapscan.MerchantID)
	assert.Equal(t, 5, cfg.SMTP.PoolSize)
	assert.Equal(t, "flat", cfg.Shipping.Yoco)
	assert.Equal(t, "9000", cfg.HTTP.Port)
}
