package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	Mail        Mail
	DatabaseURL string `env:"DATABASE_URL" envDefault:"checkout.db"`

	Yoco     Yoco     `envPrefix:"YOCO_"`
	Snapscan Snapscan `envPrefix:"SNAPSCAN_"`
	Paystack Paystack `envPrefix:"PAYSTACK_"`
	SMTP     SMTP     `envPrefix:"SMTP_"`
	Shipping Shipping `envPrefix:"SHIPPING_RULE_"`
}

type Yoco struct {
	SecretKey   string `env:"SECRET_KEY" envDefault:"sk_test_YOCO_SECRET_KEY"`
	ApiURL      string `env:"API_URL" envDefault:"https://online.yoco.com/v1/checkout/sessions"`
	CallbackURL string `env:"CALLBACK_URL" envDefault:"http://localhost:5500/success.html"`
}

type Snapscan struct {
	ApiToken      string `env:"API_TOKEN" envDefault:"replace_with_key"`
	MerchantID    string `env:"MERCHANT_ID" envDefault:"your_merchant_id"`
	ApiURL        string `env:"API_URL" envDefault:"https://api.snapscan.io/v1/checkouts"`
	ReturnURL     string `env:"RETURN_URL" envDefault:"http://localhost:3000/payment-success"`
	WebhookSecret string `env:"WEBHOOK_SECRET" envDefault:"replace_with_webhook_secret"`
}

type Paystack struct {
	SecretKey string `env:"SECRET_KEY" envDefault:"sk_test_PAYSTACK_SECRET_KEY"`
	ApiURL    string `env:"API_URL" envDefault:"https://api.paystack.co/transaction/initialize"`
}

type SMTP struct {
	Host        string        `env:"HOST" envDefault:"smtp.example.com"`
	Port        int           `env:"PORT" envDefault:"587"`
	User        string        `env:"USER" envDefault:"user"`
	Pass        string        `env:"PASS" envDefault:"pass"`
	PoolSize    int           `env:"POOL_SIZE" envDefault:"2"`
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT" envDefault:"30s"`
}

type Mail struct {
	From          string `env:"EMAIL_FROM" envDefault:"no-reply@example.com"`
	MerchantEmail string `env:"MERCHANT_EMAIL" envDefault:"merchant@example.com"`
}

// Shipping picks the pricing rule ("flat" or "tiered") applied per gateway.
type Shipping struct {
	Yoco     string `env:"YOCO" envDefault:"tiered"`
	Snapscan string `env:"SNAPSCAN" envDefault:"flat"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host          string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port          string        `env:"PORT" envDefault:"4242"`
	ClientTimeout time.Duration `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30s"`
}
