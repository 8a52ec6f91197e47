package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PayPalModeLive    = "live"
	PayPalModeSandbox = "sandbox"

	PayPalLiveURL    = "https://api-m.paypal.com"
	PayPalSandboxURL = "https://api-m.sandbox.paypal.com"

	RazorpayDefaultURL = "https://api.razorpay.com"
)

// Config is the process-wide credential store. It is read once at startup by
// NewConfig and handed to constructors by value; nothing mutates it afterwards.
type Config struct {
	Server     Server
	Razorpay   Razorpay
	Stripe     Stripe
	PayPal     PayPal
	HTTPClient HTTPClient
	TokenCache TokenCache
	Telemetry  Telemetry
}

type Server struct {
	Port string
	// DefaultOrigin is used for checkout redirect URLs when the request has no Origin header.
	DefaultOrigin string
}

type Razorpay struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

func (r Razorpay) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

type Stripe struct {
	SecretKey string
	// BaseURL overrides the SDK default API URL; empty keeps https://api.stripe.com.
	BaseURL string
}

func (s Stripe) Configured() bool {
	return s.SecretKey != ""
}

type PayPal struct {
	ClientID     string
	ClientSecret string
	Mode         string
	BaseURL      string
}

func (p PayPal) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

func (p PayPal) IsLive() bool {
	return p.Mode == PayPalModeLive
}

// ResolvedBaseURL returns the explicit override when set, otherwise the
// API host matching the configured mode.
func (p PayPal) ResolvedBaseURL() string {
	if p.BaseURL != "" {
		return strings.TrimRight(p.BaseURL, "/")
	}
	if p.IsLive() {
		return PayPalLiveURL
	}
	return PayPalSandboxURL
}

type HTTPClient struct {
	Timeout time.Duration
}

// TokenCache configures the optional Redis cache for PayPal access tokens.
// An empty Addr disables caching and every order operation exchanges a new token.
type TokenCache struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func (t TokenCache) Enabled() bool {
	return t.Addr != ""
}

type Telemetry struct {
	Enabled     bool
	ServiceName string
}

func NewConfig() Config {
	return Config{
		Server: Server{
			Port:          getEnvString("PORT", "8080"),
			DefaultOrigin: strings.TrimRight(getEnvString("DEFAULT_ORIGIN", "http://localhost:5173"), "/"),
		},
		Razorpay: Razorpay{
			KeyID:     getEnvTrimmed("RAZORPAY_KEY_ID"),
			KeySecret: getEnvTrimmed("RAZORPAY_KEY_SECRET"),
			BaseURL:   strings.TrimRight(getEnvString("RAZORPAY_API_URL", RazorpayDefaultURL), "/"),
		},
		Stripe: Stripe{
			SecretKey: getEnvTrimmed("STRIPE_SECRET_KEY"),
			BaseURL:   strings.TrimRight(getEnvTrimmed("STRIPE_API_URL"), "/"),
		},
		PayPal: PayPal{
			ClientID:     getEnvTrimmed("PAYPAL_CLIENT_ID"),
			ClientSecret: getEnvTrimmed("PAYPAL_CLIENT_SECRET"),
			Mode:         normalizePayPalMode(os.Getenv("PAYPAL_MODE")),
			BaseURL:      getEnvTrimmed("PAYPAL_API_URL"),
		},
		HTTPClient: HTTPClient{
			Timeout: time.Duration(getEnvPositiveInt("PROVIDER_TIMEOUT_SECONDS", 20)) * time.Second,
		},
		TokenCache: TokenCache{
			Addr:     getEnvTrimmed("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			Prefix:   getEnvString("PAYPAL_TOKEN_CACHE_PREFIX", "paypal:access_token:"),
		},
		Telemetry: Telemetry{
			Enabled:     getEnvBool("OTEL_ENABLED", false),
			ServiceName: getEnvString("OTEL_SERVICE_NAME", "booking-payments"),
		},
	}
}

func normalizePayPalMode(v string) string {
	if strings.ToLower(strings.TrimSpace(v)) == PayPalModeLive {
		return PayPalModeLive
	}
	return PayPalModeSandbox
}

func getEnvString(key string, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	return strings.TrimSpace(value)
}

func getEnvTrimmed(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || intValue < 0 {
		return defaultValue
	}

	return intValue
}

// getEnvPositiveInt is getEnvInt for settings where zero would disable a limit.
func getEnvPositiveInt(key string, defaultValue int) int {
	if value := getEnvInt(key, defaultValue); value > 0 {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
