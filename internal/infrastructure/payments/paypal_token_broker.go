package payments

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"booking_payments/internal/config"
	"booking_payments/internal/domain/entities"
	"booking_payments/internal/usecase/interfaces"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

const (
	paypalTokenPath = "/v1/oauth2/token"
	// Cached tokens are dropped this long before PayPal says they expire.
	tokenExpirySkew = 60 * time.Second
)

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// PayPalTokenBroker performs the OAuth client-credentials exchange.
//
// With a nil cache every FetchAccessToken is a fresh exchange. With a cache,
// tokens are reused until shortly before expiry or until invalidated.
type PayPalTokenBroker struct {
	client   *resty.Client
	creds    config.PayPal
	baseURL  string
	cache    interfaces.ITokenCache
	cacheKey string
}

var _ interfaces.ITokenBroker = (*PayPalTokenBroker)(nil)

func NewPayPalTokenBroker(creds config.PayPal, client *resty.Client, cache interfaces.ITokenCache) *PayPalTokenBroker {
	if !creds.Configured() {
		log.Printf("[payment][paypal][token] missing PAYPAL_CLIENT_ID/PAYPAL_CLIENT_SECRET; order operations will fail")
	}
	return &PayPalTokenBroker{
		client:   client,
		creds:    creds,
		baseURL:  creds.ResolvedBaseURL(),
		cache:    cache,
		cacheKey: tokenCacheKey(creds),
	}
}

func (b *PayPalTokenBroker) FetchAccessToken(ctx context.Context) (string, error) {
	if !b.creds.Configured() {
		return "", entities.ErrCredentialsMissing
	}

	if b.cache != nil {
		token, found, err := b.cache.Get(ctx, b.cacheKey)
		switch {
		case err != nil:
			log.Printf("[payment][paypal][token] cache read failed, exchanging err=%v", err)
		case found && token != "":
			return token, nil
		}
	}

	token, expiresIn, err := b.exchange(ctx)
	if err != nil {
		return "", err
	}

	if b.cache != nil {
		if ttl := time.Duration(expiresIn)*time.Second - tokenExpirySkew; ttl > 0 {
			if err := b.cache.Set(ctx, b.cacheKey, token, ttl); err != nil {
				log.Printf("[payment][paypal][token] cache write failed err=%v", err)
			}
		}
	}
	return token, nil
}

func (b *PayPalTokenBroker) InvalidateAccessToken(ctx context.Context) error {
	if b.cache == nil {
		return nil
	}
	log.Printf("[payment][paypal][token] invalidating cached token")
	return b.cache.Delete(ctx, b.cacheKey)
}

func (b *PayPalTokenBroker) exchange(ctx context.Context) (string, int64, error) {
	log.Printf("[payment][paypal][token] exchange start live=%t", b.creds.IsLive())

	resp, err := b.client.R().
		SetContext(ctx).
		SetBasicAuth(b.creds.ClientID, b.creds.ClientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(b.baseURL + paypalTokenPath)
	if err != nil {
		log.Printf("[payment][paypal][token] exchange transport failed err=%v", err)
		return "", 0, entities.NewProviderTransportError(entities.ErrTokenExchangeFailed, entities.ProviderPayPal, err)
	}
	if !resp.IsSuccess() {
		log.Printf("[payment][paypal][token] exchange rejected status=%d", resp.StatusCode())
		return "", 0, entities.NewProviderHTTPError(entities.ErrTokenExchangeFailed, entities.ProviderPayPal, resp.StatusCode(), resp.Body())
	}

	var tr paypalTokenResponse
	if err := sonic.Unmarshal(resp.Body(), &tr); err != nil || tr.AccessToken == "" {
		log.Printf("[payment][paypal][token] exchange returned no access_token")
		return "", 0, &entities.ProviderError{
			Kind:       entities.ErrTokenExchangeFailed,
			Provider:   entities.ProviderPayPal,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
			Err:        errors.New("token response has no access_token"),
		}
	}
	log.Printf("[payment][paypal][token] exchange success expires_in=%d", tr.ExpiresIn)
	return tr.AccessToken, tr.ExpiresIn, nil
}

// tokenCacheKey identifies a token by environment and client id without
// putting the raw client id in the cache.
func tokenCacheKey(creds config.PayPal) string {
	sum := sha256.Sum256([]byte(creds.Mode + "|" + creds.ClientID))
	return creds.Mode + ":" + hex.EncodeToString(sum[:])
}
