package interfaces

import (
	"context"
	"time"
)

//go:generate mockgen -source=token_interface.go -destination=mocks/token_interface_mock.go -package=mock_interfaces

// ITokenBroker exchanges PayPal client credentials for a bearer token.
//
// InvalidateAccessToken is the forced-refresh path: the next fetch must hit
// the provider even if a cached token has not expired yet.
type ITokenBroker interface {
	FetchAccessToken(ctx context.Context) (string, error)
	InvalidateAccessToken(ctx context.Context) error
}

// ITokenCache stores short-lived access tokens. A miss is ("", false, nil).
type ITokenCache interface {
	Get(ctx context.Context, key string) (token string, found bool, err error)
	Set(ctx context.Context, key string, token string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
