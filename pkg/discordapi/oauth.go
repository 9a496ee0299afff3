package discordapi

import (
	"context"

	"golang.org/x/oauth2"
)

// ExchangeCode trades an OAuth authorization code for a token pair.
func ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	if oauthConf == nil {
		return nil, ErrNotInitialized
	}
	return oauthConf.Exchange(ctx, code)
}

// RefreshToken trades a refresh token for a fresh token pair. Discord rotates
// the refresh token on every use, so callers must store the returned one.
func RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	if oauthConf == nil {
		return nil, ErrNotInitialized
	}

	ts := oauthConf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	return ts.Token()
}
