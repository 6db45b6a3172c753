package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// MaxPasswordLength is the longest password bcrypt can hash.
const MaxPasswordLength = 72

// DefaultTokenTTL is the access token lifetime when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// Options configures the identity service.
type Options struct {
	// Secret signs access tokens. Required.
	Secret []byte
	// TokenTTL is the access token and session lifetime.
	TokenTTL time.Duration
	// HashCost is the bcrypt cost. Zero uses bcrypt.DefaultCost.
	HashCost int
}

func (o Options) withDefaults() Options {
	if o.TokenTTL <= 0 {
		o.TokenTTL = DefaultTokenTTL
	}
	if o.HashCost == 0 {
		o.HashCost = bcrypt.DefaultCost
	}
	return o
}
