package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenPayload captures the data available when minting a session JWT.
type SessionTokenPayload struct {
	SellerID int64
	Email    string
	JTI      string
}

// SessionTokenClaims represents the typed JWT stored inside a session record.
type SessionTokenClaims struct {
	SellerID int64  `json:"seller_id"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
