package auth

import "github.com/RostislavK636/B2B-marketplace/internal/sellers"

// RegisterRequest is the seller registration payload.
type RegisterRequest struct {
	Name        string  `json:"name" validate:"required"`
	Surname     string  `json:"surname" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Password    string  `json:"password" validate:"required,min=8"`
	Company     *string `json:"company,omitempty"`
	TaxpayerID  *string `json:"taxpayerId,omitempty"`
}

// LoginRequest is the credentials payload for session login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries the session identifier for the cookie plus the
// authenticated seller's profile for the response body.
type LoginResult struct {
	SessionID string
	Seller    sellers.SellerDTO
}

// SessionStatusDTO reports whether the caller holds an active session.
// An unauthenticated caller is a normal answer, not an error.
type SessionStatusDTO struct {
	Authenticated bool    `json:"authenticated"`
	SellerID      *int64  `json:"sellerId,omitempty"`
	SellerEmail   *string `json:"sellerEmail,omitempty"`
}
