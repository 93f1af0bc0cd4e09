package model

import "time"

// Account is the canonical user record owned by the store. The password hash
// and the pending verification code never leave the service layer.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
	// PendingCode holds the currently outstanding verification code.
	// Empty once the account is verified.
	PendingCode string
}

// PublicView is the wire representation of an account.
type PublicView struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Account) Public() PublicView {
	return PublicView{
		ID:         a.ID,
		Email:      a.Email,
		IsVerified: a.IsVerified,
		CreatedAt:  a.CreatedAt,
	}
}
