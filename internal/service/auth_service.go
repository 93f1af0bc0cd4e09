package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/raimonvibe/email-authentication-tutorial/internal/model"
	appErr "github.com/raimonvibe/email-authentication-tutorial/internal/pkg/errors"
	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/password"
	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/token"
	"github.com/raimonvibe/email-authentication-tutorial/internal/pkg/vercode"
	"github.com/raimonvibe/email-authentication-tutorial/internal/store"
)

const minPasswordLen = 6

// AuthService implements the account state machine:
// UNREGISTERED -> PENDING_VERIFICATION -> VERIFIED. Nothing leaves VERIFIED.
type AuthService struct {
	store       *store.AccountStore
	sender      EmailSender
	jwtSecret   []byte
	tokenTTL    time.Duration
	sendTimeout time.Duration
	revealCodes bool
}

type Options struct {
	// Sender is nil when no mail provider is configured; that is only
	// valid together with RevealCodes (the degraded tutorial mode).
	Sender      EmailSender
	JWTSecret   []byte
	TokenTTL    time.Duration
	SendTimeout time.Duration
	RevealCodes bool
}

func NewAuthService(accounts *store.AccountStore, opts Options) *AuthService {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 1440 * time.Minute
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 10 * time.Second
	}
	return &AuthService{
		store:       accounts,
		sender:      opts.Sender,
		jwtSecret:   opts.JWTSecret,
		tokenTTL:    opts.TokenTTL,
		sendTimeout: opts.SendTimeout,
		revealCodes: opts.RevealCodes,
	}
}

// SignupResult is the structured outcome of a signup or resend.
type SignupResult struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	// VerificationCode is populated only in reveal mode, when no mail
	// provider is configured. It must never appear otherwise.
	VerificationCode string `json:"verification_code,omitempty"`
}

// LoginResult carries the issued bearer token and the public account view.
type LoginResult struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	User        model.PublicView `json:"user"`
}

// Signup registers a new account, or rotates and resends the verification
// code when the email already has an unverified account. A delivery failure
// is reported but never rolls the account back.
func (s *AuthService) Signup(ctx context.Context, email, plainPassword string) (*SignupResult, error) {
	if existing, ok := s.store.Get(email); ok {
		if existing.IsVerified {
			return nil, appErr.ErrDuplicateAccount
		}
		return s.resend(ctx, existing)
	}

	if len(plainPassword) < minPasswordLen {
		return nil, appErr.ErrWeakPassword
	}
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	code, err := vercode.Generate()
	if err != nil {
		return nil, err
	}
	account, err := s.store.Create(uuid.NewString(), email, hash, code)
	if err != nil {
		return nil, err
	}
	// Account stays created even when delivery fails; the caller retries
	// by signing up again, which rotates the code.
	if err := s.deliver(ctx, email, code); err != nil {
		return nil, err
	}
	result := &SignupResult{
		Message: "Account created successfully! Check your email for the verification code.",
		UserID:  account.ID,
	}
	if s.revealCodes {
		result.Message = "Account created successfully! Use verification code: " + code
		result.VerificationCode = code
	}
	return result, nil
}

func (s *AuthService) resend(ctx context.Context, account model.Account) (*SignupResult, error) {
	code, err := vercode.Generate()
	if err != nil {
		return nil, err
	}
	if err := s.store.SetPendingCode(account.Email, code); err != nil {
		return nil, err
	}
	if err := s.deliver(ctx, account.Email, code); err != nil {
		return nil, err
	}
	result := &SignupResult{
		Message: "Verification code resent. Check your email for the new code.",
		UserID:  account.ID,
	}
	if s.revealCodes {
		result.Message = "Verification code resent. Use verification code: " + code
		result.VerificationCode = code
	}
	return result, nil
}

func (s *AuthService) deliver(ctx context.Context, email, code string) error {
	if s.sender == nil {
		// Reveal mode: the code travels in the response instead.
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()
	if err := s.sender.Send(ctx, email, code); err != nil {
		logutil.GetLogger(ctx).Error("verification email delivery failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return appErr.ErrEmailDelivery
	}
	return nil
}

// VerifyEmail transitions a pending account to VERIFIED when the code
// matches, clearing the outstanding code.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	account, ok := s.store.Get(email)
	if !ok {
		return appErr.ErrNotFound
	}
	if account.IsVerified {
		return appErr.ErrAlreadyVerified
	}
	stored, ok := s.store.PendingCode(email)
	if !ok || stored != code {
		return appErr.ErrInvalidCode
	}
	return s.store.SetVerified(email)
}

// Login checks credentials and issues a bearer token bound to the email.
// A missing account and a wrong password are indistinguishable to the
// caller; an unverified account is deliberately disclosed as such.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	account, ok := s.store.Get(email)
	if !ok {
		return nil, appErr.ErrInvalidCredentials
	}
	if !account.IsVerified {
		return nil, appErr.ErrNotVerified
	}
	if !password.Verify(plainPassword, account.PasswordHash) {
		return nil, appErr.ErrInvalidCredentials
	}
	signed, err := token.Issue(account.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken: signed,
		TokenType:   "bearer",
		User:        account.Public(),
	}, nil
}

// ResolveCurrentUser validates a bearer token and looks up its subject.
// Every failure collapses to ErrUnauthorized; the caller must not learn
// whether the token or the account was the problem.
func (s *AuthService) ResolveCurrentUser(ctx context.Context, tokenString string) (model.Account, error) {
	subject, err := token.Validate(tokenString, s.jwtSecret)
	if err != nil {
		return model.Account{}, appErr.ErrUnauthorized
	}
	account, ok := s.store.Get(subject)
	if !ok {
		return model.Account{}, appErr.ErrUnauthorized
	}
	return account, nil
}

// ListAccounts returns public views of every account in insertion order.
func (s *AuthService) ListAccounts(ctx context.Context) []model.PublicView {
	accounts := s.store.List()
	views := make([]model.PublicView, 0, len(accounts))
	for i := range accounts {
		views = append(views, accounts[i].Public())
	}
	return views
}
