package service

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/raimonvibe/email-authentication-tutorial/internal/config"
	appErr "github.com/raimonvibe/email-authentication-tutorial/internal/pkg/errors"
)

// EmailSender delivers a verification code to an address. Implementations
// must honor ctx so a hanging provider cannot stall the calling request.
type EmailSender interface {
	Send(ctx context.Context, to, code string) error
}

type smtpSender struct {
	cfg config.MailConfig
}

// NewSMTPSender builds the production sender from mail config.
func NewSMTPSender(cfg config.MailConfig) EmailSender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(ctx context.Context, to, code string) error {
	from := strings.TrimSpace(s.cfg.From)
	if s.cfg.Host == "" || s.cfg.Port == 0 || from == "" {
		return appErr.ErrInvalid
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Your verification code\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		"Your verification code is " + code + ".")

	// smtp.SendMail has no context support, so run it on the side and give
	// up when ctx expires. The goroutine finishes on its own timeline.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, from, []string{to}, msg)
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
