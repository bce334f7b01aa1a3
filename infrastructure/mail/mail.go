package mail

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Config holds SMTP settings. An empty Host selects the log sender, which is
// what local development runs with.
type Config struct {
	Host        string
	Port        string
	Username    string
	Password    string
	FromAddress string
	AppBaseURL  string
}

// SMTPSender delivers verification mail over plain SMTP auth.
type SMTPSender struct {
	cfg Config
}

func NewSMTPSender(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) SendVerification(ctx context.Context, email, token string) error {
	link := strings.TrimSuffix(s.cfg.AppBaseURL, "/") + "/api/auth/verify?token=" + token

	var msg strings.Builder
	msg.WriteString("From: " + s.cfg.FromAddress + "\r\n")
	msg.WriteString("To: " + email + "\r\n")
	msg.WriteString("Subject: Verify your email\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("Welcome! Please verify your email by opening this link:\r\n\r\n")
	msg.WriteString(link + "\r\n")

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.FromAddress, []string{email}, []byte(msg.String()))
}

// LogSender writes the verification link to the process log instead of
// sending mail. Used when no SMTP host is configured.
type LogSender struct {
	AppBaseURL string
}

func (s *LogSender) SendVerification(ctx context.Context, email, token string) error {
	link := strings.TrimSuffix(s.AppBaseURL, "/") + "/api/auth/verify?token=" + token
	log.Printf("verification link for %s: %s", email, link)
	return nil
}
