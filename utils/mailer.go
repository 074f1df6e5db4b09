package utils

import (
	"fmt"
	"net"
	"net/smtp"
)

// SMTPConfig is built once at process start and handed to the mailer; SMTP
// credentials are never read from ambient globals.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     string `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASS"`
	From     string `env:"SMTP_FROM"`
}

type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(to, subject, body string) error {
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	msg := []byte(
		"From: " + m.cfg.From + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg)
}

// OTPEmailBody renders the message carrying a one-time code. The code travels
// only through this channel, never through an API response.
func OTPEmailBody(otp string) string {
	return fmt.Sprintf(`Hello,

Your One-Time Password (OTP) is:

    %s

This OTP is valid for 10 minutes only.

If you did not request this, please ignore this email.

Thanks & Regards,
Secure Notes Team`, otp)
}

// ResetEmailBody renders the password-reset message with both the code and the
// fallback reset link.
func ResetEmailBody(otp, resetLink string) string {
	return fmt.Sprintf(`Hello,

You requested to reset your password.

Your One-Time Password (OTP) is:

    %s

Or click the link below to reset your password:

%s

The OTP is valid for 10 minutes and the link for 15 minutes.

If you did not request this, please ignore this email.

Thanks & Regards,
Secure Notes Team`, otp, resetLink)
}
