package mailing

import (
	"FoodBridge/internal/utils"
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

var ErrMailerNotConfigured = errors.New("smtp is not configured")

type (
	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	smtpMailer struct {
		config MailConfig
	}
)

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// NewMailer returns nil when no SMTP host is configured.
func NewMailer(config MailConfig) Mailer {
	if config.SMTPHost == "" {
		return nil
	}
	return &smtpMailer{config: config}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	if m.config.SMTPHost == "" {
		return ErrMailerNotConfigured
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", mailer.FormatAddress(m.config.SMTPEmail, m.config.SMTPSender))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid smtp port %q: %w", m.config.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}
