package mail

import (
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/bagdasarian/league-manager/internal/config"
	"github.com/bagdasarian/league-manager/internal/domain"
	"github.com/rs/zerolog/log"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPEmailer отправляет отдельное письмо каждому получателю
type SMTPEmailer struct {
	addr   string
	auth   smtp.Auth
	sender string
	send   sendFunc
}

func NewSMTPEmailer(cfg config.MailConfig) *SMTPEmailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	}
	return &SMTPEmailer{
		addr:   net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:   auth,
		sender: cfg.Sender,
		send:   smtp.SendMail,
	}
}

// SendPlainEmail продолжает рассылку после неудачи и возвращает все ошибки
func (e *SMTPEmailer) SendPlainEmail(recipients []string, subject, message string) error {
	var errs []error
	for _, rcpt := range recipients {
		msg := buildMessage(e.sender, rcpt, subject, message)
		if err := e.send(e.addr, e.auth, e.sender, []string{rcpt}, msg); err != nil {
			log.Error().Err(err).Str("recipient", rcpt).Msg("failed to send email")
			errs = append(errs, fmt.Errorf("send to %s: %w", rcpt, err))
			continue
		}
		log.Info().Str("recipient", rcpt).Msg("email sent")
	}
	return errors.Join(errs...)
}

// headerValue убирает переводы строк: значение заголовка не должно начинать новый заголовок
var headerValue = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + headerValue.Replace(from) + "\r\n")
	b.WriteString("To: " + headerValue.Replace(to) + "\r\n")
	b.WriteString("Subject: " + headerValue.Replace(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// LogEmailer только пишет письмо в лог
type LogEmailer struct{}

func (LogEmailer) SendPlainEmail(recipients []string, subject, message string) error {
	log.Info().
		Strs("recipients", recipients).
		Str("subject", subject).
		Int("length", len(message)).
		Msg("email not sent: smtp is not configured")
	return nil
}

// New выбирает SMTP, если задан хост, иначе LogEmailer
func New(cfg config.MailConfig) domain.Emailer {
	if cfg.SMTPHost == "" {
		return LogEmailer{}
	}
	return NewSMTPEmailer(cfg)
}
