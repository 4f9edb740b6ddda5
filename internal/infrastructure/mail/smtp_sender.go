package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/gestor-ventas-api/internal/application/ports"
)

var _ ports.MailSender = (*SMTPSender)(nil)

// dialer lo cumple *gomail.Dialer.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender envía correos por SMTP con gomail.
type SMTPSender struct {
	dialer   dialer
	from     string
	fromName string
}

// SMTPConfig datos de conexión SMTP.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
}

// NewSMTPSender construye el adaptador SMTP.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

// Send arma el mensaje HTML y lo entrega al servidor SMTP.
func (s *SMTPSender) Send(ctx context.Context, msg ports.MailMessage) error {
	if msg.To == "" {
		return fmt.Errorf("smtp: destinatario vacío")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	log.Debug().Str("to", msg.To).Str("subject", msg.Subject).Msg("correo enviado por SMTP")
	return nil
}
