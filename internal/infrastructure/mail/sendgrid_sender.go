package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/jhoicas/gestor-ventas-api/internal/application/ports"
)

var _ ports.MailSender = (*SendGridSender)(nil)

// sendgridClient lo cumple *sendgrid.Client.
type sendgridClient interface {
	SendWithContext(ctx context.Context, email *sgmail.SGMailV3) (*rest.Response, error)
}

// SendGridSender envía correos con la API de SendGrid.
type SendGridSender struct {
	client   sendgridClient
	from     string
	fromName string
}

// NewSendGridSender construye el adaptador. apiKey no puede ir vacío.
func NewSendGridSender(apiKey, from, fromName string) (*SendGridSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid api key is empty")
	}
	return &SendGridSender{
		client:   sendgrid.NewSendClient(apiKey),
		from:     from,
		fromName: fromName,
	}, nil
}

// Send envía el mensaje; un status >= 400 se trata como error.
func (s *SendGridSender) Send(ctx context.Context, msg ports.MailMessage) error {
	if s.from == "" {
		return fmt.Errorf("from address is empty")
	}
	if msg.To == "" {
		return fmt.Errorf("to address is empty")
	}
	message := sgmail.NewSingleEmail(
		sgmail.NewEmail(s.fromName, s.from),
		msg.Subject,
		sgmail.NewEmail("", msg.To),
		"",
		msg.HTML,
	)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Error().Int("status", response.StatusCode).Str("body", response.Body).Msg("sendgrid rechazó el correo")
		return fmt.Errorf("sendgrid send failed: status=%d, body=%s", response.StatusCode, response.Body)
	}
	log.Debug().Int("status", response.StatusCode).Str("to", msg.To).Str("subject", msg.Subject).Msg("correo enviado por SendGrid")
	return nil
}
