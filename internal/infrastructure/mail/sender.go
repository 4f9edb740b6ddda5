package mail

import (
	"fmt"

	"github.com/jhoicas/gestor-ventas-api/internal/application/ports"
	"github.com/jhoicas/gestor-ventas-api/pkg/config"
)

// NewSender elige el adaptador según MAIL_PROVIDER.
func NewSender(cfg config.MailConfig) (ports.MailSender, error) {
	switch cfg.Provider {
	case config.MailProviderSMTP:
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
			FromName: cfg.FromName,
		}), nil
	case config.MailProviderSendGrid:
		return NewSendGridSender(cfg.SendGridAPIKey, cfg.From, cfg.FromName)
	default:
		return nil, fmt.Errorf("mail: proveedor desconocido %q", cfg.Provider)
	}
}
