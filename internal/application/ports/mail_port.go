package ports

import "context"

// MailMessage correo saliente en HTML.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

// MailSender define el puerto de salida para el envío de correos.
// Cualquier adaptador (SMTP, SendGrid, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}
