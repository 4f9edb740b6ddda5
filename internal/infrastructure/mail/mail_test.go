package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/gestor-ventas-api/internal/application/ports"
	"github.com/jhoicas/gestor-ventas-api/pkg/config"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestSMTPSender_Send(t *testing.T) {
	d := &recordingDialer{}
	s := &SMTPSender{dialer: d, from: "no-reply@tienda.test", fromName: "Tienda"}

	err := s.Send(context.Background(), ports.MailMessage{To: "ana@example.com", Subject: "Hola", HTML: "<p>hola</p>"})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"ana@example.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"Hola"}, d.sent[0].GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = d.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<p>hola</p>")
}

func TestSMTPSender_Errors(t *testing.T) {
	d := &recordingDialer{err: errors.New("conexión rechazada")}
	s := &SMTPSender{dialer: d, from: "a@b.c"}

	assert.Error(t, s.Send(context.Background(), ports.MailMessage{}))
	assert.ErrorContains(t, s.Send(context.Background(), ports.MailMessage{To: "x@y.z"}), "conexión rechazada")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, ports.MailMessage{To: "x@y.z"}), context.Canceled)
}

type fakeSendGrid struct {
	last   *sgmail.SGMailV3
	status int
}

func (f *fakeSendGrid) SendWithContext(_ context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	f.last = email
	return &rest.Response{StatusCode: f.status, Body: "{}"}, nil
}

func TestSendGridSender_Send(t *testing.T) {
	client := &fakeSendGrid{status: 202}
	s := &SendGridSender{client: client, from: "no-reply@tienda.test", fromName: "Tienda"}

	require.NoError(t, s.Send(context.Background(), ports.MailMessage{To: "ana@example.com", Subject: "Reset", HTML: "<a>link</a>"}))
	require.NotNil(t, client.last)
	assert.Equal(t, "Reset", client.last.Subject)
	assert.Equal(t, "no-reply@tienda.test", client.last.From.Address)

	client.status = 401
	assert.ErrorContains(t, s.Send(context.Background(), ports.MailMessage{To: "ana@example.com"}), "status=401")
}

func TestNewSender(t *testing.T) {
	s, err := NewSender(config.MailConfig{Provider: config.MailProviderSMTP, SMTPHost: "localhost", SMTPPort: 25})
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	_, err = NewSender(config.MailConfig{Provider: config.MailProviderSendGrid})
	assert.Error(t, err)

	s, err = NewSender(config.MailConfig{Provider: config.MailProviderSendGrid, SendGridAPIKey: "SG.x", From: "a@b.c"})
	require.NoError(t, err)
	assert.IsType(t, &SendGridSender{}, s)

	_, err = NewSender(config.MailConfig{Provider: "fax"})
	assert.Error(t, err)
}
