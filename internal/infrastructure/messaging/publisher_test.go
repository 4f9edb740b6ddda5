package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestor-ventas-api/internal/application/billing"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	out []published
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.out = append(f.out, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func TestPublisher_PublishInvoiceCreated(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "gestor.events"}

	evt := billing.InvoiceCreatedEvent{
		InvoiceID: 10, InvoiceNumber: 3, UserID: 2,
		Total: decimal.RequireFromString("700.50"), Lines: 2,
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, p.PublishInvoiceCreated(context.Background(), evt))

	require.Len(t, ch.out, 1)
	got := ch.out[0]
	assert.Equal(t, "gestor.events", got.exchange)
	assert.Equal(t, RoutingKeyInvoiceCreated, got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, float64(10), decoded["invoiceId"])
	assert.Equal(t, "700.5", decoded["total"])
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishInvoiceCreated(context.Background(), billing.InvoiceCreatedEvent{}))
}
