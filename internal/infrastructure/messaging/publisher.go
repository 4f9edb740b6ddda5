package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jhoicas/gestor-ventas-api/internal/application/billing"
)

// RoutingKeyInvoiceCreated routing key del evento de factura creada.
const RoutingKeyInvoiceCreated = "invoice.created"

// channel lo cumple *amqp.Channel.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

var (
	_ billing.EventPublisher = (*Publisher)(nil)
	_ billing.EventPublisher = NopPublisher{}
)

// Publisher publica eventos de facturación en RabbitMQ como JSON.
type Publisher struct {
	mu       sync.Mutex
	ch       channel
	exchange string
}

// NewPublisher crea el publicador sobre un canal ya abierto.
func NewPublisher(ch *amqp.Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

// PublishInvoiceCreated publica el evento invoice.created como mensaje persistente.
func (p *Publisher) PublishInvoiceCreated(ctx context.Context, evt billing.InvoiceCreatedEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(ctx,
		p.exchange,               // exchange
		RoutingKeyInvoiceCreated, // routing key
		false,                    // mandatory
		false,                    // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Type:         RoutingKeyInvoiceCreated,
			Body:         body,
		},
	)
}

// NopPublisher descarta los eventos; se usa cuando no hay RABBITMQ_URL.
type NopPublisher struct{}

// PublishInvoiceCreated no hace nada.
func (NopPublisher) PublishInvoiceCreated(context.Context, billing.InvoiceCreatedEvent) error {
	return nil
}
