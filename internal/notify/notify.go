// Package notify carries the revalidation signal: after a mutation that
// should invalidate a cached view, services publish the affected path. The
// delivery side (who listens, how views refresh) lives outside this service.
package notify

import (
	"encoding/json"
	"time"

	"crm-portal-backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Invalidator publishes path-invalidated signals. Implementations must be
// safe to call from request handlers; failures are logged, never surfaced to
// the caller, since revalidation is advisory.
type Invalidator interface {
	Invalidate(path string)
	Close() error
}

// Event is the wire shape of a revalidation signal
type Event struct {
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

// AMQPInvalidator publishes revalidation events to a fanout exchange
type AMQPInvalidator struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *logger.Logger
}

// Dial connects to AMQP and declares the revalidation exchange
func Dial(url, exchange string) (*AMQPInvalidator, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := channel.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPInvalidator{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		log:      logger.New().WithField("component", "notify"),
	}, nil
}

// Invalidate publishes a path-invalidated event. Errors are logged and
// dropped; a lost signal only delays a cache refresh.
func (i *AMQPInvalidator) Invalidate(path string) {
	event := Event{Path: path, At: time.Now().UTC()}
	body, err := json.Marshal(event)
	if err != nil {
		i.log.WithField("path", path).Errorf("marshal revalidation event: %v", err)
		return
	}

	err = i.channel.Publish(i.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		i.log.WithField("path", path).Warnf("publish revalidation event: %v", err)
	}
}

// Close closes the channel and connection
func (i *AMQPInvalidator) Close() error {
	if err := i.channel.Close(); err != nil {
		return err
	}
	return i.conn.Close()
}

// NoopInvalidator drops all signals. Used when AMQP is not configured.
type NoopInvalidator struct{}

// Invalidate does nothing
func (NoopInvalidator) Invalidate(path string) {}

// Close does nothing
func (NoopInvalidator) Close() error { return nil }
