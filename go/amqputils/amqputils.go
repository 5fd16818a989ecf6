// Package amqputils holds the broker configuration and queue topology shared
// by the gateway publisher and the persister consumer.
package amqputils

import (
	"fmt"
	"net"
	"net/url"

	"github.com/hashicorp/go-multierror"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/OlegKovalenko00/webmetrics/go/events"
	"github.com/OlegKovalenko00/webmetrics/go/util"
	"github.com/OlegKovalenko00/webmetrics/go/wmerr"
)

// Config describes how to reach the broker.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	VHost    string
}

// ConfigFromEnv builds a Config from the RABBITMQ_* environment variables,
// falling back to the development defaults.
func ConfigFromEnv() Config {
	return Config{
		Host:     util.EnvOr("RABBITMQ_HOST", "localhost"),
		Port:     util.EnvOr("RABBITMQ_PORT", "5672"),
		User:     util.EnvOr("RABBITMQ_USER", "guest"),
		Password: util.EnvOr("RABBITMQ_PASSWORD", "guest"),
		VHost:    util.EnvOr("RABBITMQ_VHOST", "/"),
	}
}

// URI renders the Config as an AMQP connection string. The default vhost is
// rendered with no path segment at all, which the dialer interprets as "/".
func (c Config) URI() string {
	vhost := ""
	if c.VHost != "" && c.VHost != "/" {
		vhost = "/" + url.PathEscape(c.VHost)
	}
	return fmt.Sprintf("amqp://%s@%s%s", url.UserPassword(c.User, c.Password).String(), net.JoinHostPort(c.Host, c.Port), vhost)
}

// DeclareQueues declares one durable queue per event kind on ch. Declaration
// is idempotent as long as the queue parameters don't change.
func DeclareQueues(ch *amqp.Channel) error {
	for _, kind := range events.AllKinds {
		if _, err := ch.QueueDeclare(kind.QueueName(), true, false, false, false, nil); err != nil {
			return wmerr.Wrapf(err, "declaring queue %q", kind.QueueName())
		}
	}
	return nil
}

// Dial connects to the broker described by cfg, opens a channel, and declares
// the queue topology. The caller owns both returned values.
func Dial(cfg Config) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(cfg.URI())
	if err != nil {
		return nil, nil, wmerr.Wrapf(err, "dialing broker at %s:%s", cfg.Host, cfg.Port)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, wmerr.Wrapf(err, "opening channel")
	}
	if err := DeclareQueues(ch); err != nil {
		_ = Close(ch, conn)
		return nil, nil, err
	}
	return conn, ch, nil
}

// Close shuts down the channel and then the connection, collecting any
// errors. Either argument may be nil.
func Close(ch *amqp.Channel, conn *amqp.Connection) error {
	var ret *multierror.Error
	if ch != nil {
		if err := ch.Close(); err != nil {
			ret = multierror.Append(ret, err)
		}
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			ret = multierror.Append(ret, err)
		}
	}
	return ret.ErrorOrNil()
}

// JSONMessage wraps body as a persistent JSON message, the only message
// shape this pipeline publishes.
func JSONMessage(body []byte) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}
}
