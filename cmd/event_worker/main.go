package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/kyystore-api/config"
	"github.com/oksasatya/kyystore-api/internal/events"
	"github.com/oksasatya/kyystore-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	logger := helpers.NewLogger(cfg.AppName+"-events", cfg.Env)

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if err := helpers.DeclareQueue(ch, cfg.RabbitMQEventsQueue); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			evt, err := decodeEvent(msg.Body)
			if err != nil {
				logger.WithError(err).Warn("bad message")
				_ = msg.Nack(false, false)
				continue
			}
			logRegistered(logger, evt)
			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.WithField("queue", cfg.RabbitMQEventsQueue).Info("event worker listening")
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

func decodeEvent(body []byte) (*events.UserRegistered, error) {
	var evt events.UserRegistered
	if err := json.Unmarshal(body, &evt); err != nil {
		return nil, err
	}
	if evt.Type != events.TypeUserRegistered {
		return nil, fmt.Errorf("unknown event type %q", evt.Type)
	}
	return &evt, nil
}

// logRegistered writes one line per new customer with the stored tokens.
func logRegistered(logger *logrus.Logger, evt *events.UserRegistered) {
	fields := logrus.Fields{
		"user_id":     evt.UserID,
		"email":       evt.Email,
		"name":        evt.Name,
		"occurred_at": evt.OccurredAt.Format(time.RFC3339),
	}
	for k, v := range evt.EncryptedFields {
		fields["enc_"+k] = v
	}
	logger.WithFields(fields).Info("new user registered")
}
