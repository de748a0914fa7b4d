package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"phonebook-service/internal/app/drivers/mailer"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/dto/requests"
	"phonebook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the mail queue and delivers messages over SMTP.
type Worker struct {
	log    *zap.Logger
	client *mailer.SMTPClient
	conn   *amqp091.Connection
	queue  string
	stop   chan struct{}
}

func NewWorker(log *zap.Logger, client *mailer.SMTPClient, conn *amqp091.Connection, queue string) *Worker {
	return &Worker{
		log:    log,
		client: client,
		conn:   conn,
		queue:  queue,
		stop:   make(chan struct{}),
	}
}

// Start begins consuming the queue. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	channel, err := w.conn.Channel()
	if err != nil {
		return nil, err
	}

	deliveries, err := channel.Consume(
		w.queue, // queue
		"",      // consumer
		false,   // autoAck
		false,   // exclusive
		false,   // noLocal
		false,   // noWait
		nil,     // args
	)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeMessage(err, w.queue)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.processDelivery(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
		channel.Close()
	}, nil
}

func (w *Worker) processDelivery(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("mailer.Worker dropping malformed payload",
			zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	if err := w.deliver(&payload); err != nil {
		w.log.Error("mailer.Worker delivery failed, requeueing",
			zap.Strings("to", payload.To),
			zap.Error(err))
		delivery.Nack(false, true)
		return
	}

	w.log.Info("mailer.Worker delivered email",
		zap.Strings("to", payload.To),
		zap.String("subject", payload.Subject))
	delivery.Ack(false)
}

func (w *Worker) deliver(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = w.client.EmailSender
	}

	for _, to := range payload.To {
		msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, payload.Subject, payload.HTMLCode))
		addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
		if err := smtp.SendMail(addr, w.client.Auth, from, []string{to}, msg); err != nil {
			return exceptions.ErrSMTPSendEmail(err, w.client.Host)
		}
	}
	return nil
}
