package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/config"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/handler"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * mail client
	 **********************************************/
	client, err := mail.NewClient(cfg.Notify.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Notify.SMTP.Port),
		mail.WithUsername(cfg.Notify.SMTP.Username),
		mail.WithPassword(cfg.Notify.SMTP.Password),
	)
	if err != nil {
		logger.Error("unable to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Notify.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("unable to reach the mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("unable to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("unable to open a channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		handler.RosterEventsQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("unable to declare queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("unable to consume messages", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("received roster event", slog.String("message", string(msg.Body)))

				event := domain.RosterEvent{}
				if err := json.Unmarshal(msg.Body, &event); err != nil {
					logger.Error("roster event unmarshal failed", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Notify.SMTP.Username); err != nil {
					logger.Error("unable to set mail sender", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(cfg.Notify.StaffMailbox); err != nil {
					logger.Error("unable to set mail recipient", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m.Subject("Roster update")
				m.SetBodyString(mail.TypeTextPlain, describeEvent(event))

				if err := client.Send(m); err != nil {
					logger.Error("unable to send notification mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true)
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	<-sigChan
	logger.Info("shutting down notifier...")
	cancel()
	wg.Wait()
}

func describeEvent(event domain.RosterEvent) string {
	switch event.Type {
	case domain.EventShiftReplaced:
		return fmt.Sprintf("The %s shift on %s was updated; %d barista(s) are now assigned.",
			event.Shift, event.Date, len(event.BaristaIDs))
	case domain.EventDateCleared:
		return fmt.Sprintf("All shifts on %s were cleared.", event.Date)
	case domain.EventBaristaRemoved:
		return fmt.Sprintf("%s left the roster; their shifts were removed from the schedule.", event.Barista)
	default:
		return fmt.Sprintf("Roster change: %s", event.Type)
	}
}
