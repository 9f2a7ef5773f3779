package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/kedaikopi-dev/barista-roster/backend/internal/config"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/domain"
	"github.com/kedaikopi-dev/barista-roster/backend/internal/repository"
)

// RosterEventsQueue is the queue cmd/notifier consumes from.
const RosterEventsQueue = "roster_events"

// EventPublisher is the publishing slice of *amqp.Channel. Passing nil is
// valid and means roster events are dropped with a warning.
type EventPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// ScheduleCache is what the handlers need from *schedule.Cache.
type ScheduleCache interface {
	Get(from, to time.Time) (domain.GroupedSchedule, bool)
	Set(from, to time.Time, grouped domain.GroupedSchedule)
	Invalidate()
	RemoveBarista(baristaID int64)
}

type Handler struct {
	validate          *validator.Validate
	config            *config.Config
	repository        *repository.Repository
	translator        ut.Translator
	cache             ScheduleCache
	events            EventPublisher
	adminPasswordHash []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, events EventPublisher, cache ScheduleCache) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	// The admin credential comes from config, not from a table; hash it once
	// so login goes through the same bcrypt comparison as any stored hash.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:          validate,
		config:            cfg,
		repository:        repo,
		translator:        trans,
		cache:             cache,
		events:            events,
		adminPasswordHash: passwordHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(h.cors)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	h.Mux.Post("/init", h.Bootstrap)

	h.Mux.Route("/baristas", func(r chi.Router) {
		r.Get("/", h.GetAllBaristas)
		r.With(h.auth).Post("/", h.CreateBarista)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.auth)
			r.Use(h.baristaCtx)
			r.Patch("/", h.UpdateBarista)
			r.Delete("/", h.DeleteBarista)
		})
	})

	h.Mux.Route("/schedules", func(r chi.Router) {
		r.Get("/", h.GetSchedule)
		r.Get("/export", h.ExportMonth)
		r.With(h.auth).Post("/", h.ReplaceShiftRoster)
		r.With(h.auth).Delete("/", h.ClearDate)
	})
}

// publishRosterEvent hands a change notification to the queue. The write that
// triggered it has already committed, so a broker failure only costs the
// notification mail, not the request.
func (h *Handler) publishRosterEvent(event domain.RosterEvent) {
	if h.events == nil {
		slog.Warn("no event publisher configured, roster event dropped", "type", event.Type)
		return
	}

	event.OccurredAt = time.Now()

	body, err := json.Marshal(event)
	if err != nil {
		slog.Warn("roster event marshal failed", "type", event.Type, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.events.PublishWithContext(
		ctx,
		"",
		RosterEventsQueue,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		slog.Warn("roster event publish failed", "type", event.Type, "error", err)
	}
}
