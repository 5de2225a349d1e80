package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/reagent-inventory/internal/config"
	"github.com/spec-kit/reagent-inventory/internal/events"
)

// NotificationService emits notifications for reagent lifecycle events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventReagentCreated, n.handleReagentCreated)
	n.dispatcher.Subscribe(events.EventReagentUpdated, n.handleReagentUpdated)
	n.dispatcher.Subscribe(events.EventReagentDeleted, n.handleReagentDeleted)
}

func (n *NotificationService) handleReagentCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ReagentCreated", zap.String("reagent_id", event.ReagentID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleReagentUpdated(ctx context.Context, event events.Event) error {
	n.logger.Info("ReagentUpdated", zap.String("reagent_id", event.ReagentID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleReagentDeleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ReagentDeleted", zap.String("reagent_id", event.ReagentID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("reagent_id", event.ReagentID),
		zap.String("event_type", string(event.Type)))
}
