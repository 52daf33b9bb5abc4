package messaging

import (
	"context"

	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
)

// LogNotifier records notifications in the log when no broker is configured.
type LogNotifier struct {
	log logger.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, routingKey string, payload any) error {
	n.log.Info("[notify][log] event", "routing_key", routingKey, "payload", payload)
	return nil
}
