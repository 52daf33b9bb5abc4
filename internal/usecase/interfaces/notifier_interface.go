package interfaces

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_interface_mock.go -package=mock_interfaces

import "context"

// INotifier publishes booking notifications. Callers treat it as
// fire-and-forget.
type INotifier interface {
	Notify(ctx context.Context, routingKey string, payload any) error
}
