package ports

import (
	"context"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/core/domain/model/order"
)

// EventPublisher delivers lifecycle events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}

// PushSender delivers a push notification to one device.
type PushSender interface {
	Send(ctx context.Context, deviceToken, title, body string, data map[string]string) error
}

// DeviceRegistry maps drivers to the push token of their current device.
type DeviceRegistry interface {
	Register(ctx context.Context, driverID kernel.UUID, deviceToken string) error

	// Lookup returns errs.ErrObjectNotFound when the driver has no device.
	Lookup(ctx context.Context, driverID kernel.UUID) (string, error)
}
