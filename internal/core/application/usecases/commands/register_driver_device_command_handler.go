package commands

import (
	"context"

	"roadside/internal/core/ports"
)

type RegisterDriverDeviceCommandHandler struct {
	registry ports.DeviceRegistry
}

func NewRegisterDriverDeviceCommandHandler(registry ports.DeviceRegistry) RegisterDriverDeviceCommandHandler {
	return RegisterDriverDeviceCommandHandler{
		registry: registry,
	}
}

func (h RegisterDriverDeviceCommandHandler) Handle(ctx context.Context, cmd RegisterDriverDeviceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Register(ctx, cmd.DriverID(), cmd.DeviceToken())
}
