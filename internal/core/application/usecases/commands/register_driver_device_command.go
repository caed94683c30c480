package commands

import (
	"errors"
	"strings"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"
	"roadside/internal/pkg/guard"
)

var ErrRegisterDriverDeviceCommandIsNotConstructed = errors.New(
	"RegisterDriverDeviceCommand must be created via NewRegisterDriverDeviceCommand constructor",
)

// RegisterDriverDeviceCommand records the push token of the device a driver
// is currently signed in on. A newer registration replaces the previous one.
type RegisterDriverDeviceCommand struct {
	driverID    kernel.UUID
	deviceToken string

	guard guard.ConstructorGuard
}

func NewRegisterDriverDeviceCommand(driverID kernel.UUID, deviceToken string) (RegisterDriverDeviceCommand, error) {
	var tokenErr error
	deviceToken = strings.TrimSpace(deviceToken)
	if deviceToken == "" {
		tokenErr = errs.NewValueIsRequiredError("deviceToken")
	}

	if err := errors.Join(driverID.Validate(), tokenErr); err != nil {
		return RegisterDriverDeviceCommand{}, err
	}

	return RegisterDriverDeviceCommand{
		driverID:    driverID,
		deviceToken: deviceToken,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverDeviceCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverDeviceCommandIsNotConstructed)
}

func (c RegisterDriverDeviceCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c RegisterDriverDeviceCommand) DeviceToken() string {
	return c.deviceToken
}
