package commands

import (
	"errors"

	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/guard"
)

var ErrUpdateExtraCostCommandIsNotConstructed = errors.New(
	"UpdateExtraCostCommand must be created via NewUpdateExtraCostCommand constructor",
)

// UpdateExtraCostCommand activates or deactivates an extra cost.
type UpdateExtraCostCommand struct {
	extraCostID kernel.UUID
	isActive    bool

	guard guard.ConstructorGuard
}

func NewUpdateExtraCostCommand(extraCostID kernel.UUID, isActive bool) (UpdateExtraCostCommand, error) {
	if err := extraCostID.Validate(); err != nil {
		return UpdateExtraCostCommand{}, err
	}

	return UpdateExtraCostCommand{
		extraCostID: extraCostID,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateExtraCostCommand) Validate() error {
	return c.guard.Validate(ErrUpdateExtraCostCommandIsNotConstructed)
}

func (c UpdateExtraCostCommand) ExtraCostID() kernel.UUID {
	return c.extraCostID
}

func (c UpdateExtraCostCommand) IsActive() bool {
	return c.isActive
}
