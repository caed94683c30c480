package ports

import (
	"context"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
)

// CoverageRepository reads the policy coverage attached to a contract.
// Contracts and policies are owned by another system; this service only
// reads them.
type CoverageRepository interface {
	// GetCoverage returns errs.ErrObjectNotFound when the contract is unknown.
	GetCoverage(ctx context.Context, contractID kernel.UUID) (billing.Coverage, error)
}
