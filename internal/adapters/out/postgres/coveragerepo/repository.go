// Package coveragerepo reads the coverage an order is priced with from the
// contracts and policies tables. Contracts and policies are maintained by
// another system; this service never writes them.
package coveragerepo

import (
	"context"
	"errors"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type coverageRow struct {
	DistanceCoverage          decimal.Decimal
	AmountCoverage            decimal.Decimal
	PricePerExtraDistanceUnit decimal.Decimal
}

// GormCoverageRepository implements ports.CoverageRepository using GORM.
type GormCoverageRepository struct {
	db *gorm.DB
}

func NewGormCoverageRepository(db *gorm.DB) *GormCoverageRepository {
	return &GormCoverageRepository{db: db}
}

// GetCoverage resolves the policy attached to the contract.
func (r *GormCoverageRepository) GetCoverage(ctx context.Context, contractID kernel.UUID) (billing.Coverage, error) {
	if err := contractID.Validate(); err != nil {
		return billing.Coverage{}, err
	}

	var row coverageRow
	err := r.db.WithContext(ctx).
		Table("contracts c").
		Select("p.distance_coverage, p.amount_coverage, p.price_per_extra_distance_unit").
		Joins("JOIN policies p ON p.id = c.policy_id").
		Where("c.id = ?", contractID.Bytes()).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return billing.Coverage{}, errs.NewObjectNotFoundError("contractId", contractID.String())
		}
		return billing.Coverage{}, err
	}

	return billing.NewCoverage(row.DistanceCoverage, row.AmountCoverage, row.PricePerExtraDistanceUnit)
}
