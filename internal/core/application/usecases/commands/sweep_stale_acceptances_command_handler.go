package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"roadside/internal/core/domain/model/order"
	"roadside/internal/core/domain/services"
	"roadside/internal/pkg/errs"
)

// SweepStaleAcceptancesCommandHandler applies acceptance timeouts. Each stale
// order is escalated in its own transaction against the version it was listed
// with, so an order that changed in the meantime is skipped rather than
// overwritten. Handle returns how many orders were escalated.
type SweepStaleAcceptancesCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.EscalationPolicy
	dispatcher EventDispatcher
	logger     *slog.Logger
}

func NewSweepStaleAcceptancesCommandHandler(
	uowFactory OrderUoWFactory,
	policy services.EscalationPolicy,
	dispatcher EventDispatcher,
	logger *slog.Logger,
) SweepStaleAcceptancesCommandHandler {
	return SweepStaleAcceptancesCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		dispatcher: dispatcher,
		logger:     logger.With("component", "escalation-sweep"),
	}
}

func (h SweepStaleAcceptancesCommandHandler) Handle(ctx context.Context, cmd SweepStaleAcceptancesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	stale, err := h.listStale(ctx, cmd)
	if err != nil {
		return 0, err
	}

	swept := 0
	var errList []error
	for _, o := range stale {
		if err = ctx.Err(); err != nil {
			return swept, err
		}

		if !o.IsAwaitingAcceptanceSince(cmd.Before()) {
			continue
		}

		err = h.escalate(ctx, o, cmd)
		switch {
		case errors.Is(err, errs.ErrConcurrencyConflict):
			h.logger.DebugContext(ctx, "order changed during sweep, skipped", "order_id", o.ID().String())
		case err != nil:
			errList = append(errList, fmt.Errorf("escalate order %s: %w", o.ID(), err))
		default:
			swept++
		}
	}

	return swept, errors.Join(errList...)
}

func (h SweepStaleAcceptancesCommandHandler) listStale(
	ctx context.Context, cmd SweepStaleAcceptancesCommand,
) ([]*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().ListStaleAcceptances(ctx, cmd.Before(), cmd.BatchSize())
}

func (h SweepStaleAcceptancesCommandHandler) escalate(
	ctx context.Context, o *order.Order, cmd SweepStaleAcceptancesCommand,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.policy.Escalate(o, cmd.Now()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.dispatcher.Dispatch(ctx, o.PullDomainEvents())
	return nil
}
