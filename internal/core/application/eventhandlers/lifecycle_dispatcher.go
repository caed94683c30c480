// Package eventhandlers fans committed order lifecycle events out to the
// message bus and to the assigned driver's device.
package eventhandlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"roadside/internal/core/domain/model/order"
	"roadside/internal/core/ports"
	"roadside/internal/pkg/errs"
	"roadside/internal/pkg/metrics"
)

// DefaultDeliveryTimeout bounds one background delivery of a batch.
const DefaultDeliveryTimeout = 10 * time.Second

type notification struct {
	title string
	body  string
}

// driverNotifications lists the triggers the driver is told about. Triggers
// fired from the driver app are left out.
var driverNotifications = map[order.Trigger]notification{
	order.AssignDriver:      {title: "Nueva asignación", body: "Tienes una orden de asistencia por aceptar"},
	order.AcceptanceTimeout: {title: "Asignación expirada", body: "La orden fue retirada por falta de respuesta"},
	order.Cancel:            {title: "Orden cancelada", body: "La orden de asistencia fue cancelada"},
	order.ConfirmPayment:    {title: "Pago confirmado", body: "El pago de la orden fue confirmado"},
}

// LifecycleDispatcher implements commands.EventDispatcher. Dispatch returns
// immediately; delivery runs in a goroutine detached from the request context
// and failures are only logged and counted.
type LifecycleDispatcher struct {
	publisher ports.EventPublisher
	push      ports.PushSender
	devices   ports.DeviceRegistry
	metrics   *metrics.Metrics
	logger    *slog.Logger
	timeout   time.Duration

	wg sync.WaitGroup
}

func NewLifecycleDispatcher(
	publisher ports.EventPublisher,
	push ports.PushSender,
	devices ports.DeviceRegistry,
	m *metrics.Metrics,
	logger *slog.Logger,
	timeout time.Duration,
) *LifecycleDispatcher {
	if timeout <= 0 {
		timeout = DefaultDeliveryTimeout
	}

	return &LifecycleDispatcher{
		publisher: publisher,
		push:      push,
		devices:   devices,
		metrics:   m,
		logger:    logger.With("component", "lifecycle-dispatcher"),
		timeout:   timeout,
	}
}

func (d *LifecycleDispatcher) Dispatch(ctx context.Context, events []order.StatusChanged) {
	if len(events) == 0 {
		return
	}

	for _, e := range events {
		d.metrics.Transitions.WithLabelValues(e.From.String(), e.To.String(), e.Trigger.String()).Inc()
		if e.Trigger == order.AcceptanceTimeout {
			d.metrics.Escalations.WithLabelValues(e.To.String()).Inc()
		}
	}

	detached := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		deliveryCtx, cancel := context.WithTimeout(detached, d.timeout)
		defer cancel()

		d.deliver(deliveryCtx, events)
	}()
}

// Wait blocks until every delivery started so far has finished.
func (d *LifecycleDispatcher) Wait() {
	d.wg.Wait()
}

func (d *LifecycleDispatcher) deliver(ctx context.Context, events []order.StatusChanged) {
	if err := d.publisher.Publish(ctx, events...); err != nil {
		d.metrics.NotificationFailures.WithLabelValues(metrics.ChannelBus).Inc()
		d.logger.ErrorContext(ctx, "failed to publish lifecycle events",
			"order_id", events[0].OrderID.String(), "count", len(events), "error", err)
	}

	for _, e := range events {
		d.notifyDriver(ctx, e)
	}
}

func (d *LifecycleDispatcher) notifyDriver(ctx context.Context, e order.StatusChanged) {
	msg, ok := driverNotifications[e.Trigger]
	if !ok || e.DriverID == nil {
		return
	}

	token, err := d.devices.Lookup(ctx, *e.DriverID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			d.logger.DebugContext(ctx, "driver has no registered device", "driver_id", e.DriverID.String())
			return
		}
		d.metrics.NotificationFailures.WithLabelValues(metrics.ChannelDevice).Inc()
		d.logger.ErrorContext(ctx, "failed to look up driver device",
			"driver_id", e.DriverID.String(), "error", err)
		return
	}

	data := map[string]string{
		"order_id":    e.OrderID.String(),
		"status":      e.To.String(),
		"trigger":     e.Trigger.String(),
		"occurred_at": e.OccurredAt.UTC().Format(time.RFC3339),
	}
	body := fmt.Sprintf("%s (%s)", msg.body, e.OrderID)

	if err = d.push.Send(ctx, token, msg.title, body, data); err != nil {
		d.metrics.NotificationFailures.WithLabelValues(metrics.ChannelPush).Inc()
		d.logger.ErrorContext(ctx, "failed to push notification",
			"driver_id", e.DriverID.String(), "order_id", e.OrderID.String(), "error", err)
	}
}
