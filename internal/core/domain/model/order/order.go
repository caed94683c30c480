package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"roadside/internal/core/domain/model/billing"
	"roadside/internal/core/domain/model/kernel"
	"roadside/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order did not come from
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of a roadside-assistance request. It owns the
// status, the extra-cost ledger and the derived total cost.
//
// Order follows these invariants:
//   - identifiers, addresses, incident data and coverage never change
//   - the driver is set only while the status needs one
//   - totalCost equals CalculateTotalCost(coverage, distanceTraveled, active extra costs)
//   - status moves only through the transition table
type Order struct {
	id         kernel.UUID
	contractID kernel.UUID

	// operatorID and driverID are nil until assigned
	operatorID *kernel.UUID
	driverID   *kernel.UUID

	incidentAddress    kernel.Location
	destinationAddress kernel.Location
	incidentType       string
	incidentDate       time.Time

	coverage         billing.Coverage
	distanceTraveled decimal.Decimal
	extraCosts       ExtraCostLedger
	totalCost        decimal.Decimal

	status             Status
	statusChangedAt    time.Time
	acceptanceTimeouts int

	// version is the optimistic concurrency token read from storage
	version   int64
	createdAt time.Time

	events []StatusChanged

	isConstructed bool
}

// NewOrder creates an order awaiting assignment with an empty ledger and a
// zero total.
//
//	o, err := order.NewOrder(kernel.NewUUID(), contractID, "Batería descargada",
//	    incidentDate, incident, destination, coverage, time.Now().UTC())
func NewOrder(
	id, contractID kernel.UUID,
	incidentType string,
	incidentDate time.Time,
	incidentAddress, destinationAddress kernel.Location,
	coverage billing.Coverage,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		distanceTraveled: decimal.Zero,
		totalCost:        decimal.Zero,
		status:           AwaitingAssignment,
		statusChangedAt:  createdAt,
		createdAt:        createdAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setContractID(contractID),
		o.setIncidentType(incidentType),
		o.setIncidentDate(incidentDate),
		o.setAddresses(incidentAddress, destinationAddress),
		o.setCoverage(coverage),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot carries the persisted state of an order back into RestoreOrder.
type Snapshot struct {
	ID                 kernel.UUID
	ContractID         kernel.UUID
	OperatorID         *kernel.UUID
	DriverID           *kernel.UUID
	IncidentAddress    kernel.Location
	DestinationAddress kernel.Location
	IncidentType       string
	IncidentDate       time.Time
	Coverage           billing.Coverage
	DistanceTraveled   decimal.Decimal
	ExtraCosts         []*ExtraCost
	Status             Status
	StatusChangedAt    time.Time
	AcceptanceTimeouts int
	Version            int64
	CreatedAt          time.Time
}

// RestoreOrder rebuilds an order from storage. The total cost is recomputed
// from the restored inputs rather than trusted.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		operatorID:         s.OperatorID,
		driverID:           s.DriverID,
		statusChangedAt:    s.StatusChangedAt,
		acceptanceTimeouts: s.AcceptanceTimeouts,
		version:            s.Version,
		createdAt:          s.CreatedAt,
		isConstructed:      true,
	}

	errList := []error{
		o.setID(s.ID),
		o.setContractID(s.ContractID),
		o.setIncidentType(s.IncidentType),
		o.setIncidentDate(s.IncidentDate),
		o.setAddresses(s.IncidentAddress, s.DestinationAddress),
		o.setCoverage(s.Coverage),
		billing.NonNegative("distanceTraveled", s.DistanceTraveled),
		s.Status.Validate(),
	}
	if s.Version < 0 {
		errList = append(errList, errs.NewVersionIsInvalidError("version", fmt.Errorf("%d is negative", s.Version)))
	}
	for _, e := range s.ExtraCosts {
		if err := e.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if !e.orderID.IsEqual(s.ID) {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("extraCosts",
				fmt.Errorf("extra cost %s belongs to order %s", e.id, e.orderID)))
			continue
		}
		o.extraCosts.append(e)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	o.status = s.Status
	o.distanceTraveled = s.DistanceTraveled
	total, err := o.costWith(o.distanceTraveled, o.extraCosts.ActiveAmounts())
	if err != nil {
		return nil, err
	}
	o.totalCost = total

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ContractID() kernel.UUID {
	return o.contractID
}

func (o *Order) Operator() *kernel.UUID {
	return o.operatorID
}

func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

func (o *Order) IncidentAddress() kernel.Location {
	return o.incidentAddress
}

func (o *Order) DestinationAddress() kernel.Location {
	return o.destinationAddress
}

func (o *Order) IncidentType() string {
	return o.incidentType
}

func (o *Order) IncidentDate() time.Time {
	return o.incidentDate
}

func (o *Order) Coverage() billing.Coverage {
	return o.coverage
}

func (o *Order) DistanceTraveled() decimal.Decimal {
	return o.distanceTraveled
}

func (o *Order) ExtraCosts() []*ExtraCost {
	return o.extraCosts.Items()
}

func (o *Order) TotalCost() decimal.Decimal {
	return o.totalCost
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) StatusChangedAt() time.Time {
	return o.statusChangedAt
}

func (o *Order) AcceptanceTimeouts() int {
	return o.acceptanceTimeouts
}

func (o *Order) Version() int64 {
	return o.version
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsAwaitingAcceptanceSince reports whether the order has been waiting for
// its driver's answer since before the given instant.
func (o *Order) IsAwaitingAcceptanceSince(before time.Time) bool {
	return o.status == AwaitingDriverAcceptance && o.statusChangedAt.Before(before)
}

// PullDomainEvents returns and clears the recorded events.
func (o *Order) PullDomainEvents() []StatusChanged {
	events := o.events
	o.events = nil
	return events
}

// AssignOperator records the operator handling the order. Closed orders
// cannot be reassigned.
func (o *Order) AssignOperator(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	if o.status.IsClosed() {
		return errs.NewTransitionIsNotAllowedErrorWithCause(
			o.status.String(), "AssignOperator", fmt.Errorf("order %s is closed", o.id))
	}

	o.operatorID = &operatorID
	return nil
}

// AddExtraCost appends a new active cost and recomputes the total.
func (o *Order) AddExtraCost(name ExtraCostName, price decimal.Decimal) (*ExtraCost, error) {
	if err := o.checkLedgerIsOpen("AddExtraCost"); err != nil {
		return nil, err
	}

	cost, err := newExtraCost(o.id, name, price)
	if err != nil {
		return nil, err
	}

	total, err := o.costWith(o.distanceTraveled, append(o.extraCosts.ActiveAmounts(), cost.price))
	if err != nil {
		return nil, err
	}

	o.extraCosts.append(cost)
	o.totalCost = total
	return cost, nil
}

// SetExtraCostActive toggles one cost and recomputes the total.
func (o *Order) SetExtraCostActive(extraCostID kernel.UUID, isActive bool) (*ExtraCost, error) {
	cost, ok := o.extraCosts.Find(extraCostID)
	if !ok {
		return nil, errs.NewObjectNotFoundError("extraCostId", extraCostID.String())
	}
	if err := o.checkLedgerIsOpen("SetExtraCostActive"); err != nil {
		return nil, err
	}

	total, err := o.costWith(o.distanceTraveled, o.extraCosts.amountsWith(extraCostID, isActive))
	if err != nil {
		return nil, err
	}

	cost.isActive = isActive
	o.totalCost = total
	return cost, nil
}

// TransitionParams carries what SetStatus may need besides the target.
type TransitionParams struct {
	DriverID         *kernel.UUID
	DistanceTraveled *decimal.Decimal
	At               time.Time
}

// SetStatus moves the order into target through the trigger the transition
// table defines for the current status. It never resolves to
// AcceptanceTimeout; use ExpireAcceptance for that.
func (o *Order) SetStatus(target Status, params TransitionParams) error {
	if err := target.Validate(); err != nil {
		return err
	}

	trigger, err := o.status.TriggerFor(target)
	if err != nil {
		return err
	}

	switch trigger { //nolint:exhaustive // AcceptanceTimeout and UnknownTrigger are never resolved
	case AssignDriver:
		if params.DriverID == nil {
			return errs.NewValueIsRequiredError("driverId")
		}
		return o.AssignDriver(*params.DriverID, params.At)
	case AcceptAssignment:
		return o.AcceptAssignment(params.At)
	case RefuseAssignment:
		return o.RefuseAssignment(params.At)
	case LocateDriver:
		return o.LocateDriver(params.At)
	case StartService:
		return o.StartService(params.At)
	case FinishService:
		if params.DistanceTraveled == nil {
			return errs.NewValueIsRequiredError("distanceTraveled")
		}
		return o.FinishService(*params.DistanceTraveled, params.At)
	case ConfirmPayment:
		return o.ConfirmPayment(params.At)
	case Cancel:
		return o.Cancel(params.At)
	default:
		return errs.NewTransitionIsNotAllowedError(o.status.String(), trigger.String())
	}
}

func (o *Order) AssignDriver(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	return o.fire(AssignDriver, AwaitingDriverAcceptance, at, func() {
		o.driverID = &driverID
	})
}

func (o *Order) AcceptAssignment(at time.Time) error {
	return o.fire(AcceptAssignment, Accepted, at, nil)
}

// RefuseAssignment puts the order back in the assignment queue and releases
// the driver.
func (o *Order) RefuseAssignment(at time.Time) error {
	return o.fire(RefuseAssignment, AwaitingAssignment, at, func() {
		o.driverID = nil
	})
}

// ExpireAcceptance applies an acceptance timeout. target is chosen by the
// escalation policy and must be AwaitingAssignment or Canceled.
func (o *Order) ExpireAcceptance(target Status, at time.Time) error {
	return o.fire(AcceptanceTimeout, target, at, func() {
		o.driverID = nil
		o.acceptanceTimeouts++
	})
}

func (o *Order) LocateDriver(at time.Time) error {
	return o.fire(LocateDriver, DriverLocated, at, nil)
}

func (o *Order) StartService(at time.Time) error {
	return o.fire(StartService, InProgress, at, nil)
}

// FinishService records the final distance and recomputes the total cost.
// The distance is rounded to two decimal places, the scale it is stored with.
func (o *Order) FinishService(distanceTraveled decimal.Decimal, at time.Time) error {
	if err := o.status.Permits(FinishService, Completed); err != nil {
		return err
	}
	if err := billing.NonNegative("distanceTraveled", distanceTraveled); err != nil {
		return err
	}
	distanceTraveled = billing.Round(distanceTraveled)

	total, err := o.costWith(distanceTraveled, o.extraCosts.ActiveAmounts())
	if err != nil {
		return err
	}

	return o.fire(FinishService, Completed, at, func() {
		o.distanceTraveled = distanceTraveled
		o.totalCost = total
	})
}

func (o *Order) ConfirmPayment(at time.Time) error {
	return o.fire(ConfirmPayment, Paid, at, nil)
}

func (o *Order) Cancel(at time.Time) error {
	return o.fire(Cancel, Canceled, at, nil)
}

// fire checks the transition, applies effect and records the event. Nothing
// is mutated when the transition is not permitted.
func (o *Order) fire(trigger Trigger, target Status, at time.Time, effect func()) error {
	if err := o.status.Permits(trigger, target); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("transitionTime")
	}

	from := o.status
	concerned := o.driverID
	if effect != nil {
		effect()
	}
	if o.driverID != nil {
		concerned = o.driverID
	}

	o.status = target
	o.statusChangedAt = at
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		From:       from,
		To:         target,
		Trigger:    trigger,
		DriverID:   concerned,
		OccurredAt: at,
	})
	return nil
}

func (o *Order) checkLedgerIsOpen(operation string) error {
	if o.status.IsClosed() {
		return errs.NewTransitionIsNotAllowedErrorWithCause(
			o.status.String(), operation, fmt.Errorf("extra costs of order %s are closed", o.id))
	}
	return nil
}

func (o *Order) costWith(distanceTraveled decimal.Decimal, amounts []decimal.Decimal) (decimal.Decimal, error) {
	return billing.CalculateTotalCost(o.coverage.Inputs(distanceTraveled, amounts))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	o.contractID = contractID
	return nil
}

func (o *Order) setIncidentType(incidentType string) error {
	if strings.TrimSpace(incidentType) == "" {
		return errs.NewValueIsRequiredError("incidentType")
	}
	o.incidentType = incidentType
	return nil
}

func (o *Order) setIncidentDate(incidentDate time.Time) error {
	if incidentDate.IsZero() {
		return errs.NewValueIsRequiredError("incidentDate")
	}
	o.incidentDate = incidentDate
	return nil
}

func (o *Order) setAddresses(incidentAddress, destinationAddress kernel.Location) error {
	if err := errors.Join(incidentAddress.Validate(), destinationAddress.Validate()); err != nil {
		return err
	}
	o.incidentAddress = incidentAddress
	o.destinationAddress = destinationAddress
	return nil
}

func (o *Order) setCoverage(coverage billing.Coverage) error {
	if err := coverage.Validate(); err != nil {
		return err
	}
	o.coverage = coverage
	return nil
}
