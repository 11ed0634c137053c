package order

import (
	"errors"

	"foodordering/internal/pkg/errs"
)

var (
	// ErrInvalidEnumValue is the kind of DomainError returned by ParseStatus
	// for names outside of the closed status set.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrInvalidStatusTransition is the kind of DomainError returned when a
	// lifecycle operation is not allowed from the current status.
	ErrInvalidStatusTransition = errors.New("invalid order status transition")
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Unknown ──> Pending ──> Paid ──> Approved
//	               │          │
//	               │          └──> Cancelling ──┐
//	               └──────────────────────────> Cancelled
//
// Unknown is the state of an order that has been built but not validated yet.
type Status int

const (
	// Unknown is the zero value: the order has not been initiated.
	Unknown Status = iota
	// Pending is set once the order passed validation and was created.
	Pending
	// Paid is set when the payment service confirmed the payment.
	Paid
	// Approved is set when the restaurant accepted the order.
	Approved
	// Cancelling is set when the restaurant rejected a paid order and the
	// payment is being rolled back.
	Cancelling
	// Cancelled is the final state of a failed order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Paid:       "PAID",
		Approved:   "APPROVED",
		Cancelling: "CANCELLING",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusNames() map[string]Status {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[string]Status{
		"PENDING":    Pending,
		"PAID":       Paid,
		"APPROVED":   Approved,
		"CANCELLING": Cancelling,
		"CANCELLED":  Cancelled,
	}
}

// ParseStatus maps a status name (as produced by String) to its Status.
// The mapping is exact and case sensitive. Unknown names, including "UNKNOWN",
// return a DomainError of kind ErrInvalidEnumValue.
//
// Example:
//
//	status, err := order.ParseStatus("PAID")
//	if errors.Is(err, order.ErrInvalidEnumValue) {
//	    // reject the message
//	}
func ParseStatus(name string) (Status, error) {
	if s, ok := getValidStatusNames()[name]; ok {
		return s, nil
	}
	return Unknown, errs.NewDomainErrorf(ErrInvalidEnumValue, "%q is not a valid order status", name)
}

// Validate returns an error for Unknown and any out of range value.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the upper case name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Initialize transitions an unvalidated order to Pending.
func (s Status) Initialize() (Status, error) {
	if s != Unknown {
		return s, transitionError("initialization")
	}
	return Pending, nil
}

// Pay transitions Pending to Paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return s, transitionError("pay")
	}
	return Paid, nil
}

// Approve transitions Paid to Approved.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return s, transitionError("approve")
	}
	return Approved, nil
}

// InitCancel transitions Paid to Cancelling.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return s, transitionError("initCancel")
	}
	return Cancelling, nil
}

// Cancel transitions Pending or Cancelling to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Cancelling {
		return s, transitionError("cancel")
	}
	return Cancelled, nil
}

func transitionError(operation string) error {
	return errs.NewDomainErrorf(ErrInvalidStatusTransition,
		"Order is not in correct state for %s operation!", operation)
}
