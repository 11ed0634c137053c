package approval

import (
	"errors"

	"foodordering/internal/pkg/errs"
)

var ErrInvalidApprovalStatus = errors.New("invalid approval status")

// Status is the outcome of a restaurant approval.
type Status int

const (
	Unknown Status = iota
	Approved
	Rejected
)

func (s Status) String() string {
	switch s {
	case Approved:
		return "APPROVED"
	case Rejected:
		return "REJECTED"
	case Unknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// ParseStatus maps "APPROVED" and "REJECTED" to their Status.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "APPROVED":
		return Approved, nil
	case "REJECTED":
		return Rejected, nil
	default:
		return Unknown, errs.NewDomainErrorf(ErrInvalidApprovalStatus, "%q is not a valid approval status", name)
	}
}

func (s Status) Validate() error {
	if s != Approved && s != Rejected {
		return errs.NewValueIsInvalidError("approval status")
	}
	return nil
}
