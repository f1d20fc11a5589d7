// Package validator holds the stateless loan business rules. Inputs are
// fully resolved entities; every check fails fast with a typed error from
// the errs package.
package validator

import (
	"time"

	"github.com/avelasqz/biblioteca-service/internal/errs"
	"github.com/avelasqz/biblioteca-service/internal/model"
)

// ValidateCreate checks a prospective loan in rule order: reader present
// and active, librarian present, material present and not already out on
// loan, dates present and consistent. The estimated return date must be
// strictly after both the request date and today. The caller evaluates
// today once and passes it in.
func ValidateCreate(
	reader *model.Reader,
	librarian *model.Librarian,
	material *model.Material,
	materialOnLoan bool,
	requestDate, estimatedReturn, today time.Time,
) error {
	if reader == nil {
		return errs.ErrMissingReference
	}
	if reader.Status != model.ReaderActive {
		return errs.ErrReaderSuspended
	}
	if librarian == nil {
		return errs.ErrMissingReference
	}
	if material == nil {
		return errs.ErrMissingReference
	}
	if materialOnLoan {
		return errs.ErrMaterialUnavailable
	}
	if requestDate.IsZero() || estimatedReturn.IsZero() {
		return errs.ErrInvalidDate
	}
	if estimatedReturn.Before(requestDate) {
		return errs.ErrInvalidDate
	}
	if !estimatedReturn.After(today) {
		return errs.ErrInvalidDate
	}
	return nil
}

// ValidateTransition admits only the state-machine edges. Self-transitions
// and exits from terminal states are rejected.
func ValidateTransition(current, target model.LoanState) error {
	if current == target {
		return errs.ErrIllegalTransition
	}
	if current.Terminal() {
		return errs.ErrIllegalTransition
	}
	if !current.CanTransition(target) {
		return errs.ErrIllegalTransition
	}
	return nil
}
