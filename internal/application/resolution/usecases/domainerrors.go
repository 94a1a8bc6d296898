package usecases

import (
	stderrors "errors"

	"vendora/internal/domain/resolution"
	"vendora/internal/shared/errors"
)

// translateDomainError maps domain sentinel errors onto application
// error types so handlers can pick status codes without knowing the
// domain package.
func translateDomainError(err error) error {
	switch {
	case stderrors.Is(err, resolution.ErrNotIssuer),
		stderrors.Is(err, resolution.ErrNotRespondent),
		stderrors.Is(err, resolution.ErrNotParticipant):
		return errors.NewForbiddenError(err.Error())
	case stderrors.Is(err, resolution.ErrInvalidTransition),
		stderrors.Is(err, resolution.ErrAlreadyResponded),
		stderrors.Is(err, resolution.ErrCaseClosed),
		stderrors.Is(err, resolution.ErrEscalationRequiresDecline):
		return errors.NewInvalidStateError(err.Error())
	default:
		return errors.NewValidationError(err.Error())
	}
}
