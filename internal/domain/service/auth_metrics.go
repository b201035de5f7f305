package service

import (
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
)

// Outcome labels recorded for login and registration attempts.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidInput       = "invalid_input"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInactive           = "inactive"
	OutcomeDuplicate          = "duplicate"
	OutcomeRateLimited        = "rate_limited"
	OutcomeUnavailable        = "unavailable"
	OutcomeError              = "error"
)

// AuthMetrics records authentication and registration outcomes.
type AuthMetrics interface {
	LoginAttempt(kind entity.PrincipalKind, outcome string)
	Registration(kind entity.PrincipalKind, outcome string)
}

// OutcomeOf maps the result of an attempt onto an outcome label.
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}

	switch domainerrors.KindOf(err) {
	case domainerrors.KindInvalidInput:
		return OutcomeInvalidInput
	case domainerrors.KindInvalidCredentials:
		return OutcomeInvalidCredentials
	case domainerrors.KindAccountInactive:
		return OutcomeInactive
	case domainerrors.KindDuplicateIdentity:
		return OutcomeDuplicate
	case domainerrors.KindRateLimited:
		return OutcomeRateLimited
	case domainerrors.KindServiceUnavailable:
		return OutcomeUnavailable
	default:
		return OutcomeError
	}
}
