package handler

import (
	"errors"

	"github.com/jovens-paroquia/membership/internal/api/metrics"
	"github.com/jovens-paroquia/membership/internal/core/domain"
)

// outcomeOf classifies err for the flow counters.
func outcomeOf(err error) string {
	var (
		validation *domain.ValidationError
		profile    *domain.ProfileWriteError
	)
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.As(err, &validation):
		return metrics.OutcomeValidationError
	case errors.As(err, &profile):
		return metrics.OutcomeStoreError
	}
	return metrics.OutcomeProviderError
}

// messageOf is the user-facing text for a failed request.
func messageOf(err error) string {
	if msg := HTTPMessage(err); msg != "" {
		return msg
	}
	return domain.MsgConnectionFailure
}

// requestStatus is the FlowStatus of a single request. It is built from that
// request's own result, since the flow's shared status may already describe a
// later run.
func requestStatus(err error, success string) domain.FlowStatus {
	if err != nil {
		return domain.FlowStatus{ErrorMessage: messageOf(err)}
	}
	return domain.FlowStatus{SuccessMessage: success}
}
