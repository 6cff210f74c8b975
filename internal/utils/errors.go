package utils

import (
	"errors"
	"net/http"
)

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotAnInvestor   = errors.New("not_an_investor")
	ErrNotAdmin        = errors.New("not_admin")

	// Chat relay
	ErrChatMessageRequired = errors.New("chat_message_required")
	ErrChatNotConfigured   = errors.New("chat_not_configured")
	ErrChatUpstream        = errors.New("chat_upstream_failure")

	// Property scoring
	ErrScorerNotConfigured = errors.New("scorer_not_configured")
	ErrScorerUpstream      = errors.New("scorer_upstream_failure")

	// Rows that fail validation at the persistence boundary.
	ErrMalformedAnalysisRow = errors.New("malformed_analysis_row")

	// For concurrency conflicts
	ErrRowVersionConflict = errors.New("row_version_conflict")

	ErrInvalidStatus = errors.New("invalid_status")

	// The investor already has a visa milestone sequence.
	ErrMilestoneSequenceExists = errors.New("milestone_sequence_exists")
)

// AppError for structured error handling from services to controllers.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HandleAppError centralizes responding to AppErrors.
func HandleAppError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		RespondErrorWithCode(w, appErr.StatusCode, appErr.Code, appErr.Message, nil, appErr.Err)
	} else {
		RespondErrorWithCode(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
