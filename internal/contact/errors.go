package contact

import "errors"

var (
	// ErrSendFailed wraps any error returned by a Sender. The controller
	// absorbs it into a failure banner; callers only need it for logging.
	ErrSendFailed = errors.New("contact: send failed")

	// ErrSubmissionInFlight is returned by Submit while another submission
	// from the same controller has not resolved.
	ErrSubmissionInFlight = errors.New("contact: submission already in flight")

	// ErrClosed is returned once the controller has been torn down.
	ErrClosed = errors.New("contact: controller closed")

	// ErrUnknownField is returned by ParseField for names outside the form.
	ErrUnknownField = errors.New("contact: unknown field")
)
