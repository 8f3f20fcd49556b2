package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrorBuilder assembles an InternalError fluently:
//
//	ierr.NewError("end_date before start_date").
//		WithHint("end_date must not be earlier than start_date").
//		WithReportableDetails(map[string]interface{}{"start_date": start}).
//		Mark(ierr.ErrValidation)
type ErrorBuilder struct {
	err     error
	hint    string
	details map[string]interface{}
}

// NewError starts a builder from a new error message.
func NewError(msg string) *ErrorBuilder {
	return &ErrorBuilder{err: errors.NewWithDepth(1, msg)}
}

// NewErrorf starts a builder from a formatted error message.
func NewErrorf(format string, args ...interface{}) *ErrorBuilder {
	return &ErrorBuilder{err: errors.NewWithDepth(1, fmt.Sprintf(format, args...))}
}

// WithError starts a builder wrapping an existing error.
func WithError(err error) *ErrorBuilder {
	return &ErrorBuilder{err: err}
}

// WithHint sets a user-safe hint shown in API error responses.
func (b *ErrorBuilder) WithHint(hint string) *ErrorBuilder {
	b.hint = hint
	return b
}

// WithHintf sets a formatted user-safe hint.
func (b *ErrorBuilder) WithHintf(format string, args ...interface{}) *ErrorBuilder {
	b.hint = fmt.Sprintf(format, args...)
	return b
}

// WithMessage wraps the underlying error with additional context.
func (b *ErrorBuilder) WithMessage(msg string) *ErrorBuilder {
	b.err = errors.WithMessage(b.err, msg)
	return b
}

// WithReportableDetails attaches structured details that are safe to return
// to API clients.
func (b *ErrorBuilder) WithReportableDetails(details map[string]interface{}) *ErrorBuilder {
	b.details = details
	return b
}

// Mark finalizes the builder, tagging the error with one of the package
// marker errors so the Is* predicates match.
func (b *ErrorBuilder) Mark(mark error) error {
	cause := b.err
	if cause == nil {
		cause = mark
	}
	return &InternalError{
		cause:   errors.Mark(cause, mark),
		hint:    b.hint,
		details: b.details,
	}
}
