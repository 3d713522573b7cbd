package hausdoc

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure conditions that abort report generation.
// Everything else (missing variants, assets or rooms) is recovered inline.
var (
	ErrNoSubmission = errors.New("hausdoc: submission is nil")
	ErrOutputDir    = errors.New("hausdoc: cannot create output directory")
	ErrOutputStream = errors.New("hausdoc: cannot write output stream")
	ErrRender       = errors.New("hausdoc: rendering failed")
)

// ReportError represents an error that occurred while producing the report for
// one submission. It wraps the underlying error and names the failed step.
type ReportError struct {
	Op           string // operation name, e.g. "create", "render", "rename"
	SubmissionID string
	Err          error
}

func (e *ReportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("hausdoc.%s [%s]: unknown error", e.Op, e.SubmissionID)
	}
	return fmt.Sprintf("hausdoc.%s [%s]: %v", e.Op, e.SubmissionID, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// newReportError joins a sentinel with the cause so that both errors.Is checks
// (against the sentinel and against e.g. fs.ErrPermission) succeed.
func newReportError(op, id string, sentinel, cause error) *ReportError {
	if cause == nil {
		return &ReportError{Op: op, SubmissionID: id, Err: sentinel}
	}
	return &ReportError{Op: op, SubmissionID: id, Err: fmt.Errorf("%w: %w", sentinel, cause)}
}
