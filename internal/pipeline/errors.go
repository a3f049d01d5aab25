package pipeline

import "fmt"

// ExtractionError wraps an extraction engine failure: no viable format,
// restricted access, or a missing output file after download.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// TranscodeError wraps a transcode engine failure. It aborts the remaining
// shrink ladder attempts for the job.
type TranscodeError struct {
	Height int
	CRF    int
	Err    error
}

func (e *TranscodeError) Error() string {
	return fmt.Sprintf("transcode to %dp crf %d: %v", e.Height, e.CRF, e.Err)
}

func (e *TranscodeError) Unwrap() error { return e.Err }

// DeliveryError wraps a transport upload rejection. The job still counts as
// processed; cleanup proceeds normally.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
