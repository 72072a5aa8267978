package service

// Outcome labels recorded by MetricsRecorder.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation_error"
	OutcomeConflict   = "conflict"
	OutcomeRejected   = "rejected"
	OutcomeError      = "error"
)

// MetricsRecorder collects business counters from the usecase layer.
type MetricsRecorder interface {
	RecordRegistration(outcome string)
	RecordLogin(outcome string)
	RecordTokenRejected(reason string)
	RecordDonationScheduled()
}
