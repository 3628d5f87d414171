package model

// Outcome categorizes the result of a registration attempt. The caller must
// be able to tell full success apart from a local save that still needs a
// sync, so these are distinct values rather than a bare error.
type Outcome int

const (
	// OutcomeSynced means the record reached the remote store.
	OutcomeSynced Outcome = iota
	// OutcomeQueued means the store was unreachable and the record was
	// saved to the local offline queue for a later flush.
	OutcomeQueued
	// OutcomeRejected means validation failed before any I/O was attempted.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSynced:
		return "synced"
	case OutcomeQueued:
		return "queued"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}
