package collect

// SkipReason classifies why an item was left out of a run's output.
type SkipReason string

const (
	SkipReasonFetchFailed    SkipReason = "fetch-failed"
	SkipReasonNoCoordinates  SkipReason = "no-coordinates"
	SkipReasonBadCoordinates SkipReason = "bad-coordinates"
)

// Skip records one dropped item, identified by station name or train number.
type Skip struct {
	Item   string
	Reason SkipReason
	Err    error
}

// Summary aggregates the per-item outcomes of a run. Skipped items never
// appear in the output artifact; they only exist here and in the logs.
type Summary struct {
	Processed int
	Skipped   []Skip
}

func (s *Summary) skip(item string, reason SkipReason, err error) {
	s.Skipped = append(s.Skipped, Skip{Item: item, Reason: reason, Err: err})
}
