package pipeline

import (
	"fmt"

	"github.com/cc-collective/invoice-ingest/constants"
)

// FileOutcome records what happened to a single PDF attachment.
type FileOutcome struct {
	Filename      string
	Platform      constants.Platform
	InvoiceNumber string
	Outcome       constants.Outcome
	Err           string
}

// EmailStats counts the terminal states of every PDF in one email.
type EmailStats struct {
	Detected   int
	Created    int
	Duplicates int
	Merged     int
	Orphaned   int
	Skipped    int
	Errors     int

	Outcomes []FileOutcome
}

func (s *EmailStats) record(o FileOutcome) {
	s.Outcomes = append(s.Outcomes, o)
	switch o.Outcome {
	case constants.OutcomeCreated:
		s.Created++
	case constants.OutcomeDuplicate:
		s.Duplicates++
	case constants.OutcomeMerged:
		s.Merged++
	case constants.OutcomeOrphaned:
		s.Orphaned++
	case constants.OutcomeSkipped:
		s.Skipped++
	case constants.OutcomeFailed:
		s.Errors++
	}
}

// Summary renders the one-line digest used in notifications and logs.
func (s *EmailStats) Summary() string {
	return fmt.Sprintf("%d detected, %d created, %d duplicates, %d merged, %d orphaned, %d skipped, %d errors",
		s.Detected, s.Created, s.Duplicates, s.Merged, s.Orphaned, s.Skipped, s.Errors)
}

// BatchStats aggregates email stats over one polling tick or batch run. The
// caller owns the instance and passes it explicitly; there is no ambient
// session state.
type BatchStats struct {
	Emails     int
	Detected   int
	Created    int
	Duplicates int
	Merged     int
	Orphaned   int
	Skipped    int
	Errors     int
}

// Add folds one processed email into the batch totals.
func (b *BatchStats) Add(s EmailStats) {
	b.Emails++
	b.Detected += s.Detected
	b.Created += s.Created
	b.Duplicates += s.Duplicates
	b.Merged += s.Merged
	b.Orphaned += s.Orphaned
	b.Skipped += s.Skipped
	b.Errors += s.Errors
}

// Summary renders the batch digest.
func (b *BatchStats) Summary() string {
	return fmt.Sprintf("%d emails, %d detected, %d created, %d duplicates, %d merged, %d orphaned, %d skipped, %d errors",
		b.Emails, b.Detected, b.Created, b.Duplicates, b.Merged, b.Orphaned, b.Skipped, b.Errors)
}
