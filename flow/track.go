package flow

import "github.com/tsawler/folio/model"

// TrackMode selects which tracked changes are visible.
type TrackMode int

const (
	// TrackShowAll renders insertions and deletions as-is (no filtering).
	TrackShowAll TrackMode = iota

	// TrackShowFinal renders the document as if all changes were
	// accepted: insertions kept, deletions dropped.
	TrackShowFinal

	// TrackShowOriginal renders the document as if all changes were
	// rejected: insertions dropped, deletions kept.
	TrackShowOriginal

	// TrackHideInsertions drops inserted runs only.
	TrackHideInsertions

	// TrackHideDeletions drops deleted runs only.
	TrackHideDeletions
)

// FilterRuns applies mode-aware tracked-change visibility filtering to a
// run sequence. The input is not modified.
func FilterRuns(runs []model.Run, mode TrackMode) []model.Run {
	if mode == TrackShowAll {
		return runs
	}
	out := make([]model.Run, 0, len(runs))
	for _, r := range runs {
		if runVisible(r, mode) {
			out = append(out, r)
		}
	}
	return out
}

func runVisible(r model.Run, mode TrackMode) bool {
	switch mode {
	case TrackShowFinal:
		return !r.Track.Deleted
	case TrackShowOriginal:
		return !r.Track.Inserted
	case TrackHideInsertions:
		return !r.Track.Inserted
	case TrackHideDeletions:
		return !r.Track.Deleted
	default:
		return true
	}
}
