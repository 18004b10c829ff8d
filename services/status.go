package services

import (
	"fmt"
	"sort"

	"submitease-api/models"
)

// legal status transitions for each track kind. Journal tracks add the
// revision loop; conference tracks terminate at Accepted/Rejected.
var conferenceTransitions = map[string][]string{
	models.StatusPendingSubmission: {models.StatusUnderReview},
	models.StatusUnderReview:       {models.StatusAccepted, models.StatusRejected},
}

var journalTransitions = map[string][]string{
	models.StatusPendingSubmission: {models.StatusUnderReview},
	models.StatusUnderReview:       {models.StatusAccepted, models.StatusRejected, models.StatusRevisionRequired},
	models.StatusRevisionRequired:  {models.StatusUnderReview},
}

// CanTransition reports whether a paper on the given track kind may move
// from one status to another.
func CanTransition(kind, from, to string) bool {
	table := conferenceTransitions
	if kind == models.TrackKindJournal {
		table = journalTransitions
	}
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionPaper validates and applies a status change on the in-memory
// paper. A decision transition also marks the paper final.
func TransitionPaper(paper *models.Paper, kind, to string) error {
	if !models.ValidStatus(to) {
		return fmt.Errorf("unknown status %q", to)
	}
	if paper.IsFinal {
		return fmt.Errorf("paper %s already has a final decision", paper.PaperID)
	}
	if !CanTransition(kind, paper.Status, to) {
		return fmt.Errorf("cannot move paper %s from %q to %q", paper.PaperID, paper.Status, to)
	}
	paper.Status = to
	if to == models.StatusAccepted || to == models.StatusRejected {
		paper.IsFinal = true
	}
	return nil
}

// EffectiveStatus resolves the status shown for a paper, parameterized by
// the track kind. Journal papers answer with their most recent revision's
// status when revisions exist; conference papers report Under Review while
// no final decision has been made and the paper has left Pending Submission.
func EffectiveStatus(paper *models.Paper, kind string) string {
	if kind == models.TrackKindJournal {
		if len(paper.Revisions) > 0 {
			revs := make([]models.Revision, len(paper.Revisions))
			copy(revs, paper.Revisions)
			sort.Slice(revs, func(i, j int) bool {
				if revs[i].CreatedAt.Equal(revs[j].CreatedAt) {
					return revs[i].RevisionID > revs[j].RevisionID
				}
				return revs[i].CreatedAt.After(revs[j].CreatedAt)
			})
			return revs[0].Status
		}
		return paper.Status
	}
	if !paper.IsFinal && paper.Status != models.StatusPendingSubmission {
		return models.StatusUnderReview
	}
	return paper.Status
}

// TrackKindOf returns the paper's track kind, defaulting to conference when
// the paper has no track assigned.
func TrackKindOf(paper *models.Paper) string {
	if paper.Track != nil && paper.Track.Kind == models.TrackKindJournal {
		return models.TrackKindJournal
	}
	return models.TrackKindConference
}
