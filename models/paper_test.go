package models

import "testing"

func TestSortAuthorsPreservesPersistedOrder(t *testing.T) {
	paper := Paper{
		Authors: []User{
			{UserID: 3, FirstName: "C"},
			{UserID: 1, FirstName: "A"},
			{UserID: 2, FirstName: "B"},
		},
		AuthorOrder: IntList{1, 2, 3},
	}
	paper.SortAuthors()

	got := []int{paper.Authors[0].UserID, paper.Authors[1].UserID, paper.Authors[2].UserID}
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("author order = %v, want %v", got, want)
		}
	}
}

func TestSortAuthorsAppendsDriftedMembers(t *testing.T) {
	// User 4 is in the relation but missing from the order list; it must be
	// appended at the end rather than dropped or treated as an error.
	paper := Paper{
		Authors: []User{
			{UserID: 4},
			{UserID: 2},
			{UserID: 1},
		},
		AuthorOrder: IntList{1, 2},
	}
	paper.SortAuthors()

	got := []int{paper.Authors[0].UserID, paper.Authors[1].UserID, paper.Authors[2].UserID}
	want := []int{1, 2, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("author order = %v, want %v", got, want)
		}
	}
}

func TestSortAuthorsEmptyOrderIsNoop(t *testing.T) {
	paper := Paper{Authors: []User{{UserID: 9}, {UserID: 5}}}
	paper.SortAuthors()
	if paper.Authors[0].UserID != 9 || paper.Authors[1].UserID != 5 {
		t.Fatal("relation order must be untouched when no order list exists")
	}
}

func TestCorrespondentIsFirstOrderedAuthor(t *testing.T) {
	paper := Paper{
		Authors:     []User{{UserID: 2, Email: "b@x.org"}, {UserID: 1, Email: "a@x.org"}},
		AuthorOrder: IntList{1, 2},
	}
	corr := paper.Correspondent()
	if corr == nil || corr.UserID != 1 {
		t.Fatalf("correspondent = %+v, want user 1", corr)
	}

	empty := Paper{}
	if empty.Correspondent() != nil {
		t.Fatal("paper without authors has no correspondent")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPendingSubmission, StatusUnderReview, StatusAccepted, StatusRejected, StatusRevisionRequired} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "Approved", "under review"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestReviewComputeAvgScore(t *testing.T) {
	r := Review{Originality: 4, Clarity: 5, Soundness: 4, Significance: 3, Relevance: 4}
	if got := r.ComputeAvgScore(); got != 4.0 {
		t.Errorf("avg = %v, want 4.0", got)
	}
	if !r.ScoresValid() {
		t.Error("scores should be valid")
	}
	r.Clarity = 6
	if r.ScoresValid() {
		t.Error("score above 5 should be invalid")
	}
}
