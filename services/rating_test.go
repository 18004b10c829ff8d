package services

import (
	"testing"

	"submitease-api/models"
)

func score(v float64) *float64 { return &v }

func TestAverageRating(t *testing.T) {
	reviews := []models.Review{
		{AvgScore: score(4.0)},
		{AvgScore: score(3.0)},
	}
	avg, has := AverageRating(reviews)
	if !has || avg != 3.5 {
		t.Fatalf("AverageRating = (%v, %v), want (3.5, true)", avg, has)
	}
}

func TestAverageRatingIgnoresDrafts(t *testing.T) {
	reviews := []models.Review{
		{AvgScore: score(5.0)},
		{AvgScore: nil}, // draft, not yet scored
	}
	avg, has := AverageRating(reviews)
	if !has || avg != 5.0 {
		t.Fatalf("AverageRating = (%v, %v), want (5.0, true)", avg, has)
	}
}

func TestAverageRatingNoReviews(t *testing.T) {
	avg, has := AverageRating(nil)
	if has || avg != 0 {
		t.Fatalf("AverageRating = (%v, %v), want (0, false)", avg, has)
	}
}

func TestPreparePaperViewStripsReviewRows(t *testing.T) {
	paper := models.Paper{
		Authors:     []models.User{{UserID: 4}, {UserID: 12}},
		AuthorOrder: models.IntList{12, 4},
		Reviews: []models.Review{
			{AvgScore: score(4.0), Comment: "Strong results."},
			{AvgScore: nil},
		},
	}

	PreparePaperView(&paper)

	if !paper.HasRating || paper.AverageRating != 4.0 {
		t.Fatalf("rating = (%v, %v), want (4.0, true)", paper.AverageRating, paper.HasRating)
	}
	if paper.Reviews != nil {
		t.Fatal("review rows must not survive view preparation")
	}
	if paper.Authors[0].UserID != 12 || paper.Authors[1].UserID != 4 {
		t.Fatalf("authors not in persisted order: %v, %v", paper.Authors[0].UserID, paper.Authors[1].UserID)
	}
}

func TestPassesMinRating(t *testing.T) {
	rated := models.Paper{AverageRating: 3.5, HasRating: true}
	unrated := models.Paper{}

	// Zero threshold means no minimum; unrated papers pass.
	if !PassesMinRating(&unrated, 0) {
		t.Error("unrated paper should pass a zero threshold")
	}
	// Any positive threshold excludes unrated papers.
	if PassesMinRating(&unrated, 0.5) {
		t.Error("unrated paper should fail a positive threshold")
	}
	if !PassesMinRating(&rated, 3.5) {
		t.Error("paper at the threshold should pass")
	}
	if PassesMinRating(&rated, 4.0) {
		t.Error("paper below the threshold should fail")
	}
}
