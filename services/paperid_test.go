package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"submitease-api/models"
)

func TestAbbreviateConferenceName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"International Conference on Machine Learning", "ICML"},
		{"Conference on Neural Information Processing Systems", "CNIPS"},
		{"International Joint Conference on Artificial Intelligence Research", "IJCAI"}, // truncated to 5
		{"Workshop for the Study of Programs", "WSP"},
		{"on the of", "OTO"}, // all stop-words: fall back to every word
	}
	for _, tc := range cases {
		got, err := AbbreviateConferenceName(tc.name)
		if err != nil {
			t.Fatalf("AbbreviateConferenceName(%q) returned error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("AbbreviateConferenceName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAbbreviateConferenceNameEmpty(t *testing.T) {
	for _, name := range []string{"", "   ", "123 456"} {
		if _, err := AbbreviateConferenceName(name); !errors.Is(err, ErrEmptyAbbreviation) {
			t.Errorf("AbbreviateConferenceName(%q) error = %v, want ErrEmptyAbbreviation", name, err)
		}
	}
}

func TestFormatPaperID(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatPaperID("ICML", start, 1); got != "ICML_25_P0001" {
		t.Errorf("first paper id = %q, want ICML_25_P0001", got)
	}
	if got := FormatPaperID("ICML", start, 2); got != "ICML_25_P0002" {
		t.Errorf("second paper id = %q, want ICML_25_P0002", got)
	}
	if got := FormatPaperID("WSP", time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC), 123); got != "WSP_31_P0123" {
		t.Errorf("id = %q, want WSP_31_P0123", got)
	}
}

func TestAssignPaperIDRetriesOnDuplicate(t *testing.T) {
	maxSeqPattern := regexp.MustCompile(`SELECT COALESCE\(MAX\(seq\), 0\) FROM .papers. WHERE conference_id = \?`)
	insertPattern := regexp.MustCompile("INSERT INTO .papers.")

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: maxSeqPattern,
			args:    []driver.Value{int64(1)},
			columns: []string{"max_seq"},
			rows:    [][]driver.Value{{int64(2)}},
		},
		{
			// Another writer claimed seq 3 between the read and the insert.
			kind:    kindExec,
			pattern: insertPattern,
			err:     errors.New("Error 1062 (23000): Duplicate entry '1-3' for key 'idx_conference_seq'"),
		},
		{
			kind:    kindQuery,
			pattern: maxSeqPattern,
			args:    []driver.Value{int64(1)},
			columns: []string{"max_seq"},
			rows:    [][]driver.Value{{int64(3)}},
		},
		{
			kind:    kindExec,
			pattern: insertPattern,
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	conf := models.Conference{
		ConferenceID: 1,
		Name:         "International Conference on Machine Learning",
		StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	paper := models.Paper{ConferenceID: 1, Title: "Test", Status: models.StatusPendingSubmission}

	if err := AssignPaperID(db, &paper, &conf); err != nil {
		t.Fatalf("AssignPaperID returned error: %v", err)
	}

	if paper.Seq != 4 {
		t.Errorf("paper seq = %d, want 4", paper.Seq)
	}
	if paper.PaperID != "ICML_25_P0004" {
		t.Errorf("paper id = %q, want ICML_25_P0004", paper.PaperID)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignPaperIDFirstPaper(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT COALESCE\(MAX\(seq\), 0\) FROM .papers.`),
			columns: []string{"max_seq"},
			rows:    [][]driver.Value{{int64(0)}},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile("INSERT INTO .papers."),
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	conf := models.Conference{
		ConferenceID: 7,
		Name:         "International Conference on Machine Learning",
		StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	paper := models.Paper{ConferenceID: 7, Title: "First", Status: models.StatusPendingSubmission}

	if err := AssignPaperID(db, &paper, &conf); err != nil {
		t.Fatalf("AssignPaperID returned error: %v", err)
	}
	if paper.PaperID != "ICML_25_P0001" {
		t.Errorf("paper id = %q, want ICML_25_P0001", paper.PaperID)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssignPaperIDRejectsUnabbreviatableName(t *testing.T) {
	conf := models.Conference{ConferenceID: 1, Name: "   "}
	paper := models.Paper{ConferenceID: 1}
	if err := AssignPaperID(nil, &paper, &conf); !errors.Is(err, ErrEmptyAbbreviation) {
		t.Fatalf("error = %v, want ErrEmptyAbbreviation", err)
	}
}
