package services

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"submitease-api/models"

	"gorm.io/gorm"
)

// Stop-words dropped when abbreviating a conference name.
var abbreviationStopWords = map[string]bool{
	"on": true, "of": true, "the": true, "in": true,
	"and": true, "for": true, "a": true, "an": true,
}

const maxAbbreviationLen = 5

// paperIDMutex serializes sequence assignment within this process. The
// unique (conference_id, seq) index plus the retry loop in AssignPaperID
// covers concurrent processes.
var paperIDMutex sync.Mutex

// ErrEmptyAbbreviation is returned when a conference name yields no letters
// to abbreviate.
var ErrEmptyAbbreviation = errors.New("conference name produces an empty abbreviation")

// AbbreviateConferenceName derives the short uppercase code used in paper
// identifiers: first letter of each non-stop-word, uppercased, at most five
// characters. A name made entirely of stop-words falls back to taking first
// letters of every word.
func AbbreviateConferenceName(name string) (string, error) {
	words := strings.Fields(name)
	abbr := buildAbbreviation(words, true)
	if abbr == "" {
		abbr = buildAbbreviation(words, false)
	}
	if abbr == "" {
		return "", ErrEmptyAbbreviation
	}
	return abbr, nil
}

func buildAbbreviation(words []string, skipStopWords bool) string {
	var b strings.Builder
	for _, w := range words {
		if skipStopWords && abbreviationStopWords[strings.ToLower(w)] {
			continue
		}
		for _, r := range w {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				b.WriteRune(r)
				break
			}
		}
		if b.Len() >= maxAbbreviationLen {
			break
		}
	}
	abbr := strings.ToUpper(b.String())
	if len(abbr) > maxAbbreviationLen {
		abbr = abbr[:maxAbbreviationLen]
	}
	return abbr
}

// FormatPaperID renders "{ABBR}_{YY}_P{seq:04d}".
func FormatPaperID(abbr string, year time.Time, seq int) string {
	return fmt.Sprintf("%s_%02d_P%04d", abbr, year.Year()%100, seq)
}

// NextPaperSeq returns max(seq)+1 for the conference, starting at 1.
func NextPaperSeq(db *gorm.DB, conferenceID int) (int, error) {
	var maxSeq int
	err := db.Model(&models.Paper{}).
		Where("conference_id = ?", conferenceID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&maxSeq).Error
	if err != nil {
		return 0, err
	}
	return maxSeq + 1, nil
}

// AssignPaperID reserves the next identifier for the conference and creates
// the paper with it. Sequence assignment is read-then-write, so the whole
// step runs under the process mutex and retries on a duplicate-key conflict
// from the (conference_id, seq) unique index.
func AssignPaperID(db *gorm.DB, paper *models.Paper, conf *models.Conference) error {
	abbr, err := AbbreviateConferenceName(conf.Name)
	if err != nil {
		return err
	}

	paperIDMutex.Lock()
	defer paperIDMutex.Unlock()

	const maxAttempts = 3
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		seq, err := NextPaperSeq(db, conf.ConferenceID)
		if err != nil {
			return err
		}
		paper.Seq = seq
		paper.PaperID = FormatPaperID(abbr, conf.StartDate, seq)

		err = db.Create(paper).Error
		if err == nil {
			return nil
		}
		lastErr = err
		if !isDuplicateKeyError(err) {
			return err
		}
	}
	return fmt.Errorf("could not reserve paper id after %d attempts: %w", maxAttempts, lastErr)
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// MySQL error 1062
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
