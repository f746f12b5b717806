package journal

import (
	"errors"
	"time"
)

const (
	ScoreCrisis     = 1
	ScoreStruggling = 2
	ScoreOkay       = 3
	ScoreGood       = 4
	ScoreGreat      = 5
)

// ErrInvalidScore is returned when a check-in score is outside [1,5].
var ErrInvalidScore = errors.New("score must be between 1 and 5")

// Entry is a single mood check-in. Entries are immutable once created.
// Timestamp is the instant the check-in is attributed to (it may be
// backdated), stored as epoch milliseconds to match the on-disk format.
type Entry struct {
	ID        string   `json:"id"`
	Timestamp int64    `json:"timestamp"`
	Score     int      `json:"score"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags"`
}

// Time returns the attributed instant of the entry.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Mood describes a point on the 1-5 check-in scale.
type Mood struct {
	Score int
	Label string
	Emoji string
}

// Moods lists the check-in scale in score order.
var Moods = []Mood{
	{Score: ScoreCrisis, Label: "Crisis", Emoji: "😫"},
	{Score: ScoreStruggling, Label: "Struggling", Emoji: "😔"},
	{Score: ScoreOkay, Label: "Okay", Emoji: "😐"},
	{Score: ScoreGood, Label: "Good", Emoji: "🙂"},
	{Score: ScoreGreat, Label: "Great", Emoji: "🌟"},
}

// MoodFor returns the scale point for a score, and whether it is valid.
func MoodFor(score int) (Mood, bool) {
	if score < ScoreCrisis || score > ScoreGreat {
		return Mood{}, false
	}
	return Moods[score-1], true
}

func validScore(score int) bool {
	return score >= ScoreCrisis && score <= ScoreGreat
}
