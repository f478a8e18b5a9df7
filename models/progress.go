package models

import "errors"

type Track string

const (
	TrackCitizen Track = "citizen"
	TrackWorker  Track = "worker"
)

func ParseTrack(s string) (Track, error) {
	switch Track(s) {
	case TrackCitizen, TrackWorker:
		return Track(s), nil
	default:
		return "", errors.New("invalid track: must be citizen or worker")
	}
}

// TrackProgress records a user's completion state for one training
// track. The quiz is a single attempt; QuizScore is only meaningful
// once QuizDone is true.
type TrackProgress struct {
	Module1Done bool `json:"module1_done"`
	Module2Done bool `json:"module2_done"`
	QuizDone    bool `json:"quiz_done"`
	QuizScore   int  `json:"quiz_score"`
}

type QuizQuestion struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Answer  string   `json:"-"`
}

type QuizSubmission struct {
	Answers []string `json:"answers"`
}

type QuizResult struct {
	Score         int  `json:"score"`
	Total         int  `json:"total"`
	PointsEarned  int  `json:"points_earned"`
	AlreadyTaken  bool `json:"already_taken"`
}
