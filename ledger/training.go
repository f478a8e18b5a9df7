package ledger

import (
	"fmt"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

// One-time module bonuses and per-question quiz points for each track.
var trackModulePoints = map[models.Track]int{
	models.TrackCitizen: 10,
	models.TrackWorker:  15,
}

var trackQuestionPoints = map[models.Track]int{
	models.TrackCitizen: 5,
	models.TrackWorker:  10,
}

var quizBank = map[models.Track][]models.QuizQuestion{
	models.TrackCitizen: {
		{
			Prompt:  "Which bin does a plastic milk packet go into?",
			Options: []string{"Green Bin", "Blue Bin", "Red Bin"},
			Answer:  "Blue Bin",
		},
		{
			Prompt:  "What is a key ingredient for good compost?",
			Options: []string{"Plastic wrappers", "Dry leaves", "Glass bottles"},
			Answer:  "Dry leaves",
		},
	},
	models.TrackWorker: {
		{
			Prompt:  "What should you wear when handling sharp objects?",
			Options: []string{"Cotton Gloves", "Heavy-Duty Gloves", "No Gloves"},
			Answer:  "Heavy-Duty Gloves",
		},
		{
			Prompt:  "Which item is considered hazardous waste?",
			Options: []string{"Apple Core", "Used Batteries", "Plastic Bottle"},
			Answer:  "Used Batteries",
		},
	},
}

// Questions returns the quiz for a track. Correct answers are never
// serialized to clients.
func Questions(track models.Track) []models.QuizQuestion {
	return quizBank[track]
}

// Progress returns the user's completion state for one track,
// initializing it lazily the way the session app did.
func (l *Ledger) Progress(username string, track models.Track) (models.TrackProgress, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	progress, err := l.trackProgress(username, track)
	if err != nil {
		return models.TrackProgress{}, err
	}
	return *progress, nil
}

// CompleteModule marks a module done and awards its one-time bonus.
// Re-completing a finished module is a no-op and never re-awards.
func (l *Ledger) CompleteModule(username string, track models.Track, moduleKey string) (awarded bool, points int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	progress, err := l.trackProgress(username, track)
	if err != nil {
		return false, 0, err
	}

	var done *bool
	switch moduleKey {
	case "m1":
		done = &progress.Module1Done
	case "m2":
		done = &progress.Module2Done
	default:
		return false, 0, fmt.Errorf("%w: unknown module %q", ErrValidation, moduleKey)
	}

	if *done {
		return false, 0, nil
	}
	*done = true
	bonus := trackModulePoints[track]
	l.users[username].Points += bonus
	return true, bonus, nil
}

// SubmitQuiz scores one attempt against the track's answer key. The
// quiz unlocks only after both modules; a second submission is a no-op
// that returns the recorded first-attempt score.
func (l *Ledger) SubmitQuiz(username string, track models.Track, answers []string) (models.QuizResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	progress, err := l.trackProgress(username, track)
	if err != nil {
		return models.QuizResult{}, err
	}

	questions := quizBank[track]
	if !progress.Module1Done || !progress.Module2Done {
		return models.QuizResult{}, fmt.Errorf("%w: quiz locked until both modules are completed", ErrState)
	}
	if progress.QuizDone {
		return models.QuizResult{
			Score:        progress.QuizScore,
			Total:        len(questions),
			AlreadyTaken: true,
		}, nil
	}
	if len(answers) != len(questions) {
		return models.QuizResult{}, fmt.Errorf("%w: expected %d answers, got %d", ErrValidation, len(questions), len(answers))
	}

	score := 0
	for i, q := range questions {
		if answers[i] == q.Answer {
			score++
		}
	}

	earned := score * trackQuestionPoints[track]
	// The attempt is spent regardless of score.
	progress.QuizDone = true
	progress.QuizScore = score
	if earned > 0 {
		l.users[username].Points += earned
	}

	return models.QuizResult{
		Score:        score,
		Total:        len(questions),
		PointsEarned: earned,
	}, nil
}

// trackProgress fetches (or lazily creates) the per-user record for a
// track. Called with the lock held.
func (l *Ledger) trackProgress(username string, track models.Track) (*models.TrackProgress, error) {
	if _, ok := l.users[username]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	table, ok := l.progress[track]
	if !ok {
		return nil, fmt.Errorf("%w: unknown track %q", ErrValidation, track)
	}
	progress, ok := table[username]
	if !ok {
		progress = &models.TrackProgress{}
		table[username] = progress
	}
	return progress, nil
}
