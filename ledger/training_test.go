package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

func TestCompleteModuleIdempotent(t *testing.T) {
	l := newTestLedger(t)

	awarded, points, err := l.CompleteModule("asha", models.TrackCitizen, "m1")
	require.NoError(t, err)
	assert.True(t, awarded)
	assert.Equal(t, 10, points)

	// Second completion is a no-op with no second award.
	awarded, points, err = l.CompleteModule("asha", models.TrackCitizen, "m1")
	require.NoError(t, err)
	assert.False(t, awarded)
	assert.Equal(t, 0, points)

	user, err := l.GetUser("asha")
	require.NoError(t, err)
	assert.Equal(t, 10, user.Points)

	// Worker modules pay the higher bonus, independently per track.
	awarded, points, err = l.CompleteModule("asha", models.TrackWorker, "m1")
	require.NoError(t, err)
	assert.True(t, awarded)
	assert.Equal(t, 15, points)

	_, _, err = l.CompleteModule("asha", models.TrackCitizen, "m3")
	assert.ErrorIs(t, err, ErrValidation)

	_, _, err = l.CompleteModule("ghost", models.TrackCitizen, "m1")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestQuizLockedUntilModulesDone(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.SubmitQuiz("asha", models.TrackCitizen, []string{"Blue Bin", "Dry leaves"})
	assert.ErrorIs(t, err, ErrState)

	_, _, err = l.CompleteModule("asha", models.TrackCitizen, "m1")
	require.NoError(t, err)

	// One module is not enough.
	_, err = l.SubmitQuiz("asha", models.TrackCitizen, []string{"Blue Bin", "Dry leaves"})
	assert.ErrorIs(t, err, ErrState)
}

func TestQuizScoring(t *testing.T) {
	l := newTestLedger(t)

	_, _, err := l.CompleteModule("asha", models.TrackCitizen, "m1")
	require.NoError(t, err)
	_, _, err = l.CompleteModule("asha", models.TrackCitizen, "m2")
	require.NoError(t, err)

	result, err := l.SubmitQuiz("asha", models.TrackCitizen, []string{"Blue Bin", "Dry leaves"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 10, result.PointsEarned)
	assert.False(t, result.AlreadyTaken)

	user, err := l.GetUser("asha")
	require.NoError(t, err)
	assert.Equal(t, 30, user.Points) // 10 + 10 modules, 10 quiz

	// Resubmission is a no-op that reports the first attempt.
	result, err = l.SubmitQuiz("asha", models.TrackCitizen, []string{"Green Bin", "Plastic wrappers"})
	require.NoError(t, err)
	assert.True(t, result.AlreadyTaken)
	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 0, result.PointsEarned)

	user, _ = l.GetUser("asha")
	assert.Equal(t, 30, user.Points)
}

func TestQuizPartialScore(t *testing.T) {
	l := newTestLedger(t)

	_, _, err := l.CompleteModule("ravi", models.TrackWorker, "m1")
	require.NoError(t, err)
	_, _, err = l.CompleteModule("ravi", models.TrackWorker, "m2")
	require.NoError(t, err)

	result, err := l.SubmitQuiz("ravi", models.TrackWorker, []string{"Heavy-Duty Gloves", "Apple Core"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 10, result.PointsEarned)

	// The attempt is spent even on a partial score.
	progress, err := l.Progress("ravi", models.TrackWorker)
	require.NoError(t, err)
	assert.True(t, progress.QuizDone)
	assert.Equal(t, 1, progress.QuizScore)
}

func TestQuizAnswerCount(t *testing.T) {
	l := newTestLedger(t)

	_, _, err := l.CompleteModule("asha", models.TrackCitizen, "m1")
	require.NoError(t, err)
	_, _, err = l.CompleteModule("asha", models.TrackCitizen, "m2")
	require.NoError(t, err)

	_, err = l.SubmitQuiz("asha", models.TrackCitizen, []string{"Blue Bin"})
	assert.ErrorIs(t, err, ErrValidation)

	// A malformed submission does not spend the attempt.
	progress, err := l.Progress("asha", models.TrackCitizen)
	require.NoError(t, err)
	assert.False(t, progress.QuizDone)
}

func TestQuestionsHideAnswers(t *testing.T) {
	for _, track := range []models.Track{models.TrackCitizen, models.TrackWorker} {
		questions := Questions(track)
		require.Len(t, questions, 2)
		for _, q := range questions {
			assert.NotEmpty(t, q.Prompt)
			assert.Contains(t, q.Options, q.Answer)
		}
	}
}
