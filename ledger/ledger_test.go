package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	l := New()
	l.now = func() time.Time {
		return time.Date(2025, 9, 19, 9, 30, 0, 0, time.UTC)
	}

	_, err := l.CreateUser("asha", "hashed", models.RoleCitizen)
	require.NoError(t, err)
	_, err = l.CreateUser("ravi", "hashed", models.RoleGreenChampion)
	require.NoError(t, err)

	require.NoError(t, l.AddBin("BIN-BH-001", "Kolar Road, Near SBI", models.BinClean, nil, nil))
	require.NoError(t, l.AddBin("BIN-BH-002", "Arera Colony, Market Area", models.BinClean, nil, nil))

	return l
}

func TestAwardAndPenalizePoints(t *testing.T) {
	l := newTestLedger(t)

	points, err := l.AwardPoints("asha", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, points)

	// Penalty larger than the balance clamps at zero, never negative.
	points, err = l.PenalizePoints("asha", 1000)
	require.NoError(t, err)
	assert.Equal(t, 0, points)

	_, err = l.AwardPoints("ghost", 5)
	assert.ErrorIs(t, err, ErrUnknownUser)

	_, err = l.AwardPoints("asha", 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = l.AwardPoints("asha", -3)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestImposeFine(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.AwardPoints("asha", 25)
	require.NoError(t, err)

	points, err := l.ImposeFine("asha", "ravi")
	require.NoError(t, err)
	assert.Equal(t, 15, points)

	// Fines clamp at zero like any penalty.
	_, err = l.ImposeFine("asha", "ravi")
	require.NoError(t, err)
	points, err = l.ImposeFine("asha", "ravi")
	require.NoError(t, err)
	assert.Equal(t, 0, points)

	_, err = l.ImposeFine("ravi", "asha")
	assert.ErrorIs(t, err, ErrRole)

	_, err = l.ImposeFine("ghost", "ravi")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestComplaintLifecycle(t *testing.T) {
	l := newTestLedger(t)

	complaint, err := l.SubmitComplaint("asha", "MP Nagar, Zone 1", models.WasteMixed, "uploads/abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, 0, complaint.ID)
	assert.Equal(t, models.ComplaintPending, complaint.Status)

	complaint, err = l.VerifyComplaint(0, "ravi")
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintVerified, complaint.Status)
	require.NotNil(t, complaint.VerifiedBy)
	assert.Equal(t, "ravi", *complaint.VerifiedBy)

	verifier, err := l.GetUser("ravi")
	require.NoError(t, err)
	assert.Equal(t, 5, verifier.Points)

	// A verified complaint cannot be verified again.
	_, err = l.VerifyComplaint(0, "ravi")
	assert.ErrorIs(t, err, ErrState)

	complaint, err = l.ResolveComplaint(0, "ravi")
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, complaint.Status)

	reporter, err := l.GetUser("asha")
	require.NoError(t, err)
	assert.Equal(t, 10, reporter.Points)

	resolver, err := l.GetUser("ravi")
	require.NoError(t, err)
	assert.Equal(t, 10, resolver.Points)

	// Resolved is terminal.
	_, err = l.ResolveComplaint(0, "ravi")
	assert.ErrorIs(t, err, ErrState)
}

func TestComplaintPreconditions(t *testing.T) {
	l := newTestLedger(t)

	// Champions cannot file reports.
	_, err := l.SubmitComplaint("ravi", "MP Nagar", models.WasteDry, "uploads/x.jpg")
	assert.ErrorIs(t, err, ErrRole)

	// Every field is required.
	_, err = l.SubmitComplaint("asha", "", models.WasteDry, "uploads/x.jpg")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = l.SubmitComplaint("asha", "MP Nagar", models.WasteDry, "")
	assert.ErrorIs(t, err, ErrValidation)

	complaint, err := l.SubmitComplaint("asha", "MP Nagar", models.WasteDry, "uploads/x.jpg")
	require.NoError(t, err)

	// Citizens cannot verify or resolve.
	_, err = l.VerifyComplaint(complaint.ID, "asha")
	assert.ErrorIs(t, err, ErrRole)

	_, err = l.VerifyComplaint(99, "ravi")
	assert.ErrorIs(t, err, ErrUnknownComplaint)

	// Resolving a still-pending complaint fails.
	_, err = l.ResolveComplaint(complaint.ID, "ravi")
	assert.ErrorIs(t, err, ErrState)

	// An invalidated complaint is terminal and never pays out.
	complaint, err = l.InvalidateComplaint(complaint.ID, "ravi")
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintInvalid, complaint.Status)

	_, err = l.VerifyComplaint(complaint.ID, "ravi")
	assert.ErrorIs(t, err, ErrState)

	champion, err := l.GetUser("ravi")
	require.NoError(t, err)
	assert.Equal(t, 0, champion.Points)
}

func TestBinReportAndClean(t *testing.T) {
	l := newTestLedger(t)

	bin, err := l.ReportBinOverflow("BIN-BH-001", "asha")
	require.NoError(t, err)
	assert.Equal(t, models.BinOverflowing, bin.Status)
	require.NotNil(t, bin.ReportedBy)
	assert.Equal(t, "asha", *bin.ReportedBy)
	assert.NotNil(t, bin.LastUpdated)

	reporter, err := l.GetUser("asha")
	require.NoError(t, err)
	assert.Equal(t, 5, reporter.Points)

	// Re-reporting before cleanup fails and never double-awards.
	_, err = l.ReportBinOverflow("BIN-BH-001", "asha")
	assert.ErrorIs(t, err, ErrState)
	reporter, _ = l.GetUser("asha")
	assert.Equal(t, 5, reporter.Points)

	_, err = l.MarkBinClean("BIN-BH-001", "asha")
	assert.ErrorIs(t, err, ErrRole)

	bin, err = l.MarkBinClean("BIN-BH-001", "ravi")
	require.NoError(t, err)
	assert.Equal(t, models.BinClean, bin.Status)
	assert.Nil(t, bin.ReportedBy)
	assert.Nil(t, bin.LastUpdated)

	// Cleaning a clean bin fails.
	_, err = l.MarkBinClean("BIN-BH-001", "ravi")
	assert.ErrorIs(t, err, ErrState)

	_, err = l.ReportBinOverflow("BIN-MISSING", "asha")
	assert.ErrorIs(t, err, ErrUnknownBin)
}

func TestDailyGreenSnapOncePerDay(t *testing.T) {
	l := newTestLedger(t)

	awarded, points, err := l.DailyGreenSnap("asha", "2025-09-19")
	require.NoError(t, err)
	assert.True(t, awarded)
	assert.Equal(t, 1, points)

	awarded, points, err = l.DailyGreenSnap("asha", "2025-09-19")
	require.NoError(t, err)
	assert.False(t, awarded)
	assert.Equal(t, 1, points)

	// A new calendar date earns again.
	awarded, points, err = l.DailyGreenSnap("asha", "2025-09-20")
	require.NoError(t, err)
	assert.True(t, awarded)
	assert.Equal(t, 2, points)
}

func TestRedeemReward(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.AwardPoints("asha", 60)
	require.NoError(t, err)

	_, _, err = l.RedeemReward("asha", "prod2")
	assert.ErrorIs(t, err, ErrState)

	product, balance, err := l.RedeemReward("asha", "prod1")
	require.NoError(t, err)
	assert.Equal(t, "Set of 3 Bamboo Toothbrushes", product.Name)
	assert.Equal(t, 10, balance)

	_, _, err = l.RedeemReward("asha", "prod9")
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestLeaderboardAndStats(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.CreateUser("meera", "hashed", models.RoleCitizen)
	require.NoError(t, err)
	_, err = l.AwardPoints("meera", 40)
	require.NoError(t, err)
	_, err = l.AwardPoints("asha", 15)
	require.NoError(t, err)

	citizens := l.Leaderboard(models.RoleCitizen)
	require.Len(t, citizens, 2)
	assert.Equal(t, "meera", citizens[0].Username)
	assert.Equal(t, 1, citizens[0].Rank)
	assert.Equal(t, "asha", citizens[1].Username)
	assert.Equal(t, 2, citizens[1].Rank)

	_, err = l.SubmitComplaint("asha", "MP Nagar", models.WasteWet, "uploads/x.jpg")
	require.NoError(t, err)
	_, err = l.ReportBinOverflow("BIN-BH-002", "meera")
	require.NoError(t, err)

	stats := l.Stats()
	assert.Equal(t, 1, stats.PendingComplaints)
	assert.Equal(t, 1, stats.OverflowingBins)
}

func TestDuplicateUser(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.CreateUser("asha", "hashed", models.RoleCitizen)
	assert.ErrorIs(t, err, ErrDuplicateUser)

	_, err = l.CreateUser("", "hashed", models.RoleCitizen)
	assert.ErrorIs(t, err, ErrValidation)
}
