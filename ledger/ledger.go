package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

// Ledger owns the user, complaint, bin and training-progress tables and
// enforces every points and state-transition rule at the mutation
// boundary. All state is process-lifetime memory; callers get value
// copies, never pointers into the tables.
//
// A single RWMutex guards the whole ledger. Every operation touches at
// most three records and completes without blocking, so one lock gives
// each mutation the read-modify-write atomicity it needs, including the
// reporter+resolver credit in ResolveComplaint as one unit.
type Ledger struct {
	mu         sync.RWMutex
	users      map[string]*models.User
	complaints []*models.Complaint
	bins       map[string]*models.Bin
	progress   map[models.Track]map[string]*models.TrackProgress

	now func() time.Time
}

func New() *Ledger {
	return &Ledger{
		users: make(map[string]*models.User),
		bins:  make(map[string]*models.Bin),
		progress: map[models.Track]map[string]*models.TrackProgress{
			models.TrackCitizen: {},
			models.TrackWorker:  {},
		},
		now: time.Now,
	}
}

// CreateUser registers a new account with zero points.
func (l *Ledger) CreateUser(username, hashedPassword string, role models.Role) (models.User, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.users[username]; exists {
		return models.User{}, fmt.Errorf("%w: %s", ErrDuplicateUser, username)
	}

	user, err := models.NewUser(username, hashedPassword, role)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	l.users[username] = user
	return *user, nil
}

func (l *Ledger) GetUser(username string) (models.User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	user, ok := l.users[username]
	if !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	return *user, nil
}

// AwardPoints adds amount (> 0) to the user's balance. There is no
// upper bound.
func (l *Ledger) AwardPoints(username string, amount int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return 0, fmt.Errorf("%w: award amount must be positive", ErrValidation)
	}
	user, ok := l.users[username]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	user.Points += amount
	return user.Points, nil
}

// PenalizePoints subtracts amount from the user's balance, clamped at
// zero.
func (l *Ledger) PenalizePoints(username string, amount int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount <= 0 {
		return 0, fmt.Errorf("%w: penalty amount must be positive", ErrValidation)
	}
	user, ok := l.users[username]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	user.Points -= amount
	if user.Points < 0 {
		user.Points = 0
	}
	return user.Points, nil
}

// litteringFine is the fixed penalty a Green Champion may impose.
const litteringFine = 10

// ImposeFine penalizes a citizen for littering. Green Champions only.
func (l *Ledger) ImposeFine(citizen, actor string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	imposer, ok := l.users[actor]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUser, actor)
	}
	if imposer.Role != models.RoleGreenChampion {
		return 0, fmt.Errorf("%w: only Green Champions can impose fines", ErrRole)
	}
	user, ok := l.users[citizen]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownUser, citizen)
	}
	user.Points -= litteringFine
	if user.Points < 0 {
		user.Points = 0
	}
	return user.Points, nil
}

const greenSnapPoints = 1

// DailyGreenSnap awards one point for today's eco-friendly photo. The
// second call on the same calendar date is a no-op; awarded reports
// whether the point was credited.
func (l *Ledger) DailyGreenSnap(username, today string) (awarded bool, points int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.users[username]
	if !ok {
		return false, 0, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	if today == "" {
		return false, 0, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if user.LastGreenSnap != nil && *user.LastGreenSnap == today {
		return false, user.Points, nil
	}
	user.Points += greenSnapPoints
	user.LastGreenSnap = &today
	return true, user.Points, nil
}

// RedeemReward deducts a product's cost from the user's balance. Unlike
// penalties, redeeming is guarded, not clamped: an unaffordable product
// fails and the balance is untouched.
func (l *Ledger) RedeemReward(username, productID string) (models.Product, int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.users[username]
	if !ok {
		return models.Product{}, 0, fmt.Errorf("%w: %s", ErrUnknownUser, username)
	}
	product, ok := catalog[productID]
	if !ok {
		return models.Product{}, 0, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	if user.Points < product.Cost {
		return models.Product{}, 0, fmt.Errorf("%w: need %d more points for %s",
			ErrState, product.Cost-user.Points, product.Name)
	}
	user.Points -= product.Cost
	return product, user.Points, nil
}

// Leaderboard returns users of one role ranked by points, highest
// first. Ties keep a stable alphabetical order.
func (l *Ledger) Leaderboard(role models.Role) []models.LeaderboardEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := []models.LeaderboardEntry{}
	for _, user := range l.users {
		if user.Role == role {
			entries = append(entries, models.LeaderboardEntry{
				Username: user.Username,
				Points:   user.Points,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Username < entries[j].Username
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Stats summarizes the complaint and bin tables for the operations
// dashboard.
func (l *Ledger) Stats() models.DashboardStats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var stats models.DashboardStats
	for _, c := range l.complaints {
		switch c.Status {
		case models.ComplaintPending:
			stats.PendingComplaints++
		case models.ComplaintVerified:
			stats.VerifiedComplaints++
		case models.ComplaintResolved:
			stats.ResolvedComplaints++
		case models.ComplaintInvalid:
			stats.InvalidComplaints++
		}
	}
	for _, b := range l.bins {
		if b.Status == models.BinOverflowing {
			stats.OverflowingBins++
		}
	}
	return stats
}
