package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

const binReportReward = 5

// AddBin registers a receptacle. Used at seed time; re-registering an
// existing id fails.
func (l *Ledger) AddBin(id, location string, status models.BinStatus, reportedBy *string, lastUpdated *time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if id == "" || location == "" {
		return fmt.Errorf("%w: bin id and location are required", ErrValidation)
	}
	if _, exists := l.bins[id]; exists {
		return fmt.Errorf("%w: bin %s already registered", ErrState, id)
	}
	l.bins[id] = &models.Bin{
		ID:          id,
		Location:    location,
		Status:      status,
		ReportedBy:  reportedBy,
		LastUpdated: lastUpdated,
	}
	return nil
}

// ReportBinOverflow flags a clean bin as overflowing and credits the
// reporter. Re-reporting an already-overflowing bin fails rather than
// double-crediting; the UI disables the button in that state.
func (l *Ledger) ReportBinOverflow(binID, reporter string) (models.Bin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.users[reporter]
	if !ok {
		return models.Bin{}, fmt.Errorf("%w: %s", ErrUnknownUser, reporter)
	}
	bin, ok := l.bins[binID]
	if !ok {
		return models.Bin{}, fmt.Errorf("%w: %s", ErrUnknownBin, binID)
	}
	if bin.Status == models.BinOverflowing {
		return models.Bin{}, fmt.Errorf("%w: bin %s is already reported as overflowing", ErrState, binID)
	}

	now := l.now()
	bin.Status = models.BinOverflowing
	bin.ReportedBy = &reporter
	bin.LastUpdated = &now
	user.Points += binReportReward
	return *bin, nil
}

// MarkBinClean returns an overflowing bin to Clean. Green Champions
// only. The report attribution is nulled out rather than kept for
// audit, matching the invariant that reported_by/last_updated are only
// meaningful while overflowing.
func (l *Ledger) MarkBinClean(binID, actor string) (models.Bin, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.users[actor]
	if !ok {
		return models.Bin{}, fmt.Errorf("%w: %s", ErrUnknownUser, actor)
	}
	if user.Role != models.RoleGreenChampion {
		return models.Bin{}, fmt.Errorf("%w: only Green Champions can mark bins clean", ErrRole)
	}
	bin, ok := l.bins[binID]
	if !ok {
		return models.Bin{}, fmt.Errorf("%w: %s", ErrUnknownBin, binID)
	}
	if bin.Status != models.BinOverflowing {
		return models.Bin{}, fmt.Errorf("%w: bin %s is not overflowing", ErrState, binID)
	}

	bin.Status = models.BinClean
	bin.ReportedBy = nil
	bin.LastUpdated = nil
	return *bin, nil
}

func (l *Ledger) GetBin(id string) (models.Bin, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	bin, ok := l.bins[id]
	if !ok {
		return models.Bin{}, fmt.Errorf("%w: %s", ErrUnknownBin, id)
	}
	return *bin, nil
}

// ResolveScan maps a decoded QR payload to a registered bin. The image
// decode itself happens on the client; the ledger only ever sees the
// resulting string.
func (l *Ledger) ResolveScan(payload string) (models.Bin, error) {
	return l.GetBin(payload)
}

// ListBins returns all bins ordered by id.
func (l *Ledger) ListBins() []models.Bin {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Bin, 0, len(l.bins))
	for _, b := range l.bins {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OverflowingBins returns the bins needing cleanup, ordered by id.
func (l *Ledger) OverflowingBins() []models.Bin {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []models.Bin{}
	for _, b := range l.bins {
		if b.Status == models.BinOverflowing {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
