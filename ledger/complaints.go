package ledger

import (
	"fmt"

	"github.com/baisyuvraj142-crypto/Ecomorphis--App/models"
)

// Point awards along the complaint lifecycle.
const (
	verifyReward          = 5
	resolveReporterReward = 10
	resolveResolverReward = 5
)

// SubmitComplaint appends a new Pending report. Citizens only; every
// field, including the photo handle, is required.
func (l *Ledger) SubmitComplaint(reporter, location string, wasteType models.WasteType, photoRef string) (models.Complaint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	user, ok := l.users[reporter]
	if !ok {
		return models.Complaint{}, fmt.Errorf("%w: %s", ErrUnknownUser, reporter)
	}
	if user.Role != models.RoleCitizen {
		return models.Complaint{}, fmt.Errorf("%w: only Citizens can report waste issues", ErrRole)
	}
	if location == "" || wasteType == "" || photoRef == "" {
		return models.Complaint{}, fmt.Errorf("%w: location, waste type and photo are required", ErrValidation)
	}

	complaint := &models.Complaint{
		ID:        len(l.complaints),
		Reporter:  reporter,
		Location:  location,
		WasteType: wasteType,
		PhotoRef:  photoRef,
		Timestamp: l.now(),
		Status:    models.ComplaintPending,
	}
	l.complaints = append(l.complaints, complaint)
	return *complaint, nil
}

// VerifyComplaint moves a Pending report to Verified and credits the
// verifying Green Champion.
func (l *Ledger) VerifyComplaint(id int, verifier string) (models.Complaint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	complaint, err := l.championTransition(id, verifier, models.ComplaintPending)
	if err != nil {
		return models.Complaint{}, err
	}
	complaint.Status = models.ComplaintVerified
	complaint.VerifiedBy = &verifier
	l.users[verifier].Points += verifyReward
	return *complaint, nil
}

// InvalidateComplaint moves a Pending report to Invalid. No points are
// awarded; Invalid is terminal.
func (l *Ledger) InvalidateComplaint(id int, verifier string) (models.Complaint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	complaint, err := l.championTransition(id, verifier, models.ComplaintPending)
	if err != nil {
		return models.Complaint{}, err
	}
	complaint.Status = models.ComplaintInvalid
	return *complaint, nil
}

// ResolveComplaint closes a Verified report, crediting the original
// reporter and the resolving Green Champion in one atomic step.
func (l *Ledger) ResolveComplaint(id int, resolver string) (models.Complaint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	complaint, err := l.championTransition(id, resolver, models.ComplaintVerified)
	if err != nil {
		return models.Complaint{}, err
	}
	reporter, ok := l.users[complaint.Reporter]
	if !ok {
		// Users are never deleted, so the reporter must still exist.
		return models.Complaint{}, fmt.Errorf("%w: %s", ErrUnknownUser, complaint.Reporter)
	}
	complaint.Status = models.ComplaintResolved
	reporter.Points += resolveReporterReward
	l.users[resolver].Points += resolveResolverReward
	return *complaint, nil
}

// championTransition checks the shared preconditions of the lifecycle
// mutations: the actor is a Green Champion and the complaint is in the
// required state. Called with the lock held.
func (l *Ledger) championTransition(id int, actor string, required models.ComplaintStatus) (*models.Complaint, error) {
	user, ok := l.users[actor]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, actor)
	}
	if user.Role != models.RoleGreenChampion {
		return nil, fmt.Errorf("%w: only Green Champions can manage reports", ErrRole)
	}
	if id < 0 || id >= len(l.complaints) {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownComplaint, id)
	}
	complaint := l.complaints[id]
	if complaint.Status != required {
		return nil, fmt.Errorf("%w: complaint %d is %s, not %s", ErrState, id, complaint.Status, required)
	}
	return complaint, nil
}

func (l *Ledger) GetComplaint(id int) (models.Complaint, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if id < 0 || id >= len(l.complaints) {
		return models.Complaint{}, fmt.Errorf("%w: id %d", ErrUnknownComplaint, id)
	}
	return *l.complaints[id], nil
}

// ListComplaints returns complaints in insertion order, optionally
// filtered by status ("" matches all).
func (l *Ledger) ListComplaints(status models.ComplaintStatus) []models.Complaint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []models.Complaint{}
	for _, c := range l.complaints {
		if status == "" || c.Status == status {
			out = append(out, *c)
		}
	}
	return out
}

// ComplaintsBy returns one reporter's complaints in insertion order.
func (l *Ledger) ComplaintsBy(reporter string) []models.Complaint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := []models.Complaint{}
	for _, c := range l.complaints {
		if c.Reporter == reporter {
			out = append(out, *c)
		}
	}
	return out
}
