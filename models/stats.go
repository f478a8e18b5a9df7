package models

type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Points   int    `json:"points"`
}

type DashboardStats struct {
	PendingComplaints  int `json:"pending_complaints"`
	VerifiedComplaints int `json:"verified_complaints"`
	ResolvedComplaints int `json:"resolved_complaints"`
	InvalidComplaints  int `json:"invalid_complaints"`
	OverflowingBins    int `json:"overflowing_bins"`
}
