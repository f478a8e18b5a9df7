package models

import "time"

type BinStatus string

const (
	BinClean       BinStatus = "Clean"
	BinOverflowing BinStatus = "Overflowing"
)

// Bin is a physical waste receptacle tracked by its QR-coded id.
// ReportedBy and LastUpdated are only set while the bin is overflowing.
type Bin struct {
	ID          string     `json:"id"`
	Location    string     `json:"location"`
	Status      BinStatus  `json:"status"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	ReportedBy  *string    `json:"reported_by,omitempty"`
}
