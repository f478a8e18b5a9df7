package models

import (
	"errors"
	"time"
)

type ComplaintStatus string

const (
	ComplaintPending  ComplaintStatus = "Pending"
	ComplaintVerified ComplaintStatus = "Verified"
	ComplaintInvalid  ComplaintStatus = "Invalid"
	ComplaintResolved ComplaintStatus = "Resolved"
)

type WasteType string

const (
	WasteMixed     WasteType = "Mixed Garbage"
	WasteDry       WasteType = "Dry Waste"
	WasteWet       WasteType = "Wet Waste"
	WasteHazardous WasteType = "Hazardous Waste"
)

func ParseWasteType(s string) (WasteType, error) {
	switch WasteType(s) {
	case WasteMixed, WasteDry, WasteWet, WasteHazardous:
		return WasteType(s), nil
	default:
		return "", errors.New("invalid waste type")
	}
}

// Complaint is a geo-tagged community waste report. IDs are assigned in
// insertion order by the ledger.
type Complaint struct {
	ID         int             `json:"id"`
	Reporter   string          `json:"reporter"`
	Location   string          `json:"location"`
	WasteType  WasteType       `json:"waste_type"`
	PhotoRef   string          `json:"photo_ref"`
	Timestamp  time.Time       `json:"timestamp"`
	Status     ComplaintStatus `json:"status"`
	VerifiedBy *string         `json:"verified_by,omitempty"`
}

type ComplaintCreate struct {
	Location  string `json:"location"`
	WasteType string `json:"waste_type"`
	PhotoRef  string `json:"photo_ref"`
}
