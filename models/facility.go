package models

// Facility is a ULB waste-management site shown on the facility map.
type Facility struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	WasteType string  `json:"waste_type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
