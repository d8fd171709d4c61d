package entity

// DeviceMatch is one candidate appliance recognised in a photo.
type DeviceMatch struct {
	Name        string     `json:"name"`
	Type        DeviceType `json:"type"`
	Brand       string     `json:"brand,omitempty"`
	Model       string     `json:"model,omitempty"`
	PowerRating float64    `json:"power_rating,omitempty"`
	Confidence  float64    `json:"confidence"`
}

// DetectionResult is the output of the device recognition function.
type DetectionResult struct {
	DetectedText  string        `json:"detected_text"`
	Confidence    float64       `json:"confidence"`
	DeviceMatches []DeviceMatch `json:"device_matches"`
	PhotoKey      string        `json:"photo_key"`
}
