package models

// Diagnosis is the result of a crop-disease analysis of a single leaf image.
// Confidence is a percentage in [0,100]. Severity is one of "Mild",
// "Moderate", "Severe". Treatment holds ordered recommendation steps and may
// be empty when the analysis backend does not provide any.
type Diagnosis struct {
	Disease     string   `json:"disease"`
	Confidence  float64  `json:"confidence"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Treatment   []string `json:"treatment,omitempty"`
}
