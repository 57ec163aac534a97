// Package catalog holds the immutable reference data of the clinic: the
// medication formulary and the condition treatment protocols. Both are loaded
// once into a Registry and passed by injection, never mutated at runtime.
package catalog

import "strings"

// SafetyLevel grades a medication for pregnancy or breastfeeding.
type SafetyLevel string

const (
	SafetySafe    SafetyLevel = "safe"
	SafetyCaution SafetyLevel = "caution"
	SafetyAvoid   SafetyLevel = "avoid"
)

// Frequency is the standard dosing shorthand used on prescriptions.
type Frequency string

const (
	FreqOD  Frequency = "OD"  // once daily
	FreqBD  Frequency = "BD"  // twice daily
	FreqTDS Frequency = "TDS" // three times daily
	FreqQID Frequency = "QID" // four times daily
	FreqSOS Frequency = "SOS" // as needed
)

// Medication is one formulary entry. Prices are whole currency units.
// Tags is the normalized lowercase set of ingredient and class tags used for
// allergy and interaction matching; safety rules match tags, not display names.
type Medication struct {
	ID                string      `json:"id"`
	GenericName       string      `json:"generic_name"`
	BrandName         string      `json:"brand_name"`
	Strength          string      `json:"strength"`
	Form              string      `json:"form"`
	Route             string      `json:"route"`
	Category          string      `json:"category"`
	Price             int         `json:"price"`
	Manufacturer      string      `json:"manufacturer"`
	Contraindications []string    `json:"contraindications"`
	Pregnancy         SafetyLevel `json:"pregnancy"`
	Breastfeeding     SafetyLevel `json:"breastfeeding"`
	Interactions      []string    `json:"interactions"`
	Tags              []string    `json:"tags"`
}

// HasTag reports whether the medication carries the given class or
// ingredient tag. The comparison is case-insensitive.
func (m Medication) HasTag(tag string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DisplayName returns "Generic (Brand) Strength" for prescriptions and alerts.
func (m Medication) DisplayName() string {
	name := m.GenericName
	if m.BrandName != "" && m.BrandName != m.GenericName {
		name += " (" + m.BrandName + ")"
	}
	if m.Strength != "" {
		name += " " + m.Strength
	}
	return name
}
