package catalog

// Tier selects one of the three predefined protocol variants for a condition.
type Tier string

const (
	TierPremium  Tier = "premium"
	TierStandard Tier = "standard"
	TierBasic    Tier = "basic"
)

// Tiers lists the valid tiers in display order.
var Tiers = []Tier{TierPremium, TierStandard, TierBasic}

// ValidTier reports whether t names a known tier.
func ValidTier(t Tier) bool {
	return t == TierPremium || t == TierStandard || t == TierBasic
}

// DosageInstruction is one line of a protocol: a medication and how to take it.
type DosageInstruction struct {
	MedicationID        string    `json:"medication_id"`
	Dose                string    `json:"dose"`
	Frequency           Frequency `json:"frequency"`
	Timing              string    `json:"timing"`
	Duration            string    `json:"duration"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
}

// TreatmentProtocol bundles the medications, advice, and follow-up interval
// for one condition at one tier. Value object, always nested in a condition.
type TreatmentProtocol struct {
	Tier                Tier                `json:"tier"`
	Medications         []DosageInstruction `json:"medications"`
	Instructions        []string            `json:"instructions"`
	Warnings            []string            `json:"warnings"`
	FollowUpDays        int                 `json:"follow_up_days"`
	DietaryRestrictions []string            `json:"dietary_restrictions"`
}

// DentalCondition is one diagnosable condition with exactly three protocol
// tiers.
type DentalCondition struct {
	ID          string                     `json:"id"`
	Code        string                     `json:"code"`
	Name        string                     `json:"name"`
	Category    string                     `json:"category"`
	Description string                     `json:"description"`
	Protocols   map[Tier]TreatmentProtocol `json:"protocols"`
}
