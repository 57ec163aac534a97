package catalog

import "strings"

// Registry is the loaded-once, read-only view over the formulary and the
// condition protocols. It is safe for concurrent reads.
type Registry struct {
	medications []Medication
	conditions  []DentalCondition
	medByID     map[string]Medication
	condByID    map[string]DentalCondition
}

// NewRegistry builds a registry from medication and condition slices. The
// slices are copied; later mutation of the arguments does not affect the
// registry.
func NewRegistry(meds []Medication, conds []DentalCondition) *Registry {
	r := &Registry{
		medications: append([]Medication(nil), meds...),
		conditions:  append([]DentalCondition(nil), conds...),
		medByID:     make(map[string]Medication, len(meds)),
		condByID:    make(map[string]DentalCondition, len(conds)),
	}
	for _, m := range r.medications {
		r.medByID[m.ID] = m
	}
	for _, c := range r.conditions {
		r.condByID[c.ID] = c
	}
	return r
}

// Default returns a registry loaded with the built-in dental formulary and
// condition protocols.
func Default() *Registry {
	return NewRegistry(defaultMedications(), defaultConditions())
}

// Medication looks up a formulary entry by id.
func (r *Registry) Medication(id string) (Medication, bool) {
	m, ok := r.medByID[id]
	return m, ok
}

// Condition looks up a condition by id.
func (r *Registry) Condition(id string) (DentalCondition, bool) {
	c, ok := r.condByID[id]
	return c, ok
}

// Protocol returns the protocol for a condition at the given tier.
func (r *Registry) Protocol(conditionID string, tier Tier) (TreatmentProtocol, bool) {
	c, ok := r.condByID[conditionID]
	if !ok {
		return TreatmentProtocol{}, false
	}
	p, ok := c.Protocols[tier]
	return p, ok
}

// Medications returns all formulary entries in load order.
func (r *Registry) Medications() []Medication {
	return append([]Medication(nil), r.medications...)
}

// Conditions returns all conditions in load order.
func (r *Registry) Conditions() []DentalCondition {
	return append([]DentalCondition(nil), r.conditions...)
}

// SearchMedications matches the query case-insensitively against generic
// name, brand name, and category.
func (r *Registry) SearchMedications(query string) []Medication {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.Medications()
	}
	var out []Medication
	for _, m := range r.medications {
		if strings.Contains(strings.ToLower(m.GenericName), q) ||
			strings.Contains(strings.ToLower(m.BrandName), q) ||
			strings.Contains(strings.ToLower(m.Category), q) {
			out = append(out, m)
		}
	}
	return out
}

// SearchConditions matches the query case-insensitively against code, name,
// and description.
func (r *Registry) SearchConditions(query string) []DentalCondition {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.Conditions()
	}
	var out []DentalCondition
	for _, c := range r.conditions {
		if strings.Contains(strings.ToLower(c.Code), q) ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			out = append(out, c)
		}
	}
	return out
}

// MedicationsByCategory lists formulary entries in the given category.
func (r *Registry) MedicationsByCategory(category string) []Medication {
	var out []Medication
	for _, m := range r.medications {
		if strings.EqualFold(m.Category, category) {
			out = append(out, m)
		}
	}
	return out
}

// ConditionsByCategory lists conditions in the given category.
func (r *Registry) ConditionsByCategory(category string) []DentalCondition {
	var out []DentalCondition
	for _, c := range r.conditions {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out
}
