// Package patient manages patient records and their medical histories.
// The medical history is the input to prescription safety screening.
package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Age       int       `db:"age" json:"age"`
	Gender    string    `db:"gender" json:"gender"`
	Phone     string    `db:"phone" json:"phone"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Address   *string   `db:"address" json:"address,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MedicalHistory is the per-patient screening input, one row per patient.
// It is only ever overwritten in full, never partially updated or deleted.
type MedicalHistory struct {
	PatientID          uuid.UUID `db:"patient_id" json:"patient_id"`
	Allergies          []string  `db:"allergies" json:"allergies"`
	ChronicConditions  []string  `db:"chronic_conditions" json:"chronic_conditions"`
	CurrentMedications []string  `db:"current_medications" json:"current_medications"`
	IsPregnant         bool      `db:"is_pregnant" json:"is_pregnant"`
	IsBreastfeeding    bool      `db:"is_breastfeeding" json:"is_breastfeeding"`
	BloodThinners      bool      `db:"blood_thinners" json:"blood_thinners"`
	Diabetic           bool      `db:"diabetic" json:"diabetic"`
	Hypertensive       bool      `db:"hypertensive" json:"hypertensive"`
	Asthmatic          bool      `db:"asthmatic" json:"asthmatic"`
	LiverDisease       bool      `db:"liver_disease" json:"liver_disease"`
	KidneyDisease      bool      `db:"kidney_disease" json:"kidney_disease"`
	LastUpdated        time.Time `db:"last_updated" json:"last_updated"`
}
