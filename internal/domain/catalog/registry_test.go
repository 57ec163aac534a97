package catalog

import "testing"

func TestDefaultRegistryLookups(t *testing.T) {
	reg := Default()

	m, ok := reg.Medication("amoxicillin-500")
	if !ok {
		t.Fatal("amoxicillin-500 missing from default formulary")
	}
	if m.GenericName != "Amoxicillin" {
		t.Errorf("GenericName = %q", m.GenericName)
	}
	if !m.HasTag("penicillin") {
		t.Error("amoxicillin should carry the penicillin tag")
	}

	if _, ok := reg.Medication("no-such-med"); ok {
		t.Error("lookup of unknown medication should report not found")
	}
}

func TestEveryConditionHasAllThreeTiers(t *testing.T) {
	reg := Default()
	for _, c := range reg.Conditions() {
		for _, tier := range Tiers {
			p, ok := c.Protocols[tier]
			if !ok {
				t.Errorf("condition %s missing tier %s", c.ID, tier)
				continue
			}
			if p.Tier != tier {
				t.Errorf("condition %s tier %s protocol labeled %s", c.ID, tier, p.Tier)
			}
			if len(p.Medications) == 0 {
				t.Errorf("condition %s tier %s has no medications", c.ID, tier)
			}
			if p.FollowUpDays <= 0 {
				t.Errorf("condition %s tier %s has no follow-up interval", c.ID, tier)
			}
		}
	}
}

func TestEveryProtocolMedicationResolves(t *testing.T) {
	reg := Default()
	for _, c := range reg.Conditions() {
		for tier, p := range c.Protocols {
			for _, d := range p.Medications {
				if _, ok := reg.Medication(d.MedicationID); !ok {
					t.Errorf("condition %s tier %s references unknown medication %s", c.ID, tier, d.MedicationID)
				}
			}
		}
	}
}

func TestSearchMedications(t *testing.T) {
	reg := Default()

	hits := reg.SearchMedications("AMOX")
	if len(hits) < 2 {
		t.Errorf("search AMOX returned %d hits, want at least amoxicillin and amoxiclav", len(hits))
	}

	if hits := reg.SearchMedications("zzz-nothing"); len(hits) != 0 {
		t.Errorf("search for nonsense returned %d hits", len(hits))
	}

	// Empty query returns the whole formulary.
	if got, want := len(reg.SearchMedications("")), len(reg.Medications()); got != want {
		t.Errorf("empty search returned %d, want %d", got, want)
	}
}

func TestSearchConditionsByCode(t *testing.T) {
	reg := Default()
	hits := reg.SearchConditions("dc-pulp")
	if len(hits) != 1 || hits[0].ID != "irreversible-pulpitis" {
		t.Errorf("search dc-pulp = %+v", hits)
	}
}

func TestCategoryListings(t *testing.T) {
	reg := Default()
	if len(reg.MedicationsByCategory("antibiotic")) == 0 {
		t.Error("no antibiotics in default formulary")
	}
	if len(reg.ConditionsByCategory("oral-surgery")) == 0 {
		t.Error("no oral-surgery conditions in default catalog")
	}
}

func TestProtocolLookup(t *testing.T) {
	reg := Default()
	p, ok := reg.Protocol("periapical-abscess", TierStandard)
	if !ok {
		t.Fatal("standard abscess protocol missing")
	}
	if p.Tier != TierStandard {
		t.Errorf("tier = %s", p.Tier)
	}
	if _, ok := reg.Protocol("periapical-abscess", Tier("luxury")); ok {
		t.Error("unknown tier should report not found")
	}
	if _, ok := reg.Protocol("no-such-condition", TierBasic); ok {
		t.Error("unknown condition should report not found")
	}
}

func TestRegistryCopiesInput(t *testing.T) {
	meds := []Medication{{ID: "m1", GenericName: "One"}}
	reg := NewRegistry(meds, nil)
	meds[0].GenericName = "Mutated"
	m, _ := reg.Medication("m1")
	if m.GenericName != "One" {
		t.Error("registry shares backing array with caller")
	}
}
