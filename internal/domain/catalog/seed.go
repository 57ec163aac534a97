package catalog

// defaultMedications is the built-in dental formulary. Tags carry the
// normalized ingredient/class vocabulary the safety checker matches against:
// penicillin, nsaid, corticosteroid, paracetamol, aspirin, adrenaline,
// metronidazole, opioid.
func defaultMedications() []Medication {
	return []Medication{
		{
			ID: "amoxicillin-500", GenericName: "Amoxicillin", BrandName: "Amoxil",
			Strength: "500mg", Form: "capsule", Route: "oral", Category: "antibiotic",
			Price: 12, Manufacturer: "GSK",
			Contraindications: []string{"penicillin allergy"},
			Pregnancy:         SafetySafe, Breastfeeding: SafetySafe,
			Interactions: []string{"methotrexate", "warfarin"},
			Tags:         []string{"amoxicillin", "penicillin", "antibiotic"},
		},
		{
			ID: "amoxiclav-625", GenericName: "Amoxicillin + Clavulanate", BrandName: "Augmentin",
			Strength: "625mg", Form: "tablet", Route: "oral", Category: "antibiotic",
			Price: 38, Manufacturer: "GSK",
			Contraindications: []string{"penicillin allergy", "previous amoxiclav jaundice"},
			Pregnancy:         SafetySafe, Breastfeeding: SafetySafe,
			Interactions: []string{"methotrexate", "warfarin"},
			Tags:         []string{"amoxicillin", "clavulanate", "penicillin", "antibiotic"},
		},
		{
			ID: "metronidazole-400", GenericName: "Metronidazole", BrandName: "Flagyl",
			Strength: "400mg", Form: "tablet", Route: "oral", Category: "antibiotic",
			Price: 8, Manufacturer: "Abbott",
			Contraindications: []string{"chronic liver disease", "alcohol dependence"},
			Pregnancy:         SafetyCaution, Breastfeeding: SafetyCaution,
			Interactions: []string{"warfarin", "alcohol", "lithium"},
			Tags:         []string{"metronidazole", "nitroimidazole", "antibiotic"},
		},
		{
			ID: "clindamycin-300", GenericName: "Clindamycin", BrandName: "Dalacin C",
			Strength: "300mg", Form: "capsule", Route: "oral", Category: "antibiotic",
			Price: 45, Manufacturer: "Pfizer",
			Contraindications: []string{"previous antibiotic colitis"},
			Pregnancy:         SafetySafe, Breastfeeding: SafetyCaution,
			Interactions: []string{"erythromycin", "neuromuscular blocker"},
			Tags:         []string{"clindamycin", "lincosamide", "antibiotic"},
		},
		{
			ID: "azithromycin-500", GenericName: "Azithromycin", BrandName: "Zithromax",
			Strength: "500mg", Form: "tablet", Route: "oral", Category: "antibiotic",
			Price: 30, Manufacturer: "Pfizer",
			Contraindications: []string{"severe liver impairment"},
			Pregnancy:         SafetySafe, Breastfeeding: SafetySafe,
			Interactions: []string{"warfarin", "antacid", "digoxin"},
			Tags:         []string{"azithromycin", "macrolide", "antibiotic"},
		},
		{
			ID: "ibuprofen-400", GenericName: "Ibuprofen", BrandName: "Brufen",
			Strength: "400mg", Form: "tablet", Route: "oral", Category: "analgesic",
			Price: 6, Manufacturer: "Abbott",
			Contraindications: []string{"peptic ulcer", "severe kidney disease", "aspirin-sensitive asthma"},
			Pregnancy:         SafetyAvoid, Breastfeeding: SafetyCaution,
			Interactions: []string{"warfarin", "anticoagulant", "lithium", "methotrexate", "antihypertensive"},
			Tags:         []string{"ibuprofen", "nsaid", "analgesic"},
		},
		{
			ID: "diclofenac-50", GenericName: "Diclofenac", BrandName: "Voveran",
			Strength: "50mg", Form: "tablet", Route: "oral", Category: "analgesic",
			Price: 7, Manufacturer: "Novartis",
			Contraindications: []string{"peptic ulcer", "severe kidney disease", "ischaemic heart disease"},
			Pregnancy:         SafetyAvoid, Breastfeeding: SafetyCaution,
			Interactions: []string{"warfarin", "anticoagulant", "lithium", "methotrexate"},
			Tags:         []string{"diclofenac", "nsaid", "analgesic"},
		},
		{
			ID: "aspirin-300", GenericName: "Aspirin", BrandName: "Disprin",
			Strength: "300mg", Form: "tablet", Route: "oral", Category: "analgesic",
			Price: 4, Manufacturer: "Reckitt",
			Contraindications: []string{"peptic ulcer", "bleeding disorder", "children under 16"},
			Pregnancy:         SafetyAvoid, Breastfeeding: SafetyAvoid,
			Interactions: []string{"warfarin", "anticoagulant", "methotrexate"},
			Tags:         []string{"aspirin", "salicylate", "nsaid", "analgesic"},
		},
		{
			ID: "paracetamol-500", GenericName: "Paracetamol", BrandName: "Crocin",
			Strength: "500mg", Form: "tablet", Route: "oral", Category: "analgesic",
			Price: 3, Manufacturer: "GSK",
			Contraindications: []string{},
			Pregnancy:         SafetySafe, Breastfeeding: SafetySafe,
			Interactions: []string{"warfarin"},
			Tags:         []string{"paracetamol", "acetaminophen", "analgesic"},
		},
		{
			ID: "tramadol-50", GenericName: "Tramadol", BrandName: "Ultracet",
			Strength: "50mg", Form: "capsule", Route: "oral", Category: "analgesic",
			Price: 15, Manufacturer: "Janssen",
			Contraindications: []string{"epilepsy", "maoi therapy"},
			Pregnancy:         SafetyCaution, Breastfeeding: SafetyAvoid,
			Interactions: []string{"ssri", "maoi", "carbamazepine"},
			Tags:         []string{"tramadol", "opioid", "analgesic"},
		},
		{
			ID: "prednisolone-10", GenericName: "Prednisolone", BrandName: "Wysolone",
			Strength: "10mg", Form: "tablet", Route: "oral", Category: "corticosteroid",
			Price: 9, Manufacturer: "Wyeth",
			Contraindications: []string{"systemic fungal infection", "uncontrolled diabetes"},
			Pregnancy:         SafetyCaution, Breastfeeding: SafetyCaution,
			Interactions: []string{"nsaid", "warfarin", "antidiabetic"},
			Tags:         []string{"prednisolone", "corticosteroid"},
		},
		{
			ID: "dexamethasone-4", GenericName: "Dexamethasone", BrandName: "Decadron",
			Strength: "4mg", Form: "injection", Route: "intramuscular", Category: "corticosteroid",
			Price: 22, Manufacturer: "MSD",
			Contraindications: []string{"systemic fungal infection"},
			Pregnancy:         SafetyCaution, Breastfeeding: SafetyCaution,
			Interactions: []string{"nsaid", "warfarin", "antidiabetic"},
			Tags:         []string{"dexamethasone", "corticosteroid"},
		},
		{
			ID: "chlorhexidine-mw", GenericName: "Chlorhexidine Gluconate", BrandName: "Hexidine",
			Strength: "0.2%", Form: "mouthwash", Route: "topical", Category: "antiseptic",
			Price: 11, Manufacturer: "ICPA",
			Contraindications: []string{},
			Pregnancy:         SafetySafe, Breastfeeding: SafetySafe,
			Interactions: []string{},
			Tags:         []string{"chlorhexidine", "antiseptic"},
		},
		{
			ID: "lignocaine-adrenaline", GenericName: "Lignocaine + Adrenaline", BrandName: "Xylocaine",
			Strength: "2% 1:80000", Form: "injection", Route: "local infiltration", Category: "anesthetic",
			Price: 18, Manufacturer: "AstraZeneca",
			Contraindications: []string{"amide anesthetic allergy"},
			Pregnancy:         SafetySafe, Breastfeeding: SafetySafe,
			Interactions: []string{"beta-blocker", "tricyclic antidepressant"},
			Tags:         []string{"lignocaine", "lidocaine", "adrenaline", "anesthetic"},
		},
	}
}

func defaultConditions() []DentalCondition {
	return []DentalCondition{
		{
			ID: "irreversible-pulpitis", Code: "DC-PULP", Name: "Irreversible Pulpitis",
			Category:    "endodontic",
			Description: "Severe, lingering tooth pain from inflamed pulp; typically needs root canal treatment.",
			Protocols: map[Tier]TreatmentProtocol{
				TierPremium: {
					Tier: TierPremium,
					Medications: []DosageInstruction{
						{MedicationID: "amoxiclav-625", Dose: "625mg", Frequency: FreqBD, Timing: "after food", Duration: "5 days"},
						{MedicationID: "diclofenac-50", Dose: "50mg", Frequency: FreqBD, Timing: "after food", Duration: "3 days"},
						{MedicationID: "chlorhexidine-mw", Dose: "10ml rinse", Frequency: FreqBD, Timing: "after brushing", Duration: "7 days"},
					},
					Instructions:        []string{"Complete the full antibiotic course", "Schedule root canal treatment without delay"},
					Warnings:            []string{"Return immediately if facial swelling or fever develops"},
					FollowUpDays:        3,
					DietaryRestrictions: []string{"avoid hot liquids", "chew on the opposite side"},
				},
				TierStandard: {
					Tier: TierStandard,
					Medications: []DosageInstruction{
						{MedicationID: "amoxicillin-500", Dose: "500mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days"},
						{MedicationID: "ibuprofen-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "3 days"},
					},
					Instructions:        []string{"Complete the full antibiotic course", "Schedule root canal treatment"},
					Warnings:            []string{"Return immediately if facial swelling or fever develops"},
					FollowUpDays:        5,
					DietaryRestrictions: []string{"avoid hot liquids", "chew on the opposite side"},
				},
				TierBasic: {
					Tier: TierBasic,
					Medications: []DosageInstruction{
						{MedicationID: "amoxicillin-500", Dose: "500mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days"},
						{MedicationID: "paracetamol-500", Dose: "500mg", Frequency: FreqQID, Timing: "as needed for pain", Duration: "3 days"},
					},
					Instructions:        []string{"Complete the full antibiotic course"},
					Warnings:            []string{"Return immediately if facial swelling or fever develops"},
					FollowUpDays:        7,
					DietaryRestrictions: []string{"avoid hot liquids"},
				},
			},
		},
		{
			ID: "periapical-abscess", Code: "DC-ABSC", Name: "Periapical Abscess",
			Category:    "endodontic",
			Description: "Localized pus collection at the root apex with swelling and throbbing pain.",
			Protocols: map[Tier]TreatmentProtocol{
				TierPremium: {
					Tier: TierPremium,
					Medications: []DosageInstruction{
						{MedicationID: "amoxiclav-625", Dose: "625mg", Frequency: FreqBD, Timing: "after food", Duration: "5 days"},
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "diclofenac-50", Dose: "50mg", Frequency: FreqBD, Timing: "after food", Duration: "3 days"},
					},
					Instructions:        []string{"Drainage or extraction will be planned at review", "Complete both antibiotic courses"},
					Warnings:            []string{"Difficulty swallowing or breathing is an emergency"},
					FollowUpDays:        2,
					DietaryRestrictions: []string{"no alcohol", "soft diet", "plenty of fluids"},
				},
				TierStandard: {
					Tier: TierStandard,
					Medications: []DosageInstruction{
						{MedicationID: "amoxicillin-500", Dose: "500mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days"},
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "ibuprofen-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "3 days"},
					},
					Instructions:        []string{"Drainage or extraction will be planned at review"},
					Warnings:            []string{"Difficulty swallowing or breathing is an emergency"},
					FollowUpDays:        3,
					DietaryRestrictions: []string{"no alcohol", "soft diet"},
				},
				TierBasic: {
					Tier: TierBasic,
					Medications: []DosageInstruction{
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "paracetamol-500", Dose: "500mg", Frequency: FreqQID, Timing: "as needed for pain", Duration: "3 days"},
					},
					Instructions:        []string{"Drainage or extraction will be planned at review"},
					Warnings:            []string{"Difficulty swallowing or breathing is an emergency"},
					FollowUpDays:        3,
					DietaryRestrictions: []string{"no alcohol", "soft diet"},
				},
			},
		},
		{
			ID: "pericoronitis", Code: "DC-PERI", Name: "Pericoronitis",
			Category:    "oral-surgery",
			Description: "Inflamed gum flap over a partially erupted wisdom tooth.",
			Protocols: map[Tier]TreatmentProtocol{
				TierPremium: {
					Tier: TierPremium,
					Medications: []DosageInstruction{
						{MedicationID: "amoxiclav-625", Dose: "625mg", Frequency: FreqBD, Timing: "after food", Duration: "5 days"},
						{MedicationID: "diclofenac-50", Dose: "50mg", Frequency: FreqBD, Timing: "after food", Duration: "3 days"},
						{MedicationID: "chlorhexidine-mw", Dose: "10ml rinse", Frequency: FreqTDS, Timing: "after meals", Duration: "7 days"},
					},
					Instructions:        []string{"Warm saline rinses after every meal", "Wisdom tooth assessment at review"},
					Warnings:            []string{"Limited mouth opening with fever needs urgent review"},
					FollowUpDays:        5,
					DietaryRestrictions: []string{"soft diet"},
				},
				TierStandard: {
					Tier: TierStandard,
					Medications: []DosageInstruction{
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "ibuprofen-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "3 days"},
						{MedicationID: "chlorhexidine-mw", Dose: "10ml rinse", Frequency: FreqBD, Timing: "after brushing", Duration: "7 days"},
					},
					Instructions:        []string{"Warm saline rinses after every meal"},
					Warnings:            []string{"Limited mouth opening with fever needs urgent review"},
					FollowUpDays:        5,
					DietaryRestrictions: []string{"no alcohol", "soft diet"},
				},
				TierBasic: {
					Tier: TierBasic,
					Medications: []DosageInstruction{
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "paracetamol-500", Dose: "500mg", Frequency: FreqQID, Timing: "as needed for pain", Duration: "3 days"},
					},
					Instructions:        []string{"Warm saline rinses after every meal"},
					Warnings:            []string{"Limited mouth opening with fever needs urgent review"},
					FollowUpDays:        7,
					DietaryRestrictions: []string{"no alcohol"},
				},
			},
		},
		{
			ID: "dry-socket", Code: "DC-ALVO", Name: "Alveolar Osteitis (Dry Socket)",
			Category:    "oral-surgery",
			Description: "Painful exposed bone after clot loss in an extraction socket.",
			Protocols: map[Tier]TreatmentProtocol{
				TierPremium: {
					Tier: TierPremium,
					Medications: []DosageInstruction{
						{MedicationID: "tramadol-50", Dose: "50mg", Frequency: FreqBD, Timing: "after food", Duration: "3 days", SpecialInstructions: "May cause drowsiness; avoid driving"},
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "chlorhexidine-mw", Dose: "10ml gentle rinse", Frequency: FreqBD, Timing: "after meals", Duration: "7 days"},
					},
					Instructions:        []string{"Socket dressing will be placed and changed at review", "Do not smoke"},
					Warnings:            []string{"Worsening pain after 48 hours needs review"},
					FollowUpDays:        2,
					DietaryRestrictions: []string{"no alcohol", "soft diet", "avoid hot liquids", "no smoking"},
				},
				TierStandard: {
					Tier: TierStandard,
					Medications: []DosageInstruction{
						{MedicationID: "ibuprofen-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "3 days"},
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days", SpecialInstructions: "Strictly no alcohol during the course"},
					},
					Instructions:        []string{"Socket dressing will be placed at review", "Do not smoke"},
					Warnings:            []string{"Worsening pain after 48 hours needs review"},
					FollowUpDays:        2,
					DietaryRestrictions: []string{"no alcohol", "soft diet", "no smoking"},
				},
				TierBasic: {
					Tier: TierBasic,
					Medications: []DosageInstruction{
						{MedicationID: "paracetamol-500", Dose: "1000mg", Frequency: FreqQID, Timing: "as needed for pain", Duration: "3 days"},
					},
					Instructions:        []string{"Warm saline rinses", "Do not smoke"},
					Warnings:            []string{"Worsening pain after 48 hours needs review"},
					FollowUpDays:        3,
					DietaryRestrictions: []string{"soft diet", "no smoking"},
				},
			},
		},
		{
			ID: "chronic-periodontitis", Code: "DC-PERIO", Name: "Chronic Periodontitis",
			Category:    "periodontic",
			Description: "Progressive gum and bone loss with pocketing and mobility.",
			Protocols: map[Tier]TreatmentProtocol{
				TierPremium: {
					Tier: TierPremium,
					Medications: []DosageInstruction{
						{MedicationID: "amoxicillin-500", Dose: "500mg", Frequency: FreqTDS, Timing: "after food", Duration: "7 days"},
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "7 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "chlorhexidine-mw", Dose: "10ml rinse", Frequency: FreqBD, Timing: "after brushing", Duration: "14 days"},
					},
					Instructions:        []string{"Full-mouth scaling and root planing will be scheduled", "Use a soft brush twice daily"},
					Warnings:            []string{"Bleeding that does not stop with pressure needs review"},
					FollowUpDays:        14,
					DietaryRestrictions: []string{"no alcohol", "reduce sugary snacks"},
				},
				TierStandard: {
					Tier: TierStandard,
					Medications: []DosageInstruction{
						{MedicationID: "metronidazole-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "7 days", SpecialInstructions: "Strictly no alcohol during the course"},
						{MedicationID: "chlorhexidine-mw", Dose: "10ml rinse", Frequency: FreqBD, Timing: "after brushing", Duration: "14 days"},
					},
					Instructions:        []string{"Scaling will be scheduled", "Use a soft brush twice daily"},
					Warnings:            []string{"Bleeding that does not stop with pressure needs review"},
					FollowUpDays:        14,
					DietaryRestrictions: []string{"no alcohol", "reduce sugary snacks"},
				},
				TierBasic: {
					Tier: TierBasic,
					Medications: []DosageInstruction{
						{MedicationID: "chlorhexidine-mw", Dose: "10ml rinse", Frequency: FreqBD, Timing: "after brushing", Duration: "14 days"},
					},
					Instructions:        []string{"Scaling will be scheduled", "Use a soft brush twice daily"},
					Warnings:            []string{},
					FollowUpDays:        21,
					DietaryRestrictions: []string{"reduce sugary snacks"},
				},
			},
		},
		{
			ID: "post-extraction", Code: "DC-EXTR", Name: "Post-Extraction Care",
			Category:    "oral-surgery",
			Description: "Routine medication after an uncomplicated tooth extraction.",
			Protocols: map[Tier]TreatmentProtocol{
				TierPremium: {
					Tier: TierPremium,
					Medications: []DosageInstruction{
						{MedicationID: "amoxiclav-625", Dose: "625mg", Frequency: FreqBD, Timing: "after food", Duration: "5 days"},
						{MedicationID: "diclofenac-50", Dose: "50mg", Frequency: FreqBD, Timing: "after food", Duration: "3 days"},
						{MedicationID: "prednisolone-10", Dose: "10mg", Frequency: FreqOD, Timing: "morning after food", Duration: "3 days", SpecialInstructions: "For swelling control after surgical extraction"},
					},
					Instructions:        []string{"Bite on the gauze for 30 minutes", "No rinsing or spitting for 24 hours", "Cold compress for swelling"},
					Warnings:            []string{"Bleeding beyond 24 hours needs review"},
					FollowUpDays:        7,
					DietaryRestrictions: []string{"soft diet", "avoid hot liquids", "no smoking", "no straws"},
				},
				TierStandard: {
					Tier: TierStandard,
					Medications: []DosageInstruction{
						{MedicationID: "amoxicillin-500", Dose: "500mg", Frequency: FreqTDS, Timing: "after food", Duration: "5 days"},
						{MedicationID: "ibuprofen-400", Dose: "400mg", Frequency: FreqTDS, Timing: "after food", Duration: "3 days"},
					},
					Instructions:        []string{"Bite on the gauze for 30 minutes", "No rinsing or spitting for 24 hours"},
					Warnings:            []string{"Bleeding beyond 24 hours needs review"},
					FollowUpDays:        7,
					DietaryRestrictions: []string{"soft diet", "avoid hot liquids", "no smoking"},
				},
				TierBasic: {
					Tier: TierBasic,
					Medications: []DosageInstruction{
						{MedicationID: "paracetamol-500", Dose: "500mg", Frequency: FreqQID, Timing: "as needed for pain", Duration: "3 days"},
					},
					Instructions:        []string{"Bite on the gauze for 30 minutes", "No rinsing or spitting for 24 hours"},
					Warnings:            []string{"Bleeding beyond 24 hours needs review"},
					FollowUpDays:        7,
					DietaryRestrictions: []string{"soft diet", "avoid hot liquids"},
				},
			},
		},
	}
}
