package scenario

func ptr(v float64) *float64 { return &v }

// Demo returns a small built-in scenario for smoke runs when no scenario
// file is given.
func Demo() *Scenario {
	return &Scenario{
		Name:        "demo-week",
		Description: "Four staff, five clients, one window specialist.",
		Staff: []StaffDef{
			{
				ID: "S1", Name: "Avery Lin",
				CleansWindows: true,
				Days:          Days{Monday: "AN", Tuesday: "AN", Wednesday: "A", Thursday: "AN", Friday: "A"},
				Latitude:      ptr(47.6097), Longitude: ptr(-122.3331),
			},
			{
				ID: "S2", Name: "Jordan Pike",
				PetAllergy: true,
				Days:       Days{Monday: "ANP", Tuesday: "NP", Wednesday: "NP", Thursday: "P", Friday: "ANP"},
				Latitude:   ptr(47.6205), Longitude: ptr(-122.3493),
			},
			{
				ID: "S3", Name: "Sam Ortega",
				LimitedMobility: true,
				Days:            Days{Monday: "A", Tuesday: "A", Wednesday: "AN", Thursday: "AN", Friday: "N"},
				Latitude:        ptr(47.6740), Longitude: ptr(-122.1215),
			},
			{
				// Address never geocoded; still counts toward capacity.
				ID: "S4", Name: "Riley Chen",
				Days: Days{Monday: "P", Tuesday: "ANP", Wednesday: "P", Thursday: "NP", Friday: "P"},
			},
		},
		Clients: []ClientDef{
			{
				ID: "C1", Name: "Harborview Loft",
				Pets: true, Windows: true,
				EstimatedHours: ptr(2.5),
				Days:           Days{Monday: "A", Wednesday: "A", Friday: "A"},
				Latitude:       ptr(47.6038), Longitude: ptr(-122.3301),
			},
			{
				ID: "C2", Name: "Maple Court Duplex",
				Stairs:         true,
				EstimatedHours: ptr(3),
				Days:           Days{Tuesday: "AN", Thursday: "AN"},
				Latitude:       ptr(47.6529), Longitude: ptr(-122.3290),
			},
			{
				ID: "C3", Name: "Cedar Ridge House",
				Pets: true, Stairs: true,
				EstimatedHours: ptr(4),
				Days:           Days{Monday: "ANP", Friday: "ANP"},
				Latitude:       ptr(47.6819), Longitude: ptr(-122.2079),
			},
			{
				ID: "C4", Name: "Pioneer Square Studio",
				Days:     Days{Wednesday: "N", Thursday: "N"},
				Latitude: ptr(47.6015), Longitude: ptr(-122.3343),
			},
			{
				ID: "C5", Name: "Queen Anne Victorian",
				Windows: true, Stairs: true,
				EstimatedHours: ptr(5),
				Days:           Days{Tuesday: "P", Thursday: "P"},
				Latitude:       ptr(47.6371), Longitude: ptr(-122.3570),
			},
		},
	}
}
