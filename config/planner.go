package config

// PlannerConfig tunes report output.
type PlannerConfig struct {
	// TopBottlenecks caps the ranked pressure list in the report.
	TopBottlenecks int `json:"top_bottlenecks"`
	// DistanceDecimals fixes the precision of proximity strings.
	DistanceDecimals int `json:"distance_decimals"`
}

// SetDefaults applies sane defaults.
func (c *PlannerConfig) SetDefaults() {
	if c.TopBottlenecks == 0 {
		c.TopBottlenecks = 5
	}
	if c.DistanceDecimals == 0 {
		c.DistanceDecimals = 1
	}
}
