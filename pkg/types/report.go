package types

// Fixed-shape component reports. Collection fields are always non-nil so the
// JSON rendering is [] rather than null.
// Implements: prd004-components R1.

// DeployReport is the result of one Deployer.Deploy call.
type DeployReport struct {
	Wave    int    `json:"wave"`    // Deployment counter, starting at 1.
	Status  string `json:"status"`  // Always "deployed".
	Results []any  `json:"results"` // Always empty; reserved shape.
}

// ValidationReport is the result of a component self-check.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Checks []string `json:"checks"`
}

// Analysis is the result of one Analyzer.Analyze call.
type Analysis struct {
	Goals      []string `json:"goals"`
	Patterns   []string `json:"patterns"`
	Confidence float64  `json:"confidence"` // In [0, 1).
}

// Synthesis is the result of one Analyzer.Synthesize call.
type Synthesis struct {
	Synthesized bool `json:"synthesized"`
}

// Recommendation is the result of one Analyzer.Recommend call.
type Recommendation struct {
	Confidence      float64  `json:"confidence"` // In [0, 1).
	Patterns        []string `json:"patterns"`
	Recommendations []string `json:"recommendations"`
}

// ProcessReport is the result of one Analyzer.Process call.
type ProcessReport struct {
	Status  string `json:"status"` // Always "processed".
	Results []any  `json:"results"`
}
