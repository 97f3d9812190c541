package component

import (
	"math/rand/v2"

	"github.com/mesh-intelligence/veneer/pkg/types"
)

// Processing status reported by Process.
const StatusProcessed = "processed"

// Analyzer produces confidence-scored reports. Confidence values are drawn
// from the configured random source, uniform in [0, 1).
type Analyzer struct {
	rng *rand.Rand
}

// NewAnalyzer creates an Analyzer with an auto-seeded random source.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewAnalyzerWithSource creates an Analyzer drawing confidence values from
// src. Used by callers that need reproducible reports.
func NewAnalyzerWithSource(src rand.Source) *Analyzer {
	return &Analyzer{
		rng: rand.New(src),
	}
}

// Analyze returns an analysis with empty goal and pattern sets and a fresh
// confidence value.
func (a *Analyzer) Analyze() types.Analysis {
	return types.Analysis{
		Goals:      []string{},
		Patterns:   []string{},
		Confidence: a.rng.Float64(),
	}
}

// Synthesize returns the synthesis marker.
func (a *Analyzer) Synthesize() types.Synthesis {
	return types.Synthesis{Synthesized: true}
}

// Recommend returns a recommendation with empty pattern and recommendation
// sets and a fresh confidence value.
func (a *Analyzer) Recommend() types.Recommendation {
	return types.Recommendation{
		Confidence:      a.rng.Float64(),
		Patterns:        []string{},
		Recommendations: []string{},
	}
}

// Process acknowledges the inputs and returns a processed report. Results is
// always a non-nil empty slice; inputs are not retained.
func (a *Analyzer) Process(inputs []any) types.ProcessReport {
	return types.ProcessReport{
		Status:  StatusProcessed,
		Results: []any{},
	}
}
