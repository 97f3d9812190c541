// Package component provides the fixed-shape report components: a Deployer
// with a monotonic wave counter and an Analyzer producing confidence-scored
// reports.
// Implements: prd004-components R1 (Deployer), R2 (Analyzer).
package component

import (
	"sync"

	"github.com/mesh-intelligence/veneer/pkg/types"
)

// Deployment status reported by Deploy.
const StatusDeployed = "deployed"

// Deployer tracks a monotonic deployment wave counter. Safe for concurrent
// use.
type Deployer struct {
	mu   sync.Mutex
	wave int
}

// NewDeployer creates a Deployer with its wave counter at zero; the first
// Deploy reports wave 1.
func NewDeployer() *Deployer {
	return &Deployer{}
}

// Deploy increments the wave counter and returns a report for the new wave.
// Results is always a non-nil empty slice.
func (d *Deployer) Deploy() types.DeployReport {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wave++
	return types.DeployReport{
		Wave:    d.wave,
		Status:  StatusDeployed,
		Results: []any{},
	}
}

// Wave returns the number of completed deployments.
func (d *Deployer) Wave() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wave
}

// Validate reports the component self-check. Checks is always a non-nil
// empty slice.
func (d *Deployer) Validate() types.ValidationReport {
	return types.ValidationReport{
		Valid:  true,
		Checks: []string{},
	}
}
