package domain

import "time"

// Profile holds per-user account data consulted by plan gating.
type Profile struct {
	UserID      string
	FullName    string
	Plan        Plan
	TrialEndsAt *time.Time
}

// ProjectQuota returns the number of projects the profile's plan allows,
// or -1 for unlimited.
func (p *Profile) ProjectQuota() int {
	if p.Plan == PlanFree {
		return FreeProjectLimit
	}
	return -1
}
