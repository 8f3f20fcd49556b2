package types

// TopTenantsLimit is how many entries "top paying tenants" style lists
// return after the descending sort. Fixed by product, changed in one place.
const TopTenantsLimit = 10

// Risk band thresholds over the 0..100 risk score.
const (
	RiskScoreHighThreshold   = 70
	RiskScoreMediumThreshold = 40
)

// RiskLevel classifies a tenant's risk score into triage bands. Tenants
// below the medium threshold carry no band and appear in neither list.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelNone   RiskLevel = ""
)
