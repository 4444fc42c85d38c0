package license

import (
	"strings"

	"github.com/salonhub/salonhub/app/models"
)

func NormalizePlan(plan string) string {
	switch strings.ToLower(strings.TrimSpace(plan)) {
	case models.PlanStandard:
		return models.PlanStandard
	case models.PlanGold:
		return models.PlanGold
	case models.PlanPremium:
		return models.PlanPremium
	default:
		return models.PlanTrial
	}
}

func PlanRank(plan string) int {
	switch NormalizePlan(plan) {
	case models.PlanPremium:
		return 3
	case models.PlanGold:
		return 2
	case models.PlanStandard:
		return 1
	default:
		return 0
	}
}

func NormalizeInterval(interval string) string {
	switch strings.ToLower(strings.TrimSpace(interval)) {
	case models.PlanIntervalYear:
		return models.PlanIntervalYear
	default:
		return models.PlanIntervalMonth
	}
}

// BookingLimit returns the monthly booking quota for a plan; 0 means
// unlimited. The quota is stored on the license and reported to the client
// but no booking path consumes it.
func BookingLimit(plan string) int {
	switch NormalizePlan(plan) {
	case models.PlanStandard:
		return 200
	case models.PlanGold:
		return 1000
	default:
		return 0
	}
}

// WaitingListEnabled reports whether the plan includes the waiting list.
func WaitingListEnabled(plan string) bool {
	switch NormalizePlan(plan) {
	case models.PlanStandard:
		return false
	default:
		return true
	}
}

// ReportDepth returns the report detail level available to a plan.
func ReportDepth(plan string) int {
	switch NormalizePlan(plan) {
	case models.PlanPremium, models.PlanTrial:
		return 3
	case models.PlanGold:
		return 2
	default:
		return 1
	}
}

// ApplyPlanDefaults rewrites the license's quota and feature flags from the
// plan catalog. Used when an administrative update changes the plan.
func ApplyPlanDefaults(l *models.License) {
	l.Plan = NormalizePlan(l.Plan)
	l.Interval = NormalizeInterval(l.Interval)
	l.BookingLimit = BookingLimit(l.Plan)
	l.WaitingListEnabled = WaitingListEnabled(l.Plan)
	l.ReportDepth = ReportDepth(l.Plan)
}
