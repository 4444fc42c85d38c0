package license

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salonhub/salonhub/app/models"
)

func TestNormalizePlan(t *testing.T) {
	assert.Equal(t, models.PlanStandard, NormalizePlan("standard"))
	assert.Equal(t, models.PlanGold, NormalizePlan(" Gold "))
	assert.Equal(t, models.PlanPremium, NormalizePlan("PREMIUM"))
	assert.Equal(t, models.PlanTrial, NormalizePlan("trial"))
	assert.Equal(t, models.PlanTrial, NormalizePlan("enterprise"))
	assert.Equal(t, models.PlanTrial, NormalizePlan(""))
}

func TestPlanRank(t *testing.T) {
	assert.Greater(t, PlanRank(models.PlanPremium), PlanRank(models.PlanGold))
	assert.Greater(t, PlanRank(models.PlanGold), PlanRank(models.PlanStandard))
	assert.Greater(t, PlanRank(models.PlanStandard), PlanRank(models.PlanTrial))
}

func TestNormalizeInterval(t *testing.T) {
	assert.Equal(t, models.PlanIntervalYear, NormalizeInterval("year"))
	assert.Equal(t, models.PlanIntervalMonth, NormalizeInterval("month"))
	assert.Equal(t, models.PlanIntervalMonth, NormalizeInterval("weekly"))
}

func TestPlanCatalog(t *testing.T) {
	tests := []struct {
		plan         string
		bookingLimit int
		waitingList  bool
		reportDepth  int
	}{
		{models.PlanTrial, 0, true, 3},
		{models.PlanStandard, 200, false, 1},
		{models.PlanGold, 1000, true, 2},
		{models.PlanPremium, 0, true, 3},
	}
	for _, tc := range tests {
		t.Run(tc.plan, func(t *testing.T) {
			assert.Equal(t, tc.bookingLimit, BookingLimit(tc.plan))
			assert.Equal(t, tc.waitingList, WaitingListEnabled(tc.plan))
			assert.Equal(t, tc.reportDepth, ReportDepth(tc.plan))
		})
	}
}

func TestApplyPlanDefaults(t *testing.T) {
	l := &models.License{Plan: "GOLD", Interval: "YEAR", BookingLimit: 5, ReportDepth: 9}
	ApplyPlanDefaults(l)

	assert.Equal(t, models.PlanGold, l.Plan)
	assert.Equal(t, models.PlanIntervalYear, l.Interval)
	assert.Equal(t, 1000, l.BookingLimit)
	assert.True(t, l.WaitingListEnabled)
	assert.Equal(t, 2, l.ReportDepth)
}
