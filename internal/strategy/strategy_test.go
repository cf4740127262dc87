// internal/strategy/strategy_test.go
package strategy

import (
	"testing"

	"creator-match/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createInfluencer(followers int64, rate float64, niche, email string) models.CreatorProfile {
	return models.CreatorProfile{
		Followers:      followers,
		EngagementRate: rate,
		HasEngagement:  rate > 0,
		Niche:          niche,
		Email:          email,
	}
}

func riskCategories(risks []Risk) []string {
	out := make([]string, 0, len(risks))
	for _, r := range risks {
		out = append(out, r.Category)
	}
	return out
}

// ==========================
// Tier Classification Tests
// ==========================

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		followers int64
		expected  string
	}{
		{5_000_000, "celebrity"},
		{1_000_000, "celebrity"},
		{999_999, "macro"},
		{100_000, "macro"},
		{99_999, "micro"},
		{10_000, "micro"},
		{9_999, "nano"},
		{500, "nano"},
		{0, "nano"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyTier(tt.followers))
		})
	}
}

func TestTierDistribution(t *testing.T) {
	profiles := []models.CreatorProfile{
		createInfluencer(2_000_000, 1, "food", ""),
		createInfluencer(150_000, 3, "food", ""),
		createInfluencer(50_000, 5, "food", ""),
		createInfluencer(40_000, 5, "travel", ""),
		createInfluencer(2_000, 8, "travel", ""),
	}

	tiers := TierDistribution(profiles)

	assert.Len(t, tiers["celebrity"], 1)
	assert.Len(t, tiers["macro"], 1)
	assert.Len(t, tiers["micro"], 2)
	assert.Len(t, tiers["nano"], 1)
}

func TestTierDistribution_EmptyTiersPresent(t *testing.T) {
	tiers := TierDistribution(nil)

	for _, tier := range []string{"nano", "micro", "macro", "celebrity"} {
		assert.NotNil(t, tiers[tier])
		assert.Empty(t, tiers[tier])
	}
}

// ==========================
// Budget Allocation Tests
// ==========================

func TestAllocateBudget(t *testing.T) {
	t.Run("celebrity present takes the heavy split", func(t *testing.T) {
		tiers := TierDistribution([]models.CreatorProfile{
			createInfluencer(2_000_000, 1, "food", ""),
			createInfluencer(50_000, 5, "food", ""),
		})

		plan := AllocateBudget(1_000_000, tiers)

		assert.Equal(t, 40, plan.Allocation["celebrity"].Pct)
		assert.Equal(t, 400_000.0, plan.Allocation["celebrity"].Amount)
		assert.Equal(t, 25, plan.Allocation["macro"].Pct)
		assert.Equal(t, 20, plan.Allocation["micro"].Pct)
		assert.Equal(t, 10, plan.Allocation["nano"].Pct)
		assert.Equal(t, 5, plan.Allocation["contingency"].Pct)
	})

	t.Run("macro-led split without celebrities", func(t *testing.T) {
		tiers := TierDistribution([]models.CreatorProfile{
			createInfluencer(150_000, 3, "food", ""),
		})

		plan := AllocateBudget(200_000, tiers)

		assert.Equal(t, 35, plan.Allocation["macro"].Pct)
		assert.Equal(t, 70_000.0, plan.Allocation["macro"].Amount)
		assert.Equal(t, 35, plan.Allocation["micro"].Pct)
		assert.Equal(t, 20, plan.Allocation["nano"].Pct)
		assert.Equal(t, 10, plan.Allocation["contingency"].Pct)
	})

	t.Run("micro and nano only", func(t *testing.T) {
		tiers := TierDistribution([]models.CreatorProfile{
			createInfluencer(50_000, 5, "food", ""),
			createInfluencer(2_000, 8, "food", ""),
		})

		plan := AllocateBudget(100_000, tiers)

		assert.Equal(t, 45, plan.Allocation["micro"].Pct)
		assert.Equal(t, 40, plan.Allocation["nano"].Pct)
		assert.Equal(t, 15, plan.Allocation["contingency"].Pct)
	})

	t.Run("zero budget falls back to default", func(t *testing.T) {
		plan := AllocateBudget(0, TierDistribution(nil))

		assert.Equal(t, 300_000.0, plan.TotalBudget)
		assert.Equal(t, "INR", plan.Currency)
	})

	t.Run("cost reference always included", func(t *testing.T) {
		plan := AllocateBudget(100_000, TierDistribution(nil))

		assert.Contains(t, plan.CostPerTier, "nano")
		assert.Contains(t, plan.CostPerTier, "celebrity")
	})
}

// ==========================
// KPI Forecast Tests
// ==========================

func TestForecastKPIs(t *testing.T) {
	profiles := []models.CreatorProfile{
		createInfluencer(100_000, 4, "food", ""),
		createInfluencer(100_000, 0, "food", ""), // missing rate assumes 2
	}

	f := ForecastKPIs(profiles, 300_000)

	// reach = 200000 * 0.25 = 50000
	assert.Equal(t, int64(50_000), f.EstimatedReach)
	// impressions = 50000 * 2.5 = 125000
	assert.Equal(t, int64(125_000), f.EstimatedImpressions)
	// avg ER = (4 + 2) / 2 = 3
	assert.Equal(t, 3.0, f.AvgEngagementRate)
	// engagements = 50000 * 3 / 100 = 1500
	assert.Equal(t, int64(1_500), f.EstimatedEngagements)
	// clicks = 1500 * 0.15 = 225
	assert.Equal(t, int64(225), f.EstimatedClicks)
	// conversions = 225 * 0.03 = 6.75 -> 7
	assert.Equal(t, int64(7), f.EstimatedConversions)

	// CPM = 300000 / 125000 * 1000 = 2400
	assert.Equal(t, 2400.0, f.CPM)
	// CPE = 300000 / 1500 = 200
	assert.Equal(t, 200.0, f.CPE)
	// CPC = 300000 / 225 = 1333.33 -> 1333
	assert.Equal(t, 1333.0, f.CPC)
}

func TestForecastKPIs_EmptyPool(t *testing.T) {
	assert.Equal(t, KPIForecast{}, ForecastKPIs(nil, 300_000))
}

func TestForecastKPIs_NoBudgetSkipsCostMetrics(t *testing.T) {
	f := ForecastKPIs([]models.CreatorProfile{createInfluencer(100_000, 4, "food", "")}, 0)

	assert.Positive(t, f.EstimatedReach)
	assert.Zero(t, f.CPM)
	assert.Zero(t, f.CPE)
	assert.Zero(t, f.CPC)
}

// ==========================
// Risk Assessment Tests
// ==========================

func TestAssessRisks_ComplianceAlwaysFlagged(t *testing.T) {
	risks := AssessRisks(nil, 0)

	assert.Contains(t, riskCategories(risks), "Regulatory Compliance")
	assert.Len(t, risks, 1)
}

func TestAssessRisks_LowEngagementShare(t *testing.T) {
	profiles := []models.CreatorProfile{
		createInfluencer(50_000, 0.5, "food", "a@b.com"),
		createInfluencer(50_000, 0, "travel", "a@b.com"),
		createInfluencer(50_000, 5, "beauty", "a@b.com"),
	}

	risks := AssessRisks(profiles, 300_000)

	assert.Contains(t, riskCategories(risks), "Engagement Quality")
}

func TestAssessRisks_CelebrityOnSmallBudget(t *testing.T) {
	profiles := []models.CreatorProfile{
		createInfluencer(2_000_000, 2, "food", "a@b.com"),
	}

	t.Run("flagged under 500k", func(t *testing.T) {
		risks := AssessRisks(profiles, 300_000)
		assert.Contains(t, riskCategories(risks), "Budget Mismatch")
	})

	t.Run("not flagged at larger budgets", func(t *testing.T) {
		risks := AssessRisks(profiles, 800_000)
		assert.NotContains(t, riskCategories(risks), "Budget Mismatch")
	})
}

func TestAssessRisks_NicheConcentration(t *testing.T) {
	profiles := make([]models.CreatorProfile, 6)
	for i := range profiles {
		profiles[i] = createInfluencer(50_000, 4, "food", "a@b.com")
	}

	risks := AssessRisks(profiles, 300_000)

	assert.Contains(t, riskCategories(risks), "Niche Concentration")
}

func TestAssessRisks_MissingContacts(t *testing.T) {
	profiles := []models.CreatorProfile{
		createInfluencer(50_000, 4, "food", "a@b.com"),
		createInfluencer(50_000, 4, "travel", ""),
		createInfluencer(50_000, 4, "beauty", ""),
	}

	risks := AssessRisks(profiles, 300_000)

	assert.Contains(t, riskCategories(risks), "Outreach Feasibility")
}
