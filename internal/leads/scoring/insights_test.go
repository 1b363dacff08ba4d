package scoring

import (
	"slices"
	"testing"

	"directory_backend/internal/directory"
)

func TestGenerateLeadInsightsStrongLead(t *testing.T) {
	got := GenerateLeadInsightsAt(fullContact(), fixedNow)

	wantStrengths := []string{"Senior decision maker", "Confirmed decision maker", "Large company", "Complete contact information"}
	if !slices.Equal(got.Strengths, wantStrengths) {
		t.Fatalf("strengths = %v, want %v", got.Strengths, wantStrengths)
	}
	if len(got.Weaknesses) != 0 || len(got.Recommendations) != 0 {
		t.Fatalf("expected no weaknesses or recommendations, got %v / %v", got.Weaknesses, got.Recommendations)
	}
	if got.Tier.Tier != TierHot || got.Priority.Level != PriorityUrgent {
		t.Fatalf("unexpected tier/priority: %s/%s", got.Tier.Tier, got.Priority.Level)
	}
}

func TestGenerateLeadInsightsEmptyLead(t *testing.T) {
	got := GenerateLeadInsightsAt(directory.ContactWithCompany{}, fixedNow)

	if len(got.Strengths) != 0 {
		t.Fatalf("expected no strengths, got %v", got.Strengths)
	}
	wantWeaknesses := []string{"Incomplete contact information", "No engagement history", "Unverified contact"}
	if !slices.Equal(got.Weaknesses, wantWeaknesses) {
		t.Fatalf("weaknesses = %v, want %v", got.Weaknesses, wantWeaknesses)
	}
	wantRecs := []string{
		"Research to find missing contact details",
		"Start with initial outreach via LinkedIn or email",
		"Identify and connect with decision makers",
		"Verify contact information before outreach",
	}
	if !slices.Equal(got.Recommendations, wantRecs) {
		t.Fatalf("recommendations = %v, want %v", got.Recommendations, wantRecs)
	}
}
