package scoring

import (
	"time"

	"directory_backend/internal/directory"
)

// Insights explains a lead score in plain language.
type Insights struct {
	Score           LeadScore `json:"score"`
	Tier            Tier      `json:"tier"`
	Priority        Priority  `json:"priority"`
	Recommendations []string  `json:"recommendations"`
	Strengths       []string  `json:"strengths"`
	Weaknesses      []string  `json:"weaknesses"`
}

// GenerateLeadInsights scores c and derives strengths, weaknesses and recommendations.
func GenerateLeadInsights(c directory.ContactWithCompany) Insights {
	return GenerateLeadInsightsAt(c, time.Now())
}

// GenerateLeadInsightsAt is GenerateLeadInsights with an explicit clock.
// Every rule is checked independently.
func GenerateLeadInsightsAt(c directory.ContactWithCompany, now time.Time) Insights {
	score := CalculateLeadScoreAt(c, now)
	b := score.Breakdown

	strengths := []string{}
	weaknesses := []string{}
	recommendations := []string{}

	if b.Seniority >= 20 {
		strengths = append(strengths, "Senior decision maker")
	}
	if b.DecisionMaker > 0 {
		strengths = append(strengths, "Confirmed decision maker")
	}
	if b.CompanySize >= 10 {
		strengths = append(strengths, "Large company")
	}
	if b.ContactInfo >= 15 {
		strengths = append(strengths, "Complete contact information")
	}

	if b.ContactInfo < 10 {
		weaknesses = append(weaknesses, "Incomplete contact information")
		recommendations = append(recommendations, "Research to find missing contact details")
	}
	if b.Engagement == 0 {
		weaknesses = append(weaknesses, "No engagement history")
		recommendations = append(recommendations, "Start with initial outreach via LinkedIn or email")
	}
	if !c.IsDecisionMaker {
		recommendations = append(recommendations, "Identify and connect with decision makers")
	}
	if b.Verification == 0 {
		weaknesses = append(weaknesses, "Unverified contact")
		recommendations = append(recommendations, "Verify contact information before outreach")
	}

	return Insights{
		Score:           score,
		Tier:            GetLeadTier(score.Total),
		Priority:        priorityFor(c, score),
		Recommendations: recommendations,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
	}
}
