package scoring

import (
	"time"

	"directory_backend/internal/directory"
)

// TierLevel classifies a total score.
type TierLevel string

const (
	TierHot  TierLevel = "hot"
	TierWarm TierLevel = "warm"
	TierCold TierLevel = "cold"
)

// Tier is a display classification of a score.
type Tier struct {
	Tier  TierLevel `json:"tier"`
	Label string    `json:"label"`
	Color string    `json:"color"`
}

// PriorityLevel is the outreach priority of a contact.
type PriorityLevel string

const (
	PriorityUrgent PriorityLevel = "urgent"
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// Priority is a display classification of a contact's outreach priority.
type Priority struct {
	Level PriorityLevel `json:"level"`
	Label string        `json:"label"`
	Color string        `json:"color"`
}

// GetLeadTier maps a total score to hot (>= 80), warm (>= 60) or cold.
func GetLeadTier(total int) Tier {
	switch {
	case total >= 80:
		return Tier{Tier: TierHot, Label: "Hot Lead", Color: "red"}
	case total >= 60:
		return Tier{Tier: TierWarm, Label: "Warm Lead", Color: "orange"}
	default:
		return Tier{Tier: TierCold, Label: "Cold Lead", Color: "blue"}
	}
}

// GetContactPriority scores c and classifies its outreach priority.
func GetContactPriority(c directory.ContactWithCompany) Priority {
	return GetContactPriorityAt(c, time.Now())
}

// GetContactPriorityAt is GetContactPriority with an explicit clock.
func GetContactPriorityAt(c directory.ContactWithCompany, now time.Time) Priority {
	return priorityFor(c, CalculateLeadScoreAt(c, now))
}

// priorityFor checks the levels in order: urgent, high, medium, low.
func priorityFor(c directory.ContactWithCompany, score LeadScore) Priority {
	switch {
	case score.Total >= 85 && c.IsDecisionMaker:
		return Priority{Level: PriorityUrgent, Label: "Urgent", Color: "red"}
	case score.Total >= 70 || c.Seniority == directory.SeniorityCLevel:
		return Priority{Level: PriorityHigh, Label: "High Priority", Color: "orange"}
	case score.Total >= 50:
		return Priority{Level: PriorityMedium, Label: "Medium Priority", Color: "yellow"}
	default:
		return Priority{Level: PriorityLow, Label: "Low Priority", Color: "gray"}
	}
}
