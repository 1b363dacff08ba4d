package scoring

import (
	"math"
	"slices"
	"time"

	"directory_backend/internal/directory"
)

// DefaultTopLeadsLimit is the listing size callers use when none is requested.
const DefaultTopLeadsLimit = 10

// ScoredContact is a contact with its computed lead score attached.
type ScoredContact struct {
	directory.ContactWithCompany
	LeadScore LeadScore `json:"leadScore"`
}

// CalculateAverageLeadScore returns the rounded mean total across contacts, or 0 when empty.
func CalculateAverageLeadScore(contacts []directory.ContactWithCompany) int {
	return CalculateAverageLeadScoreAt(contacts, time.Now())
}

// CalculateAverageLeadScoreAt is CalculateAverageLeadScore with an explicit clock.
func CalculateAverageLeadScoreAt(contacts []directory.ContactWithCompany, now time.Time) int {
	if len(contacts) == 0 {
		return 0
	}

	sum := 0
	for _, c := range contacts {
		sum += CalculateLeadScoreAt(c, now).Total
	}
	return int(math.Round(float64(sum) / float64(len(contacts))))
}

// GetTopLeads scores every contact and returns the best limit of them, highest
// total first. Ties keep their input order. A limit of zero or less yields no leads.
func GetTopLeads(contacts []directory.ContactWithCompany, limit int) []ScoredContact {
	return GetTopLeadsAt(contacts, limit, time.Now())
}

// GetTopLeadsAt is GetTopLeads with an explicit clock.
func GetTopLeadsAt(contacts []directory.ContactWithCompany, limit int, now time.Time) []ScoredContact {
	if limit <= 0 {
		return []ScoredContact{}
	}

	scored := make([]ScoredContact, 0, len(contacts))
	for _, c := range contacts {
		scored = append(scored, ScoredContact{ContactWithCompany: c, LeadScore: CalculateLeadScoreAt(c, now)})
	}

	slices.SortStableFunc(scored, func(a, b ScoredContact) int {
		return b.LeadScore.Total - a.LeadScore.Total
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
