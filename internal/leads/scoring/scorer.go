// Package scoring computes lead scores for directory contacts.
//
// The score is additive and table driven: each breakdown field comes from a
// single pure helper, the four section scores are sums of their fields, and
// the total saturates at 100. Scoring never fails; absent data contributes
// the lowest bucket of its factor.
package scoring

import (
	"strings"
	"time"

	"directory_backend/internal/directory"
)

const (
	// Version identifies the scoring model in responses.
	// Bump this when changing scoring tables.
	Version = "2026-v1"

	maxTotal           = 100
	maxRoleScore       = 40
	maxCompanyScore    = 30
	maxContactScore    = 20
	maxEngagementScore = 10

	// Base engagement points saturate at this many interactions.
	maxInteractionPoints = 5

	day = 24 * time.Hour
)

// Breakdown holds the eight individual sub-metrics of a LeadScore.
type Breakdown struct {
	Seniority     int `json:"seniority"`
	DecisionMaker int `json:"decisionMaker"`
	Department    int `json:"department"`
	CompanySize   int `json:"companySize"`
	CompanyType   int `json:"companyType"`
	Verification  int `json:"verification"`
	ContactInfo   int `json:"contactInfo"`
	Engagement    int `json:"engagement"`
}

// LeadScore is the scored view of a contact. It is built once and never mutated.
type LeadScore struct {
	Total           int       `json:"total"`
	RoleScore       int       `json:"roleScore"`
	CompanyScore    int       `json:"companyScore"`
	ContactScore    int       `json:"contactScore"`
	EngagementScore int       `json:"engagementScore"`
	Breakdown       Breakdown `json:"breakdown"`
}

// seniorityPoints is the seniority table. Levels not listed score 1.
var seniorityPoints = map[directory.Seniority]int{
	directory.SeniorityFounderOwner:     30,
	directory.SeniorityCLevel:           30,
	directory.SeniorityEVP:              27,
	directory.SenioritySVP:              25,
	directory.SeniorityVP:               22,
	directory.SenioritySeniorDirector:   18,
	directory.SeniorityDirector:         15,
	directory.SenioritySeniorManager:    12,
	directory.SeniorityManager:          8,
	directory.SenioritySeniorSpecialist: 5,
	directory.SenioritySpecialist:       3,
}

var departmentPoints = map[directory.Department]int{
	directory.DepartmentMediaPlanning:     5,
	directory.DepartmentMediaBuying:       5,
	directory.DepartmentProgrammatic:      5,
	directory.DepartmentDigitalMarketing:  4,
	directory.DepartmentStrategyPlanning:  4,
	directory.DepartmentLeadership:        4,
	directory.DepartmentMarketing:         3,
	directory.DepartmentAnalyticsInsights: 3,
}

var companySizePoints = map[directory.EmployeeRange]int{
	directory.EmployeeRangeMega:       15,
	directory.EmployeeRangeEnterprise: 12,
	directory.EmployeeRangeLarge:      9,
	directory.EmployeeRangeMedium:     6,
	directory.EmployeeRangeSmall:      3,
	directory.EmployeeRangeStartup:    1,
}

var companyTypePoints = map[directory.CompanyType]int{
	directory.CompanyTypeHoldingCompanyAgency: 10,
	directory.CompanyTypeMediaHoldingCompany:  10,
	directory.CompanyTypeIndependentAgency:    8,
	directory.CompanyTypeNationalAdvertiser:   7,
	directory.CompanyTypeAdtechVendor:         6,
	directory.CompanyTypeMartechVendor:        6,
	directory.CompanyTypeLocalAdvertiser:      5,
	directory.CompanyTypeMediaOwner:           4,
	directory.CompanyTypePublisher:            4,
	directory.CompanyTypeBroadcaster:          4,
}

// CalculateLeadScore scores c against the current time.
func CalculateLeadScore(c directory.ContactWithCompany) LeadScore {
	return CalculateLeadScoreAt(c, time.Now())
}

// CalculateLeadScoreAt scores c, measuring engagement recency from now.
func CalculateLeadScoreAt(c directory.ContactWithCompany, now time.Time) LeadScore {
	b := Breakdown{
		Seniority:     seniorityScore(c.Seniority),
		DecisionMaker: decisionMakerScore(c.IsDecisionMaker),
		Department:    departmentScore(c.Department),
		CompanySize:   companySizeScore(c.Company.EmployeeCount),
		CompanyType:   companyTypeScore(c.Company.CompanyType),
		Verification:  verificationScore(c.Company.Verified, c.Verified),
		ContactInfo:   contactInfoScore(c.Contact),
		Engagement:    engagementScore(c.Engagement, now),
	}

	role := b.Seniority + b.DecisionMaker + b.Department
	company := b.CompanySize + b.CompanyType + b.Verification
	contact := b.ContactInfo
	engagement := min(maxEngagementScore, b.Engagement)

	return LeadScore{
		Total:           min(maxTotal, role+company+contact+engagement),
		RoleScore:       role,
		CompanyScore:    company,
		ContactScore:    contact,
		EngagementScore: engagement,
		Breakdown:       b,
	}
}

func seniorityScore(s directory.Seniority) int {
	if points, ok := seniorityPoints[s]; ok {
		return points
	}
	return 1
}

func decisionMakerScore(isDecisionMaker bool) int {
	if isDecisionMaker {
		return 5
	}
	return 0
}

func departmentScore(d directory.Department) int {
	if points, ok := departmentPoints[d]; ok {
		return points
	}
	return 1
}

func companySizeScore(r directory.EmployeeRange) int {
	return companySizePoints[r]
}

func companyTypeScore(t directory.CompanyType) int {
	if points, ok := companyTypePoints[t]; ok {
		return points
	}
	return 2
}

func verificationScore(companyVerified, contactVerified bool) int {
	switch {
	case companyVerified && contactVerified:
		return 5
	case companyVerified || contactVerified:
		return 3
	default:
		return 0
	}
}

func contactInfoScore(c directory.Contact) int {
	score := 0
	if present(c.Email) {
		score += 8
	}
	if present(c.Phone) {
		score += 4
	}
	if present(c.LinkedInURL) {
		score += 4
	}
	if present(c.Title) {
		score += 2
	}
	if present(c.PersonalEmail) {
		score += 2
	}
	return score
}

// engagementScore returns the raw engagement points before the section cap.
// Recency only counts when there is at least one interaction.
func engagementScore(e directory.Engagement, now time.Time) int {
	if e.InteractionCount <= 0 {
		return 0
	}

	score := min(maxInteractionPoints, e.InteractionCount)
	if e.LastInteraction == nil {
		return score
	}

	days := int(now.Sub(*e.LastInteraction) / day)
	switch {
	case days <= 7:
		score += 3
	case days <= 30:
		score += 2
	case days <= 90:
		score += 1
	}
	return score
}

func present(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}
