package transport

import (
	"time"

	"directory_backend/internal/directory"
	"directory_backend/internal/leads/scoring"
	"directory_backend/platform/phone"
	"directory_backend/platform/sanitize"
)

// ScoreContactRequest scores a contact that is not stored in the directory.
type ScoreContactRequest struct {
	Title            *string    `json:"title,omitempty" validate:"omitempty,max=200"`
	Email            *string    `json:"email,omitempty" validate:"omitempty,email"`
	PersonalEmail    *string    `json:"personalEmail,omitempty" validate:"omitempty,email"`
	Phone            *string    `json:"phone,omitempty" validate:"omitempty,max=50"`
	LinkedInURL      *string    `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	Seniority        string     `json:"seniority,omitempty" validate:"omitempty,oneof=INTERN COORDINATOR SPECIALIST SENIOR_SPECIALIST MANAGER SENIOR_MANAGER DIRECTOR SENIOR_DIRECTOR VP SVP EVP C_LEVEL FOUNDER_OWNER"`
	Department       string     `json:"department,omitempty" validate:"omitempty,max=40"`
	IsDecisionMaker  bool       `json:"isDecisionMaker"`
	Verified         bool       `json:"verified"`
	InteractionCount int        `json:"interactionCount" validate:"gte=0"`
	LastInteraction  *time.Time `json:"lastInteraction,omitempty"`
	Company          struct {
		EmployeeCount string `json:"employeeCount,omitempty" validate:"omitempty,oneof=STARTUP_1_10 SMALL_11_50 MEDIUM_51_200 LARGE_201_1000 ENTERPRISE_1001_5000 MEGA_5000_PLUS"`
		CompanyType   string `json:"companyType,omitempty" validate:"omitempty,max=40"`
		Verified      bool   `json:"verified"`
	} `json:"company"`
}

// ToContact converts the request into the scorer's input. Unknown departments
// and company types are kept absent so they fall into the default bucket.
// Free-text fields are cleaned; a field that is blank after cleaning is absent.
func (r ScoreContactRequest) ToContact() directory.ContactWithCompany {
	phoneNumber := sanitize.OptionalText(r.Phone)
	if phoneNumber != nil {
		normalized := phone.NormalizeE164(*phoneNumber)
		phoneNumber = &normalized
	}

	return directory.ContactWithCompany{
		Contact: directory.Contact{
			Title:           sanitize.OptionalText(r.Title),
			Email:           sanitize.OptionalText(r.Email),
			PersonalEmail:   sanitize.OptionalText(r.PersonalEmail),
			Phone:           phoneNumber,
			LinkedInURL:     sanitize.OptionalText(r.LinkedInURL),
			Seniority:       directory.ParseSeniority(r.Seniority),
			Department:      directory.ParseDepartment(r.Department),
			IsDecisionMaker: r.IsDecisionMaker,
			Verified:        r.Verified,
		},
		Company: directory.Company{
			EmployeeCount: directory.ParseEmployeeRange(r.Company.EmployeeCount),
			CompanyType:   directory.ParseCompanyType(r.Company.CompanyType),
			Verified:      r.Company.Verified,
		},
		Engagement: directory.Engagement{
			InteractionCount: r.InteractionCount,
			LastInteraction:  r.LastInteraction,
		},
	}
}

// TopLeadsRequest holds query parameters for the company top-leads listing.
type TopLeadsRequest struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// RecordInteractionRequest records an interaction with a contact.
// A missing timestamp means now.
type RecordInteractionRequest struct {
	At *time.Time `json:"at,omitempty"`
}

type LeadScoreResponse struct {
	ContactID    string            `json:"contactId,omitempty"`
	Score        scoring.LeadScore `json:"score"`
	Tier         scoring.Tier      `json:"tier"`
	Priority     scoring.Priority  `json:"priority"`
	ModelVersion string            `json:"modelVersion"`
}

type LeadInsightsResponse struct {
	ContactID string `json:"contactId"`
	scoring.Insights
	ModelVersion string `json:"modelVersion"`
}

type TopLead struct {
	Contact  directory.Contact `json:"contact"`
	Score    scoring.LeadScore `json:"score"`
	Tier     scoring.Tier      `json:"tier"`
	Priority scoring.Priority  `json:"priority"`
}

type CompanyLeadsResponse struct {
	CompanyID     string    `json:"companyId"`
	CompanyName   string    `json:"companyName"`
	ContactsRated int       `json:"contactsRated"`
	AverageScore  int       `json:"averageScore"`
	Leads         []TopLead `json:"leads"`
	ModelVersion  string    `json:"modelVersion"`
}

type EngagementResponse struct {
	ContactID string `json:"contactId"`
	directory.Engagement
}
