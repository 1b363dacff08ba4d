package directory

import "time"

// Company is a directory listing for an agency, advertiser or vendor.
type Company struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	CompanyType     CompanyType   `json:"companyType,omitempty"`
	EmployeeCount   EmployeeRange `json:"employeeCount,omitempty"`
	Verified        bool          `json:"verified"`
	LogoURL         *string       `json:"logoUrl,omitempty"`
	Website         *string       `json:"website,omitempty"`
	City            *string       `json:"city,omitempty"`
	State           *string       `json:"state,omitempty"`
	ParentCompanyID *string       `json:"parentCompanyId,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// Contact is a person listed under a company.
type Contact struct {
	ID              string     `json:"id"`
	CompanyID       string     `json:"companyId"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	FullName        string     `json:"fullName"`
	Title           *string    `json:"title,omitempty"`
	Email           *string    `json:"email,omitempty"`
	PersonalEmail   *string    `json:"personalEmail,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	LinkedInURL     *string    `json:"linkedinUrl,omitempty"`
	Seniority       Seniority  `json:"seniority,omitempty"`
	Department      Department `json:"department,omitempty"`
	IsDecisionMaker bool       `json:"isDecisionMaker"`
	Verified        bool       `json:"verified"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// TitleOrEmpty returns the contact title or "" when it is not set.
func (c Contact) TitleOrEmpty() string {
	if c.Title == nil {
		return ""
	}
	return *c.Title
}

// Engagement is the interaction history recorded for a contact.
type Engagement struct {
	InteractionCount int        `json:"interactionCount"`
	LastInteraction  *time.Time `json:"lastInteraction,omitempty"`
}

// ContactWithCompany is the unit the lead scorer works on.
type ContactWithCompany struct {
	Contact
	Company    Company    `json:"company"`
	Engagement Engagement `json:"engagement"`
}

// Partnership links an agency to an advertiser it works for.
type Partnership struct {
	ID               string     `json:"id"`
	AgencyID         string     `json:"agencyId"`
	AdvertiserID     string     `json:"advertiserId"`
	RelationshipType string     `json:"relationshipType"`
	IsAOR            bool       `json:"isAOR"`
	Services         []string   `json:"services"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
}
