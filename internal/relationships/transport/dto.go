package transport

import (
	"directory_backend/internal/directory"
	"directory_backend/internal/relationships/graph"
)

// RelationshipsRequest holds query parameters for the relationship graph.
// IncludeContacts defaults to true when omitted.
type RelationshipsRequest struct {
	IncludeContacts *bool `form:"includeContacts"`
	Depth           int   `form:"depth" validate:"omitempty,min=1,max=3"`
}

// CompanySummary identifies the central company of a graph.
type CompanySummary struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	CompanyType directory.CompanyType `json:"companyType,omitempty"`
	LogoURL     *string               `json:"logoUrl,omitempty"`
}

type RelationshipGraphResponse struct {
	Company       CompanySummary      `json:"company"`
	Relationships graph.Relationships `json:"relationships"`
	Graph         graph.Graph         `json:"graph"`
	Stats         graph.Stats         `json:"stats"`
	Depth         int                 `json:"depth"`
}
