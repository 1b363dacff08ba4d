package graph

import (
	"time"

	"directory_backend/internal/directory"
)

type Stats struct {
	TotalNodes int `json:"totalNodes"`
	TotalEdges int `json:"totalEdges"`
	Companies  int `json:"companies"`
	Contacts   int `json:"contacts"`
}

// ComputeStats counts nodes by type.
func ComputeStats(g Graph) Stats {
	s := Stats{TotalNodes: len(g.Nodes), TotalEdges: len(g.Edges)}
	for _, n := range g.Nodes {
		switch n.Type {
		case NodeCompany:
			s.Companies++
		case NodeContact:
			s.Contacts++
		}
	}
	return s
}

type PartnershipSummary struct {
	RelationshipType string     `json:"relationshipType"`
	IsAOR            bool       `json:"isAOR"`
	Services         []string   `json:"services"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
}

type PartnerRelationship struct {
	Company     directory.Company   `json:"company"`
	Partnership PartnershipSummary  `json:"partnership"`
	KeyContacts []directory.Contact `json:"keyContacts"`
}

// Relationships groups a bundle by relationship kind.
type Relationships struct {
	Agencies     []PartnerRelationship `json:"agencies"`
	Clients      []PartnerRelationship `json:"clients"`
	Parent       *directory.Company    `json:"parent"`
	Subsidiaries []CompanyWithContacts `json:"subsidiaries"`
	Contacts     []directory.Contact   `json:"contacts"`
}

// Project builds the relationships view of a bundle. It never returns nil slices.
func Project(b Bundle) Relationships {
	r := Relationships{
		Agencies:     projectPartners(b.AgencyPartnerships),
		Clients:      projectPartners(b.ClientPartnerships),
		Parent:       b.Parent,
		Subsidiaries: make([]CompanyWithContacts, 0, len(b.Subsidiaries)),
		Contacts:     nonNilContacts(b.Contacts),
	}
	for _, sub := range b.Subsidiaries {
		sub.Contacts = nonNilContacts(sub.Contacts)
		r.Subsidiaries = append(r.Subsidiaries, sub)
	}
	return r
}

func projectPartners(links []PartnerLink) []PartnerRelationship {
	out := make([]PartnerRelationship, 0, len(links))
	for _, link := range links {
		p := link.Partnership
		services := p.Services
		if services == nil {
			services = []string{}
		}
		out = append(out, PartnerRelationship{
			Company: link.Partner.Company,
			Partnership: PartnershipSummary{
				RelationshipType: p.RelationshipType,
				IsAOR:            p.IsAOR,
				Services:         services,
				StartDate:        p.StartDate,
				EndDate:          p.EndDate,
			},
			KeyContacts: nonNilContacts(link.Partner.Contacts),
		})
	}
	return out
}

func nonNilContacts(contacts []directory.Contact) []directory.Contact {
	if contacts == nil {
		return []directory.Contact{}
	}
	return contacts
}
