// Package graph assembles a company's relationships into a node/edge graph
// for visualisation.
//
// Assembly is a fold: each relationship category is mapped to fragments and
// the fragments are merged into one graph with first-write-wins node ids.
package graph

import (
	"time"

	"directory_backend/internal/directory"
)

type NodeType string

const (
	NodeCompany NodeType = "company"
	NodeContact NodeType = "contact"
)

// Group is a rendering hint for a node.
type Group string

const (
	GroupCentral    Group = "central"
	GroupParent     Group = "parent"
	GroupSubsidiary Group = "subsidiary"
	GroupAgency     Group = "agency"
	GroupClient     Group = "client"
	GroupContact    Group = "contact"
)

type EdgeType string

const (
	EdgeParentChild  EdgeType = "parent_child"
	EdgeAgencyClient EdgeType = "agency_client"
	EdgeEmployee     EdgeType = "employee"
)

type Node struct {
	ID    string   `json:"id"`
	Type  NodeType `json:"type"`
	Label string   `json:"label"`
	Data  any      `json:"data"`
	Group Group    `json:"group,omitempty"`
}

type Edge struct {
	ID     string           `json:"id"`
	Source string           `json:"source"`
	Target string           `json:"target"`
	Type   EdgeType         `json:"type"`
	Label  string           `json:"label,omitempty"`
	Data   *PartnershipData `json:"data,omitempty"`
}

// PartnershipData is carried on agency_client edges.
type PartnershipData struct {
	Services         []string   `json:"services"`
	IsAOR            bool       `json:"isAOR"`
	RelationshipType string     `json:"relationshipType"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
}

type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// CentralCompany is the node payload of the company the graph is built around.
type CentralCompany struct {
	directory.Company
	IsCentral bool `json:"isCentral"`
}

// CompanyWithContacts is a related company and its top contacts.
type CompanyWithContacts struct {
	directory.Company
	Contacts []directory.Contact `json:"contacts"`
}

// PartnerLink is one side of a partnership as seen from the central company.
type PartnerLink struct {
	Partnership directory.Partnership
	Partner     CompanyWithContacts
}

// Bundle is a company with its direct relationships, as loaded by the repository.
type Bundle struct {
	Company            directory.Company
	Parent             *directory.Company
	Subsidiaries       []CompanyWithContacts
	AgencyPartnerships []PartnerLink // the company is the advertiser
	ClientPartnerships []PartnerLink // the company is the agency
	Contacts           []directory.Contact
}

// Options controls graph assembly.
type Options struct {
	IncludeContacts bool
	Depth           int
}

// ContactNodeID namespaces contact ids so they cannot collide with company ids.
func ContactNodeID(contactID string) string {
	return "contact-" + contactID
}
