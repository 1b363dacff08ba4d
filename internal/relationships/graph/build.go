package graph

import (
	"fmt"

	"directory_backend/internal/directory"
)

const (
	labelParent     = "Parent Company"
	labelSubsidiary = "Subsidiary"
	labelAOR        = "AOR"
	labelAgency     = "Agency"
	labelClient     = "Client"
)

// fragment is a node with the edges that belong to it. Owned edges are
// dropped when the node is already present; free edges are always merged.
type fragment struct {
	node  *Node
	owned []Edge
	free  []Edge
}

// edgeKey identifies a relationship independently of its edge id.
type edgeKey struct {
	source, target string
	kind           EdgeType
}

// Builder merges fragments into a graph. The first node seen for an id wins.
// A relationship already added by an earlier bundle is not added again when a
// later bundle reports it from the other side.
type Builder struct {
	nodes   []Node
	edges   []Edge
	nodeIDs map[string]struct{}
	edgeIDs map[string]struct{}
	// edgeKeys maps each relationship to the bundle that first added it.
	edgeKeys map[edgeKey]int
	bundle   int
}

func NewBuilder() *Builder {
	return &Builder{
		nodes:    []Node{},
		edges:    []Edge{},
		nodeIDs:  map[string]struct{}{},
		edgeIDs:  map[string]struct{}{},
		edgeKeys: map[edgeKey]int{},
	}
}

// Build assembles the graph of a single bundle.
func Build(b Bundle, opts Options) Graph {
	g := NewBuilder()
	g.Add(b, opts)
	return g.Graph()
}

// Add folds a bundle into the graph. The first bundle added becomes the
// central node; later bundles extend the graph around their own company.
func (g *Builder) Add(b Bundle, opts Options) {
	g.bundle++
	for _, f := range fragments(b, opts) {
		g.merge(f)
	}
}

// Graph returns the assembled graph.
func (g *Builder) Graph() Graph {
	return Graph{Nodes: g.nodes, Edges: g.edges}
}

// Has reports whether a node with id is present.
func (g *Builder) Has(id string) bool {
	_, ok := g.nodeIDs[id]
	return ok
}

func (g *Builder) merge(f fragment) {
	if f.node != nil {
		if g.Has(f.node.ID) {
			f.owned = nil
		} else {
			g.nodes = append(g.nodes, *f.node)
			g.nodeIDs[f.node.ID] = struct{}{}
		}
	}

	for _, e := range f.owned {
		g.addEdge(e)
	}
	for _, e := range f.free {
		g.addEdge(e)
	}
}

// addEdge drops self-loops, edges with a missing endpoint and relationships
// an earlier bundle already added. Repeats within one bundle get unique ids.
func (g *Builder) addEdge(e Edge) {
	if e.Source == e.Target || !g.Has(e.Source) || !g.Has(e.Target) {
		return
	}
	key := edgeKey{source: e.Source, target: e.Target, kind: e.Type}
	if first, ok := g.edgeKeys[key]; ok && first != g.bundle {
		return
	} else if !ok {
		g.edgeKeys[key] = g.bundle
	}
	e.ID = g.uniqueEdgeID(e)
	g.edges = append(g.edges, e)
	g.edgeIDs[e.ID] = struct{}{}
}

func (g *Builder) uniqueEdgeID(e Edge) string {
	base := e.Source + "-" + e.Target
	if !g.hasEdge(base) {
		return base
	}

	typed := base + "-" + string(e.Type)
	if !g.hasEdge(typed) {
		return typed
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", typed, n)
		if !g.hasEdge(candidate) {
			return candidate
		}
	}
}

func (g *Builder) hasEdge(id string) bool {
	_, ok := g.edgeIDs[id]
	return ok
}

// fragments maps a bundle to fragments in merge order: central, parent,
// subsidiaries, agency partnerships, client partnerships, own contacts.
func fragments(b Bundle, opts Options) []fragment {
	central := b.Company.ID
	out := []fragment{{node: &Node{
		ID:    central,
		Type:  NodeCompany,
		Label: b.Company.Name,
		Data:  CentralCompany{Company: b.Company, IsCentral: true},
		Group: GroupCentral,
	}}}

	if b.Parent != nil {
		out = append(out, fragment{
			node: companyNode(*b.Parent, GroupParent),
			free: []Edge{{Source: b.Parent.ID, Target: central, Type: EdgeParentChild, Label: labelParent}},
		})
	}

	for _, sub := range b.Subsidiaries {
		out = append(out, fragment{
			node: companyNode(sub.Company, GroupSubsidiary),
			free: []Edge{{Source: central, Target: sub.ID, Type: EdgeParentChild, Label: labelSubsidiary}},
		})
		out = appendContacts(out, sub.ID, sub.Contacts, opts)
	}

	for _, link := range b.AgencyPartnerships {
		agency := link.Partner
		label := labelAgency
		if link.Partnership.IsAOR {
			label = labelAOR
		}
		out = append(out, fragment{
			node: companyNode(agency.Company, GroupAgency),
			free: []Edge{{Source: agency.ID, Target: central, Type: EdgeAgencyClient, Label: label, Data: partnershipData(link.Partnership)}},
		})
		out = appendContacts(out, agency.ID, agency.Contacts, opts)
	}

	for _, link := range b.ClientPartnerships {
		client := link.Partner
		label := labelClient
		if link.Partnership.IsAOR {
			label = labelAOR
		}
		out = append(out, fragment{
			node: companyNode(client.Company, GroupClient),
			free: []Edge{{Source: central, Target: client.ID, Type: EdgeAgencyClient, Label: label, Data: partnershipData(link.Partnership)}},
		})
		out = appendContacts(out, client.ID, client.Contacts, opts)
	}

	return appendContacts(out, central, b.Contacts, opts)
}

// appendContacts adds employee fragments. The employee edge is owned by the
// contact node, so a contact already in the graph gets no second edge.
func appendContacts(out []fragment, companyID string, contacts []directory.Contact, opts Options) []fragment {
	if !opts.IncludeContacts {
		return out
	}
	for _, c := range contacts {
		id := ContactNodeID(c.ID)
		out = append(out, fragment{
			node: &Node{
				ID:    id,
				Type:  NodeContact,
				Label: c.FullName,
				Data:  c,
				Group: GroupContact,
			},
			owned: []Edge{{Source: companyID, Target: id, Type: EdgeEmployee, Label: c.TitleOrEmpty()}},
		})
	}
	return out
}

func companyNode(c directory.Company, group Group) *Node {
	return &Node{
		ID:    c.ID,
		Type:  NodeCompany,
		Label: c.Name,
		Data:  c,
		Group: group,
	}
}

func partnershipData(p directory.Partnership) *PartnershipData {
	services := p.Services
	if services == nil {
		services = []string{}
	}
	return &PartnershipData{
		Services:         services,
		IsAOR:            p.IsAOR,
		RelationshipType: p.RelationshipType,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
	}
}

// Neighbours returns the ids of companies directly related to the bundle's
// company, in fragment order and without duplicates.
func Neighbours(b Bundle) []string {
	seen := map[string]struct{}{b.Company.ID: {}}
	var ids []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if b.Parent != nil {
		add(b.Parent.ID)
	}
	for _, sub := range b.Subsidiaries {
		add(sub.ID)
	}
	for _, link := range b.AgencyPartnerships {
		add(link.Partner.ID)
	}
	for _, link := range b.ClientPartnerships {
		add(link.Partner.ID)
	}
	return ids
}
