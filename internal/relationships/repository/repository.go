package repository

import (
	"context"
	"errors"
	"fmt"

	"directory_backend/internal/directory"
	"directory_backend/internal/relationships/graph"
	"directory_backend/platform/apperr"
	"directory_backend/platform/db"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

const companyNotFoundMsg = "company not found"

// Page sizes keep a graph render-sized.
const (
	subsidiaryLimit        = 50
	subsidiaryContactLimit = 3
	partnershipLimit       = 20
	partnerContactLimit    = 5
	ownContactLimit        = 10
)

// CompanyRepository loads a company with its direct relationships.
type CompanyRepository interface {
	GetCompanyWithRelationships(ctx context.Context, companyID string, opts graph.Options) (graph.Bundle, error)
}

// Repository provides database operations for company relationships.
type Repository struct {
	db db.Querier
}

// New creates a new relationships repository.
func New(q db.Querier) *Repository {
	return &Repository{db: q}
}

var _ CompanyRepository = (*Repository)(nil)

// GetCompanyWithRelationships loads the company, then runs the parent,
// subsidiary, agency, client and own-contact lookups concurrently. Any failing
// lookup fails the whole load. An unknown company is NotFound.
func (r *Repository) GetCompanyWithRelationships(ctx context.Context, companyID string, opts graph.Options) (graph.Bundle, error) {
	company, err := r.getCompany(ctx, companyID)
	if err != nil {
		return graph.Bundle{}, err
	}

	bundle := graph.Bundle{Company: company}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		parent, err := r.getParent(gctx, companyID)
		bundle.Parent = parent
		return err
	})
	g.Go(func() error {
		subs, err := r.listSubsidiaries(gctx, companyID)
		bundle.Subsidiaries = subs
		return err
	})
	g.Go(func() error {
		links, err := r.listPartnerships(gctx, agencyPartnershipsQuery, companyID)
		bundle.AgencyPartnerships = links
		return err
	})
	g.Go(func() error {
		links, err := r.listPartnerships(gctx, clientPartnershipsQuery, companyID)
		bundle.ClientPartnerships = links
		return err
	})
	if opts.IncludeContacts {
		g.Go(func() error {
			contacts, err := r.listOwnContacts(gctx, companyID)
			bundle.Contacts = contacts
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return graph.Bundle{}, err
	}
	return bundle, nil
}

var getCompanyQuery = fmt.Sprintf(`
		SELECT %s
		FROM companies co
		WHERE co.id = $1`,
	directory.CompanyColumns("co"))

func (r *Repository) getCompany(ctx context.Context, companyID string) (directory.Company, error) {
	company, err := directory.ScanCompany(r.db.QueryRow(ctx, getCompanyQuery, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return directory.Company{}, apperr.NotFound(companyNotFoundMsg)
		}
		return directory.Company{}, fmt.Errorf("get company: %w", err)
	}
	return company, nil
}

var getParentQuery = fmt.Sprintf(`
		SELECT %s
		FROM companies co
		JOIN companies p ON p.id = co.parent_company_id
		WHERE co.id = $1`,
	directory.CompanyColumns("p"))

func (r *Repository) getParent(ctx context.Context, companyID string) (*directory.Company, error) {
	parent, err := directory.ScanCompany(r.db.QueryRow(ctx, getParentQuery, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get parent company: %w", err)
	}
	return &parent, nil
}

var listSubsidiariesQuery = fmt.Sprintf(`
		SELECT %s
		FROM companies s
		WHERE s.parent_company_id = $1
		ORDER BY s.name ASC
		LIMIT $2`,
	directory.CompanyColumns("s"))

func (r *Repository) listSubsidiaries(ctx context.Context, companyID string) ([]graph.CompanyWithContacts, error) {
	rows, err := r.db.Query(ctx, listSubsidiariesQuery, companyID, subsidiaryLimit)
	if err != nil {
		return nil, fmt.Errorf("list subsidiaries: %w", err)
	}
	defer rows.Close()

	var subs []graph.CompanyWithContacts
	var ids []string
	for rows.Next() {
		company, err := directory.ScanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subsidiary: %w", err)
		}
		subs = append(subs, graph.CompanyWithContacts{Company: company})
		ids = append(ids, company.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list subsidiaries: %w", err)
	}
	if len(subs) == 0 {
		return nil, nil
	}

	contacts, err := r.topContactsByCompany(ctx, ids, subsidiaryContactLimit)
	if err != nil {
		return nil, err
	}
	for i := range subs {
		subs[i].Contacts = contacts[subs[i].ID]
	}
	return subs, nil
}

const partnershipColumns = `p.id, p.agency_id, p.advertiser_id, p.relationship_type, p.is_aor,
		p.services, p.start_date, p.end_date, p.is_active, p.created_at`

// agencyPartnershipsQuery lists agencies working for the company.
var agencyPartnershipsQuery = fmt.Sprintf(`
		SELECT %s, %s
		FROM company_partnerships p
		JOIN companies partner ON partner.id = p.agency_id
		WHERE p.advertiser_id = $1 AND p.is_active
		ORDER BY p.created_at DESC
		LIMIT $2`,
	partnershipColumns, directory.CompanyColumns("partner"))

// clientPartnershipsQuery lists advertisers the company works for.
var clientPartnershipsQuery = fmt.Sprintf(`
		SELECT %s, %s
		FROM company_partnerships p
		JOIN companies partner ON partner.id = p.advertiser_id
		WHERE p.agency_id = $1 AND p.is_active
		ORDER BY p.created_at DESC
		LIMIT $2`,
	partnershipColumns, directory.CompanyColumns("partner"))

func (r *Repository) listPartnerships(ctx context.Context, query, companyID string) ([]graph.PartnerLink, error) {
	rows, err := r.db.Query(ctx, query, companyID, partnershipLimit)
	if err != nil {
		return nil, fmt.Errorf("list partnerships: %w", err)
	}
	defer rows.Close()

	var links []graph.PartnerLink
	var ids []string
	for rows.Next() {
		var p directory.Partnership
		var partner directory.CompanyScan

		targets := append([]any{
			&p.ID, &p.AgencyID, &p.AdvertiserID, &p.RelationshipType, &p.IsAOR,
			&p.Services, &p.StartDate, &p.EndDate, &p.IsActive, &p.CreatedAt,
		}, partner.Targets()...)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan partnership: %w", err)
		}

		company := partner.Company()
		links = append(links, graph.PartnerLink{
			Partnership: p,
			Partner:     graph.CompanyWithContacts{Company: company},
		})
		ids = append(ids, company.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list partnerships: %w", err)
	}
	if len(links) == 0 {
		return nil, nil
	}

	contacts, err := r.topContactsByCompany(ctx, ids, partnerContactLimit)
	if err != nil {
		return nil, err
	}
	for i := range links {
		links[i].Partner.Contacts = contacts[links[i].Partner.ID]
	}
	return links, nil
}

// contactRanking orders contacts most senior first, decision makers first within
// a level. The seniority enum is declared from INTERN to FOUNDER_OWNER.
const contactRanking = `seniority DESC NULLS LAST, is_decision_maker DESC, created_at ASC`

var topContactsByCompanyQuery = fmt.Sprintf(`
		SELECT %s
		FROM (
			SELECT ct.*, row_number() OVER (PARTITION BY ct.company_id ORDER BY %s) AS contact_rank
			FROM contacts ct
			WHERE ct.company_id = ANY($1) AND ct.is_active
		) ranked
		WHERE ranked.contact_rank <= $2
		ORDER BY ranked.company_id, ranked.contact_rank`,
	directory.ContactColumns("ranked"), contactRanking)

// topContactsByCompany returns up to perCompany active contacts for each company id.
func (r *Repository) topContactsByCompany(ctx context.Context, companyIDs []string, perCompany int) (map[string][]directory.Contact, error) {
	rows, err := r.db.Query(ctx, topContactsByCompanyQuery, companyIDs, perCompany)
	if err != nil {
		return nil, fmt.Errorf("list company contacts: %w", err)
	}
	contacts, err := directory.ScanContacts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan company contacts: %w", err)
	}

	byCompany := make(map[string][]directory.Contact, len(companyIDs))
	for _, c := range contacts {
		byCompany[c.CompanyID] = append(byCompany[c.CompanyID], c)
	}
	return byCompany, nil
}

var listOwnContactsQuery = fmt.Sprintf(`
		SELECT %s
		FROM contacts ct
		WHERE ct.company_id = $1 AND ct.is_active
		ORDER BY %s
		LIMIT $2`,
	directory.ContactColumns("ct"), contactRanking)

func (r *Repository) listOwnContacts(ctx context.Context, companyID string) ([]directory.Contact, error) {
	rows, err := r.db.Query(ctx, listOwnContactsQuery, companyID, ownContactLimit)
	if err != nil {
		return nil, fmt.Errorf("list own contacts: %w", err)
	}
	contacts, err := directory.ScanContacts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan own contacts: %w", err)
	}
	return contacts, nil
}
