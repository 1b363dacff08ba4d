package repository

import (
	"context"
	"errors"
	"fmt"

	"directory_backend/internal/directory"
	"directory_backend/platform/apperr"
	"directory_backend/platform/db"

	"github.com/jackc/pgx/v5"
)

const (
	contactNotFoundMsg = "contact not found"
	companyNotFoundMsg = "company not found"
)

// ContactReader loads contacts together with the company they belong to.
type ContactReader interface {
	GetContactWithCompany(ctx context.Context, contactID string) (directory.ContactWithCompany, error)
	ListActiveContactsByCompany(ctx context.Context, companyID string, limit int) ([]directory.ContactWithCompany, error)
}

// Repository provides database operations for lead scoring.
type Repository struct {
	db db.Querier
}

// New creates a new leads repository.
func New(q db.Querier) *Repository {
	return &Repository{db: q}
}

var _ ContactReader = (*Repository)(nil)

var getContactWithCompanyQuery = fmt.Sprintf(`
		SELECT %s, %s
		FROM contacts ct
		JOIN companies co ON co.id = ct.company_id
		WHERE ct.id = $1`,
	directory.ContactColumns("ct"), directory.CompanyColumns("co"))

// GetContactWithCompany returns the contact and its company. Engagement is left empty.
func (r *Repository) GetContactWithCompany(ctx context.Context, contactID string) (directory.ContactWithCompany, error) {
	var contact directory.ContactScan
	var company directory.CompanyScan

	targets := append(contact.Targets(), company.Targets()...)
	if err := r.db.QueryRow(ctx, getContactWithCompanyQuery, contactID).Scan(targets...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return directory.ContactWithCompany{}, apperr.NotFound(contactNotFoundMsg)
		}
		return directory.ContactWithCompany{}, fmt.Errorf("get contact with company: %w", err)
	}

	return directory.ContactWithCompany{
		Contact: contact.Contact(),
		Company: company.Company(),
	}, nil
}

var getCompanyQuery = fmt.Sprintf(`
		SELECT %s
		FROM companies co
		WHERE co.id = $1`,
	directory.CompanyColumns("co"))

var listActiveContactsQuery = fmt.Sprintf(`
		SELECT %s
		FROM contacts ct
		WHERE ct.company_id = $1 AND ct.is_active
		ORDER BY ct.seniority DESC NULLS LAST, ct.is_decision_maker DESC, ct.created_at ASC
		LIMIT $2`,
	directory.ContactColumns("ct"))

// ListActiveContactsByCompany returns up to limit active contacts of a company,
// most senior first. An unknown company is NotFound; a company without
// contacts yields an empty slice.
func (r *Repository) ListActiveContactsByCompany(ctx context.Context, companyID string, limit int) ([]directory.ContactWithCompany, error) {
	company, err := directory.ScanCompany(r.db.QueryRow(ctx, getCompanyQuery, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(companyNotFoundMsg)
		}
		return nil, fmt.Errorf("get company: %w", err)
	}

	rows, err := r.db.Query(ctx, listActiveContactsQuery, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list active contacts: %w", err)
	}
	contacts, err := directory.ScanContacts(rows)
	if err != nil {
		return nil, fmt.Errorf("scan active contacts: %w", err)
	}

	items := make([]directory.ContactWithCompany, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, directory.ContactWithCompany{Contact: c, Company: company})
	}
	return items, nil
}
