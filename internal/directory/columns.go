package directory

import (
	"fmt"
	"strings"

	"directory_backend/platform/phone"

	"github.com/jackc/pgx/v5"
)

var companyColumnNames = []string{
	"id", "name", "company_type::text", "employee_count::text", "verified",
	"logo_url", "website", "city", "state", "parent_company_id",
	"created_at", "updated_at",
}

var contactColumnNames = []string{
	"id", "company_id", "first_name", "last_name", "full_name",
	"title", "email", "personal_email", "phone", "linkedin_url",
	"seniority::text", "department::text", "is_decision_maker", "verified", "is_active",
	"created_at",
}

// CompanyColumns returns the select list ScanCompany expects, qualified by alias.
func CompanyColumns(alias string) string {
	return qualify(alias, companyColumnNames)
}

// ContactColumns returns the select list ScanContact expects, qualified by alias.
func ContactColumns(alias string) string {
	return qualify(alias, contactColumnNames)
}

func qualify(alias string, names []string) string {
	cols := make([]string, len(names))
	for i, name := range names {
		if alias == "" {
			cols[i] = name
			continue
		}
		cols[i] = fmt.Sprintf("%s.%s", alias, name)
	}
	return strings.Join(cols, ", ")
}

// CompanyScan collects company columns during a row scan.
type CompanyScan struct {
	c             Company
	companyType   *string
	employeeCount *string
}

// Targets returns scan destinations in CompanyColumns order.
func (s *CompanyScan) Targets() []any {
	return []any{
		&s.c.ID, &s.c.Name, &s.companyType, &s.employeeCount, &s.c.Verified,
		&s.c.LogoURL, &s.c.Website, &s.c.City, &s.c.State, &s.c.ParentCompanyID,
		&s.c.CreatedAt, &s.c.UpdatedAt,
	}
}

// Company returns the scanned record.
func (s *CompanyScan) Company() Company {
	c := s.c
	c.CompanyType = ParseCompanyType(deref(s.companyType))
	c.EmployeeCount = ParseEmployeeRange(deref(s.employeeCount))
	return c
}

// ContactScan collects contact columns during a row scan.
type ContactScan struct {
	c          Contact
	seniority  *string
	department *string
}

// Targets returns scan destinations in ContactColumns order.
func (s *ContactScan) Targets() []any {
	return []any{
		&s.c.ID, &s.c.CompanyID, &s.c.FirstName, &s.c.LastName, &s.c.FullName,
		&s.c.Title, &s.c.Email, &s.c.PersonalEmail, &s.c.Phone, &s.c.LinkedInURL,
		&s.seniority, &s.department, &s.c.IsDecisionMaker, &s.c.Verified, &s.c.IsActive,
		&s.c.CreatedAt,
	}
}

// Contact returns the scanned record with its phone normalised to E.164.
func (s *ContactScan) Contact() Contact {
	c := s.c
	c.Seniority = ParseSeniority(deref(s.seniority))
	c.Department = ParseDepartment(deref(s.department))
	if c.Phone != nil {
		normalized := phone.NormalizeE164(*c.Phone)
		c.Phone = &normalized
	}
	return c
}

// ScanCompany reads a row selected with CompanyColumns.
func ScanCompany(row pgx.Row) (Company, error) {
	var s CompanyScan
	if err := row.Scan(s.Targets()...); err != nil {
		return Company{}, err
	}
	return s.Company(), nil
}

// ScanContact reads a row selected with ContactColumns.
func ScanContact(row pgx.Row) (Contact, error) {
	var s ContactScan
	if err := row.Scan(s.Targets()...); err != nil {
		return Contact{}, err
	}
	return s.Contact(), nil
}

// ScanContacts drains rows selected with ContactColumns.
func ScanContacts(rows pgx.Rows) ([]Contact, error) {
	defer rows.Close()

	contacts := []Contact{}
	for rows.Next() {
		c, err := ScanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// CompanyRow builds a value row in CompanyColumns order. Tests use it to feed
// mocked result sets.
func CompanyRow(c Company) []any {
	return []any{
		c.ID, c.Name, enumPtr(string(c.CompanyType)), enumPtr(string(c.EmployeeCount)), c.Verified,
		c.LogoURL, c.Website, c.City, c.State, c.ParentCompanyID,
		c.CreatedAt, c.UpdatedAt,
	}
}

// ContactRow builds a value row in ContactColumns order.
func ContactRow(c Contact) []any {
	return []any{
		c.ID, c.CompanyID, c.FirstName, c.LastName, c.FullName,
		c.Title, c.Email, c.PersonalEmail, c.Phone, c.LinkedInURL,
		enumPtr(string(c.Seniority)), enumPtr(string(c.Department)), c.IsDecisionMaker, c.Verified, c.IsActive,
		c.CreatedAt,
	}
}

// CompanyColumnList and ContactColumnList name result columns for mocked rows.
func CompanyColumnList() []string { return unqualified(companyColumnNames) }

func ContactColumnList() []string { return unqualified(contactColumnNames) }

func unqualified(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = strings.TrimSuffix(name, "::text")
	}
	return out
}

func enumPtr(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
