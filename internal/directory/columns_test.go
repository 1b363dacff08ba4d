package directory

import (
	"strings"
	"testing"
)

func TestColumnsAreQualified(t *testing.T) {
	cols := CompanyColumns("co")
	if !strings.HasPrefix(cols, "co.id, co.name, co.company_type::text") {
		t.Fatalf("unexpected company columns: %s", cols)
	}
	if got := len(strings.Split(ContactColumns(""), ", ")); got != len(ContactColumnList()) {
		t.Fatalf("column list mismatch: %d vs %d", got, len(ContactColumnList()))
	}
}

func TestContactScanNormalizes(t *testing.T) {
	var s ContactScan
	targets := s.Targets()

	rawPhone := "(212) 736-5000"
	seniority := "VP"
	department := "NOT_A_DEPARTMENT"
	*(targets[8].(**string)) = &rawPhone
	*(targets[10].(**string)) = &seniority
	*(targets[11].(**string)) = &department

	c := s.Contact()
	if c.Phone == nil || *c.Phone != "+12127365000" {
		t.Fatalf("expected normalised phone, got %v", c.Phone)
	}
	if c.Seniority != SeniorityVP {
		t.Fatalf("expected VP, got %q", c.Seniority)
	}
	if c.Department != "" {
		t.Fatalf("expected unknown department to be absent, got %q", c.Department)
	}
}

func TestRowsMatchTargets(t *testing.T) {
	var cs CompanyScan
	if len(CompanyRow(Company{})) != len(cs.Targets()) {
		t.Fatalf("company row and targets differ in length")
	}
	var ct ContactScan
	if len(ContactRow(Contact{})) != len(ct.Targets()) {
		t.Fatalf("contact row and targets differ in length")
	}
}
