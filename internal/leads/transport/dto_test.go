package transport

import (
	"testing"

	"directory_backend/internal/directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestScoreContactRequestToContact(t *testing.T) {
	req := ScoreContactRequest{
		Title:      strPtr(" VP of <b>Sales</b> "),
		Email:      strPtr("   "),
		Phone:      strPtr("(212) 736-5000"),
		Seniority:  "vp",
		Department: "sales",
	}
	req.Company.EmployeeCount = "ENTERPRISE_1001_5000"
	req.Company.CompanyType = "unheard-of"

	got := req.ToContact()

	require.NotNil(t, got.Title)
	assert.Equal(t, "VP of Sales", *got.Title)
	assert.Nil(t, got.Email)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "+12127365000", *got.Phone)
	assert.Equal(t, directory.SeniorityVP, got.Seniority)
	assert.Equal(t, directory.DepartmentSales, got.Department)
	assert.Equal(t, directory.EmployeeRangeEnterprise, got.Company.EmployeeCount)
	assert.Equal(t, directory.CompanyType(""), got.Company.CompanyType)
}
