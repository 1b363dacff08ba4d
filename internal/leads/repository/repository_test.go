package repository

import (
	"context"
	"testing"
	"time"

	"directory_backend/internal/directory"
	"directory_backend/platform/apperr"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

var created = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func sampleCompany() directory.Company {
	return directory.Company{
		ID:            "co-1",
		Name:          "Northwind Media",
		CompanyType:   directory.CompanyTypeIndependentAgency,
		EmployeeCount: directory.EmployeeRangeLarge,
		Verified:      true,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func sampleContact(id string, seniority directory.Seniority) directory.Contact {
	return directory.Contact{
		ID:        id,
		CompanyID: "co-1",
		FirstName: "Sam",
		LastName:  "Lee",
		FullName:  "Sam Lee",
		Title:     strPtr("Media Director"),
		Email:     strPtr("sam@northwind.example"),
		Phone:     strPtr("212-736-5000"),
		Seniority: seniority,
		IsActive:  true,
		CreatedAt: created,
	}
}

func TestGetContactWithCompany(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	contact := sampleContact("ct-1", directory.SeniorityDirector)
	company := sampleCompany()

	cols := append(directory.ContactColumnList(), directory.CompanyColumnList()...)
	row := append(directory.ContactRow(contact), directory.CompanyRow(company)...)
	mock.ExpectQuery("FROM contacts ct\\s+JOIN companies co").
		WithArgs("ct-1").
		WillReturnRows(pgxmock.NewRows(cols).AddRow(row...))

	got, err := New(mock).GetContactWithCompany(context.Background(), "ct-1")
	require.NoError(t, err)

	assert.Equal(t, "ct-1", got.ID)
	assert.Equal(t, directory.SeniorityDirector, got.Seniority)
	assert.Equal(t, "+12127365000", *got.Phone)
	assert.Equal(t, "Northwind Media", got.Company.Name)
	assert.Equal(t, directory.EmployeeRangeLarge, got.Company.EmployeeCount)
	assert.Zero(t, got.Engagement.InteractionCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetContactWithCompanyNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM contacts ct").
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err = New(mock).GetContactWithCompany(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestListActiveContactsByCompany(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	company := sampleCompany()
	mock.ExpectQuery("FROM companies co").
		WithArgs("co-1").
		WillReturnRows(pgxmock.NewRows(directory.CompanyColumnList()).AddRow(directory.CompanyRow(company)...))
	mock.ExpectQuery("ORDER BY ct.seniority DESC NULLS LAST").
		WithArgs("co-1", 50).
		WillReturnRows(pgxmock.NewRows(directory.ContactColumnList()).
			AddRow(directory.ContactRow(sampleContact("ct-1", directory.SeniorityVP))...).
			AddRow(directory.ContactRow(sampleContact("ct-2", ""))...))

	got, err := New(mock).ListActiveContactsByCompany(context.Background(), "co-1", 50)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "ct-1", got[0].ID)
	assert.Equal(t, "co-1", got[1].Company.ID)
	assert.Equal(t, directory.Seniority(""), got[1].Seniority)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveContactsByCompanyUnknownCompany(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM companies co").
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	_, err = New(mock).ListActiveContactsByCompany(context.Background(), "nope", 10)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
