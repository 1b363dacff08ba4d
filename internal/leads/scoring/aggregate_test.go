package scoring

import (
	"testing"

	"directory_backend/internal/directory"
)

func TestCalculateAverageLeadScoreEmpty(t *testing.T) {
	if got := CalculateAverageLeadScoreAt(nil, fixedNow); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestCalculateAverageLeadScoreRounds(t *testing.T) {
	empty := directory.ContactWithCompany{}
	startup := directory.ContactWithCompany{}
	startup.Company.EmployeeCount = directory.EmployeeRangeStartup

	// 4 and 5 average to 4.5, which rounds away from zero.
	got := CalculateAverageLeadScoreAt([]directory.ContactWithCompany{empty, startup}, fixedNow)
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}

	got = CalculateAverageLeadScoreAt([]directory.ContactWithCompany{fullContact(), empty}, fixedNow)
	if got != 51 {
		t.Fatalf("expected 51, got %d", got)
	}
}

func TestGetTopLeads(t *testing.T) {
	low := directory.ContactWithCompany{}
	low.ID = "low"

	mid := directory.ContactWithCompany{}
	mid.ID = "mid"
	mid.Seniority = directory.SeniorityDirector

	midTwin := mid
	midTwin.ID = "mid-twin"

	high := fullContact()
	high.ID = "high"

	contacts := []directory.ContactWithCompany{low, mid, high, midTwin}

	cases := []struct {
		limit   int
		wantIDs []string
	}{
		{1, []string{"high"}},
		{3, []string{"high", "mid", "mid-twin"}},
		{10, []string{"high", "mid", "mid-twin", "low"}},
		{0, []string{}},
		{-3, []string{}},
	}

	for _, tc := range cases {
		got := GetTopLeadsAt(contacts, tc.limit, fixedNow)
		if len(got) != len(tc.wantIDs) {
			t.Fatalf("limit %d: expected %d leads, got %d", tc.limit, len(tc.wantIDs), len(got))
		}
		for i, id := range tc.wantIDs {
			if got[i].ID != id {
				t.Fatalf("limit %d: position %d = %s, want %s", tc.limit, i, got[i].ID, id)
			}
			if i > 0 && got[i].LeadScore.Total > got[i-1].LeadScore.Total {
				t.Fatalf("limit %d: not sorted descending at %d", tc.limit, i)
			}
		}
	}
}

func TestGetTopLeadsDoesNotMutateInput(t *testing.T) {
	a := directory.ContactWithCompany{}
	a.ID = "a"
	b := fullContact()
	b.ID = "b"
	contacts := []directory.ContactWithCompany{a, b}

	_ = GetTopLeadsAt(contacts, 2, fixedNow)

	if contacts[0].ID != "a" || contacts[1].ID != "b" {
		t.Fatalf("input order changed: %s, %s", contacts[0].ID, contacts[1].ID)
	}
}
