package directory

import "testing"

func TestSeniorityRankFollowsLadder(t *testing.T) {
	for i := 1; i < len(seniorityLadder); i++ {
		lower, higher := seniorityLadder[i-1], seniorityLadder[i]
		if lower.Rank() >= higher.Rank() {
			t.Fatalf("expected %s to rank below %s", lower, higher)
		}
	}
	if Seniority("").Rank() != 0 {
		t.Fatalf("expected absent seniority to rank 0")
	}
	if SeniorityFounderOwner.Rank() <= SeniorityCLevel.Rank() {
		t.Fatalf("expected founder to outrank C-level")
	}
}

func TestParseEnums(t *testing.T) {
	if got := ParseSeniority(" c_level "); got != SeniorityCLevel {
		t.Fatalf("ParseSeniority = %q", got)
	}
	if got := ParseSeniority("ceo"); got != "" {
		t.Fatalf("expected unknown seniority to parse as absent, got %q", got)
	}
	if got := ParseDepartment("media_buying"); got != DepartmentMediaBuying {
		t.Fatalf("ParseDepartment = %q", got)
	}
	if got := ParseCompanyType("PUBLISHER"); got != CompanyTypePublisher {
		t.Fatalf("ParseCompanyType = %q", got)
	}
	if got := ParseEmployeeRange("huge"); got != "" {
		t.Fatalf("expected unknown range to parse as absent, got %q", got)
	}
}
