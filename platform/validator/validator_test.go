package validator

import "testing"

func TestEntityIDRule(t *testing.T) {
	val := New()

	valid := []string{"cl9x2k3m40000abcd", "company_42", "3f2a6c1e-1111-4c4c-9d9d-abcdefabcdef"}
	for _, id := range valid {
		if err := val.Var(id, "entityid"); err != nil {
			t.Errorf("expected %q to be valid, got %v", id, err)
		}
	}

	invalid := []string{"", "has space", "semi;colon", "drop/table"}
	for _, id := range invalid {
		if err := val.Var(id, "entityid"); err == nil {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}
