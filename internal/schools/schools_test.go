package schools

import "testing"

func TestLookup(t *testing.T) {
	s, ok := Lookup("westlake")
	if !ok {
		t.Fatalf("westlake should exist")
	}
	if s.Name != "Westlake High School" || s.City != "Austin" {
		t.Fatalf("unexpected entry %+v", s)
	}

	if _, ok := Lookup("hogwarts"); ok {
		t.Fatalf("unknown id should miss")
	}
}

func TestDisplayName_FallsBackToRawID(t *testing.T) {
	if got := DisplayName("ut_austin"); got != "University of Texas at Austin" {
		t.Fatalf("got %q", got)
	}
	if got := DisplayName("hogwarts"); got != "hogwarts" {
		t.Fatalf("expected raw id fallback, got %q", got)
	}
}

func TestAll(t *testing.T) {
	d := All()
	if len(d.HighSchools) != 8 || len(d.Colleges) != 8 {
		t.Fatalf("directory sizes changed: %d high schools, %d colleges", len(d.HighSchools), len(d.Colleges))
	}
}
