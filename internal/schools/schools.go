package schools

// School is one entry in the static Texas school directory.
type School struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	District string `json:"district,omitempty"`
	Type     string `json:"type,omitempty"`
	City     string `json:"city"`
}

// Directory is the two-section listing served by /api/schools.
type Directory struct {
	HighSchools []School `json:"high_schools"`
	Colleges    []School `json:"colleges"`
}

var highSchools = []School{
	{ID: "plano_east", Name: "Plano East Senior High School", District: "Plano ISD", City: "Plano"},
	{ID: "westlake", Name: "Westlake High School", District: "Eanes ISD", City: "Austin"},
	{ID: "highland_park", Name: "Highland Park High School", District: "Highland Park ISD", City: "Dallas"},
	{ID: "katy", Name: "Katy High School", District: "Katy ISD", City: "Katy"},
	{ID: "allen", Name: "Allen High School", District: "Allen ISD", City: "Allen"},
	{ID: "southlake_carroll", Name: "Southlake Carroll High School", District: "Carroll ISD", City: "Southlake"},
	{ID: "cypress_falls", Name: "Cypress Falls High School", District: "Cy-Fair ISD", City: "Houston"},
	{ID: "frisco", Name: "Frisco High School", District: "Frisco ISD", City: "Frisco"},
}

var colleges = []School{
	{ID: "ut_austin", Name: "University of Texas at Austin", Type: "Public University", City: "Austin"},
	{ID: "texas_am", Name: "Texas A&M University", Type: "Public University", City: "College Station"},
	{ID: "rice", Name: "Rice University", Type: "Private University", City: "Houston"},
	{ID: "ttu", Name: "Texas Tech University", Type: "Public University", City: "Lubbock"},
	{ID: "uh", Name: "University of Houston", Type: "Public University", City: "Houston"},
	{ID: "tcu", Name: "Texas Christian University", Type: "Private University", City: "Fort Worth"},
	{ID: "baylor", Name: "Baylor University", Type: "Private University", City: "Waco"},
	{ID: "utd", Name: "University of Texas at Dallas", Type: "Public University", City: "Richardson"},
}

var byID = func() map[string]School {
	m := make(map[string]School, len(highSchools)+len(colleges))
	for _, s := range highSchools {
		m[s.ID] = s
	}
	for _, s := range colleges {
		m[s.ID] = s
	}
	return m
}()

// All returns the full directory.
func All() Directory {
	return Directory{HighSchools: highSchools, Colleges: colleges}
}

// Lookup returns the school for the given id.
func Lookup(id string) (School, bool) {
	s, ok := byID[id]
	return s, ok
}

// DisplayName resolves a school id to its display name, falling back to the
// raw id when the directory has no entry for it.
func DisplayName(id string) string {
	if s, ok := byID[id]; ok {
		return s.Name
	}
	return id
}
