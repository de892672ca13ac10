package academic

import "fmt"

// Citation carries the fields of an MLA citation request. Which fields are
// used depends on Type.
type Citation struct {
	Type      string `json:"type"` // website, book
	Author    string `json:"author"`
	Title     string `json:"title"`
	Website   string `json:"website"`
	URL       string `json:"url"`
	Date      string `json:"date"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
}

const unsupportedCitation = "Citation format not supported yet."

// FormatMLA renders an MLA citation string for websites and books.
func FormatMLA(c Citation) string {
	switch c.Type {
	case "website", "":
		return fmt.Sprintf("%s. %q %s, %s, %s.", c.Author, c.Title, c.Website, c.Date, c.URL)
	case "book":
		return fmt.Sprintf("%s. %s. %s, %s.", c.Author, c.Title, c.Publisher, c.Year)
	default:
		return unsupportedCitation
	}
}
