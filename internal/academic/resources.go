package academic

// Resource is one external study aid entry.
type Resource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ResourceDirectory groups the static academic resource listing.
type ResourceDirectory struct {
	SummarizingTools []Resource `json:"summarizing_tools"`
	StudyTools       []Resource `json:"study_tools"`
	ResearchTools    []Resource `json:"research_tools"`
}

// Resources returns the static academic resource directory.
func Resources() ResourceDirectory {
	return ResourceDirectory{
		SummarizingTools: []Resource{
			{Name: "QuillBot Summarizer", URL: "https://quillbot.com/summarize", Description: "AI-powered text summarization"},
			{Name: "SMMRY", URL: "https://smmry.com/", Description: "Automatic article summarizer"},
			{Name: "Resoomer", URL: "https://resoomer.com/", Description: "Summarize your documents online"},
		},
		StudyTools: []Resource{
			{Name: "Khan Academy", URL: "https://khanacademy.org", Description: "Free educational content"},
			{Name: "Coursera", URL: "https://coursera.org", Description: "Online courses from universities"},
			{Name: "Quizlet", URL: "https://quizlet.com", Description: "Flashcards and study sets"},
		},
		ResearchTools: []Resource{
			{Name: "Google Scholar", URL: "https://scholar.google.com", Description: "Academic search engine"},
			{Name: "JSTOR", URL: "https://jstor.org", Description: "Academic articles and books"},
			{Name: "ResearchGate", URL: "https://researchgate.net", Description: "Academic networking platform"},
		},
	}
}
