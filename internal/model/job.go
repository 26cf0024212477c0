package model

// Job represents a single job posting in the catalog.
//
// The catalog is seeded once at startup and is read-only afterwards — there
// are no create/update/delete operations on jobs anywhere in the app. All
// fields except RequiredSkills are plain display strings.
//
// RequiredSkills is treated as a set for matching (order irrelevant to the
// overlap computation) but we keep it as a slice so the display order from
// the seed dataset is stable.
type Job struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	Location       string   `json:"location"`
	Salary         string   `json:"salary"`
	PostedDate     string   `json:"postedDate"`
}
