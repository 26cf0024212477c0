// Package catalog holds the fixed job catalog and the platform's selectable
// skill list.
//
// The catalog is deliberately a compiled-in dataset, not a config file or an
// admin API: postings are seeded into the store once at startup and are
// read-only for the lifetime of the process. Keeping the data here (rather
// than as module-level state scattered around the app) gives every consumer
// an explicit initialization step and lets tests build a fresh store from a
// known dataset.
package catalog

import "github.com/jobwise/jobwise/internal/model"

// Skills is the list of skills a user can declare on their profile.
// The order here is the display order in the profile editor.
var Skills = []string{
	"Python", "JavaScript", "React", "Node.js", "Java", "C++", "C#",
	"SQL", "MongoDB", "Docker", "AWS", "Azure", "GCP",
	"Machine Learning", "Data Science", "DevOps", "UI/UX Design",
	"Project Management", "Agile", "Scrum", "TypeScript",
}

// Jobs returns the seed catalog as a fresh slice.
//
// Returning a copy means callers can't mutate the canonical dataset — every
// invariant downstream (matching never reorders the catalog, search is a
// pure filter) assumes the seed order is stable.
func Jobs() []model.Job {
	out := make([]model.Job, len(jobs))
	copy(out, jobs)
	return out
}

var jobs = []model.Job{
	{
		ID:             "1",
		Title:          "Frontend Developer",
		Company:        "Tech Solutions Inc.",
		Description:    "We are looking for a skilled Frontend Developer to join our team. You'll be responsible for building responsive user interfaces using React.",
		RequiredSkills: []string{"JavaScript", "React", "TypeScript", "HTML", "CSS"},
		Location:       "San Francisco, CA",
		Salary:         "$100,000 - $130,000",
		PostedDate:     "2025-04-20",
	},
	{
		ID:             "2",
		Title:          "Backend Developer",
		Company:        "DataWare Systems",
		Description:    "Join our backend team to build robust and scalable APIs using Node.js and Express.",
		RequiredSkills: []string{"JavaScript", "Node.js", "Express", "MongoDB", "SQL"},
		Location:       "Remote",
		Salary:         "$90,000 - $120,000",
		PostedDate:     "2025-04-22",
	},
	{
		ID:             "3",
		Title:          "Data Scientist",
		Company:        "Analytics Pro",
		Description:    "Looking for a data scientist to analyze large datasets and build machine learning models.",
		RequiredSkills: []string{"Python", "Machine Learning", "Data Science", "SQL", "Statistics"},
		Location:       "New York, NY",
		Salary:         "$120,000 - $150,000",
		PostedDate:     "2025-04-15",
	},
	{
		ID:             "4",
		Title:          "DevOps Engineer",
		Company:        "Cloud Systems",
		Description:    "Help us automate and optimize our infrastructure using cloud technologies.",
		RequiredSkills: []string{"DevOps", "AWS", "Docker", "Kubernetes", "CI/CD"},
		Location:       "Chicago, IL",
		Salary:         "$110,000 - $140,000",
		PostedDate:     "2025-04-18",
	},
	{
		ID:             "5",
		Title:          "Full Stack Developer",
		Company:        "WebApp Solutions",
		Description:    "Looking for a full stack developer who can work on both frontend and backend technologies.",
		RequiredSkills: []string{"JavaScript", "React", "Node.js", "MongoDB", "TypeScript"},
		Location:       "Austin, TX",
		Salary:         "$95,000 - $125,000",
		PostedDate:     "2025-04-23",
	},
	{
		ID:             "6",
		Title:          "Machine Learning Engineer",
		Company:        "AI Innovations",
		Description:    "Join our team to build cutting-edge machine learning models for real-world applications.",
		RequiredSkills: []string{"Python", "Machine Learning", "TensorFlow", "PyTorch", "Data Science"},
		Location:       "Seattle, WA",
		Salary:         "$130,000 - $160,000",
		PostedDate:     "2025-04-17",
	},
	{
		ID:             "7",
		Title:          "UI/UX Designer",
		Company:        "Design Masters",
		Description:    "Create beautiful and functional user interfaces for web and mobile applications.",
		RequiredSkills: []string{"UI/UX Design", "Figma", "Adobe XD", "User Research"},
		Location:       "Los Angeles, CA",
		Salary:         "$85,000 - $110,000",
		PostedDate:     "2025-04-21",
	},
}
