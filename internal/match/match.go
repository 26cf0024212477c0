// Package match implements the skill-matching and search engines.
//
// Everything in this package is a pure function over its inputs: no store
// access, no I/O, no mutation of the catalog slice passed in. The service
// layer owns fetching the catalog and the user's skills; this package owns
// the ranking and filtering rules.
//
// TWO DERIVED VALUES, TWO PURPOSES:
// The overlap count (how many skills user and job share) drives the ORDERING
// of recommendations. The match percentage (overlap / required, rounded)
// is a DISPLAY value only. They come from the same intersection but must not
// be conflated — a job requiring one skill the user has is a 100% match yet
// still ranks below a job sharing three skills.
package match

import (
	"math"
	"sort"
	"strings"

	"github.com/jobwise/jobwise/internal/model"
)

// Recommend returns the postings from catalog ranked by how many of the
// user's skills each posting requires.
//
// Rules:
//   - Empty userSkills returns the catalog unchanged. A user with no
//     declared skills sees everything rather than nothing.
//   - Otherwise only postings sharing at least one skill are included,
//     ordered by descending overlap count.
//   - The sort is stable: postings with equal overlap keep their relative
//     catalog order. sort.SliceStable (not sort.Slice) is load-bearing here.
//
// The returned slice is freshly allocated; the input catalog is never
// reordered or mutated.
func Recommend(userSkills []string, catalog []model.Job) []model.Job {
	if len(userSkills) == 0 {
		out := make([]model.Job, len(catalog))
		copy(out, catalog)
		return out
	}

	have := skillSet(userSkills)

	matched := make([]model.Job, 0, len(catalog))
	counts := make([]int, 0, len(catalog))
	for _, job := range catalog {
		n := overlap(have, job.RequiredSkills)
		if n == 0 {
			continue
		}
		matched = append(matched, job)
		counts = append(counts, n)
	}

	// Sort job and count together so the comparator always reads the count
	// that belongs to the element being moved.
	type ranked struct {
		job   model.Job
		count int
	}
	pairs := make([]ranked, len(matched))
	for i := range matched {
		pairs[i] = ranked{matched[i], counts[i]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].count > pairs[j].count
	})
	for i := range pairs {
		matched[i] = pairs[i].job
	}

	return matched
}

// OverlapCount returns how many of the user's skills the job requires.
func OverlapCount(userSkills []string, job model.Job) int {
	return overlap(skillSet(userSkills), job.RequiredSkills)
}

// Percentage returns the job's match percentage for the given skills:
// round(100 * overlap / len(requiredSkills)).
//
// A posting with an empty required-skill set is a 0% match, never a
// division fault. The seed catalog can't produce one, but the guard keeps
// the function total.
func Percentage(userSkills []string, job model.Job) int {
	if len(job.RequiredSkills) == 0 {
		return 0
	}
	n := overlap(skillSet(userSkills), job.RequiredSkills)
	return int(math.Round(100 * float64(n) / float64(len(job.RequiredSkills))))
}

// Search filters the catalog to postings containing query as a
// case-insensitive substring of the title, company, description, or any
// required skill. Catalog order is preserved — this is a filter, not a
// ranked search. The empty-query case is the caller's to handle (the job
// service returns the full catalog without calling Search).
func Search(query string, catalog []model.Job) []model.Job {
	q := strings.ToLower(query)

	out := make([]model.Job, 0, len(catalog))
	for _, job := range catalog {
		if jobContains(job, q) {
			out = append(out, job)
		}
	}
	return out
}

func jobContains(job model.Job, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(job.Title), loweredQuery) ||
		strings.Contains(strings.ToLower(job.Company), loweredQuery) ||
		strings.Contains(strings.ToLower(job.Description), loweredQuery) {
		return true
	}
	for _, skill := range job.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), loweredQuery) {
			return true
		}
	}
	return false
}

// skillSet builds a membership set from a skill slice. Matching is
// case-sensitive and exact: skills come from the fixed catalog.Skills list,
// so "python" and "Python" are not the same declared skill.
func skillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

func overlap(have map[string]struct{}, required []string) int {
	n := 0
	for _, s := range required {
		if _, ok := have[s]; ok {
			n++
		}
	}
	return n
}
