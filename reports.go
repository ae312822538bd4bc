package planner

import "math"

// Reports are pure and stateless: every function here recomputes its
// result from the document passed in. The inputs are small enough that
// caching would only create invalidation problems.

// Progress summarizes checklist completion.
type Progress struct {
	Completed  int
	Total      int
	Percentage int // rounded, 0 when there is nothing to do
}

// TaskProgress counts completed tasks across the given sections.
func TaskProgress(sections []Section) Progress {
	var p Progress
	for _, sec := range sections {
		for _, t := range sec.Tasks {
			p.Total++
			if t.Completed {
				p.Completed++
			}
		}
	}
	if p.Total > 0 {
		p.Percentage = int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
	}
	return p
}

// SectionProgress returns the completion summary of a single section.
func SectionProgress(sec Section) Progress {
	return TaskProgress([]Section{sec})
}
