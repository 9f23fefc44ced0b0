package worklog

import (
	"slices"
	"strings"
)

// PriorityProject always sorts ahead of every other project.
const PriorityProject = "Rust"

// Groups maps project names to their records in input order. The zero value
// is ready to use.
type Groups struct {
	byProject map[string][]Record
}

// NewGroups returns an empty grouping.
func NewGroups() *Groups {
	return &Groups{byProject: make(map[string][]Record)}
}

// Add appends rec to its project's group.
func (g *Groups) Add(rec Record) {
	if g.byProject == nil {
		g.byProject = make(map[string][]Record)
	}
	g.byProject[rec.Project] = append(g.byProject[rec.Project], rec)
}

// Records returns the records stored for project, in the order they were added.
func (g *Groups) Records(project string) []Record {
	return g.byProject[project]
}

// Len returns the number of distinct projects.
func (g *Groups) Len() int {
	return len(g.byProject)
}

// Projects returns the project names ordered by CompareProjects.
func (g *Groups) Projects() []string {
	names := make([]string, 0, len(g.byProject))
	for name := range g.byProject {
		names = append(names, name)
	}
	slices.SortFunc(names, CompareProjects)
	return names
}

// CompareProjects orders PriorityProject first and everything else by plain
// byte-wise comparison. The priority rule overrides, it is not a tiebreak.
func CompareProjects(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == PriorityProject:
		return -1
	case b == PriorityProject:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
