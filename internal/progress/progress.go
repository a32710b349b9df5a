// Package progress computes checklist completion from checklist entries.
package progress

import (
	"sort"

	"github.com/mrlokans/birdr/internal/database"
)

// CategoryProgress holds the seen and unseen species of one category.
type CategoryProgress struct {
	Seen     map[string]struct{}
	Unseen   map[string]struct{}
	Complete float64
}

// Report is the completion summary of a checklist.
type Report struct {
	Name       string
	Complete   float64
	Categories map[string]*CategoryProgress
}

// Total returns the number of distinct species in the category.
func (c *CategoryProgress) Total() int {
	return len(c.Seen) + len(c.Unseen)
}

// SeenNames returns the seen species in alphabetical order.
func (c *CategoryProgress) SeenNames() []string {
	return sortedKeys(c.Seen)
}

// UnseenNames returns the unseen species in alphabetical order.
func (c *CategoryProgress) UnseenNames() []string {
	return sortedKeys(c.Unseen)
}

// CategoryNames returns the report's categories in alphabetical order.
func (r *Report) CategoryNames() []string {
	names := make([]string, 0, len(r.Categories))
	for name := range r.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SeenCount returns the number of seen species across all categories.
func (r *Report) SeenCount() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Seen)
	}
	return n
}

// TotalCount returns the number of species across all categories.
func (r *Report) TotalCount() int {
	n := 0
	for _, c := range r.Categories {
		n += c.Total()
	}
	return n
}

// BuildReport groups entries by category and computes completion fractions.
// Species are counted once per category no matter how often they appear.
// An empty checklist, or an empty category, is 0 complete.
func BuildReport(name string, entries []database.ChecklistEntry) *Report {
	report := &Report{
		Name:       name,
		Categories: make(map[string]*CategoryProgress),
	}

	for _, entry := range entries {
		category, ok := report.Categories[entry.Category]
		if !ok {
			category = &CategoryProgress{
				Seen:   make(map[string]struct{}),
				Unseen: make(map[string]struct{}),
			}
			report.Categories[entry.Category] = category
		}
		if entry.Seen {
			category.Seen[entry.Species] = struct{}{}
		} else {
			category.Unseen[entry.Species] = struct{}{}
		}
	}

	for _, category := range report.Categories {
		category.Complete = fraction(len(category.Seen), category.Total())
	}
	report.Complete = fraction(report.SeenCount(), report.TotalCount())

	return report
}

func fraction(seen, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(seen) / float64(total)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
