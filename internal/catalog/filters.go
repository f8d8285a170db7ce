package catalog

import "github.com/five82/satchel/internal/storefront"

// FilterList is one checkbox group in the filter UI.
type FilterList struct {
	ID       int
	Title    string
	List     []string
	Category string
}

// CheckboxList returns the fixed checkbox groups shown by the filter modal.
// They are not derived from server data. Each call returns a fresh copy.
func CheckboxList() []FilterList {
	return []FilterList{
		{
			ID:       1,
			Title:    "Grade level",
			List:     []string{"Grade 1 (Middle school)", "Grade 1 (High school)", "Grade 1 (Elementary)"},
			Category: "etc",
		},
		{
			ID:       2,
			Title:    "Textbook series",
			List:     []string{"the Best", "Core Reading Basics", "Core Reading Advanced", "Let's Go!!"},
			Category: "etc",
		},
		{
			ID:       3,
			Title:    "Lesson/UNIT",
			List:     []string{"UNIT 1", "UNIT 2", "UNIT 3", "UNIT 4"},
			Category: "unit",
		},
		{
			ID:       4,
			Title:    "Other",
			List:     []string{"Other"},
			Category: "etc",
		},
	}
}

// FiltersFromServer converts server filter groups.
func FiltersFromServer(groups []storefront.FilterGroup) []FilterList {
	if len(groups) == 0 {
		return nil
	}
	out := make([]FilterList, len(groups))
	for i, g := range groups {
		out[i] = FilterList{
			ID:       g.ID,
			Title:    g.Title,
			List:     append([]string(nil), g.List...),
			Category: g.Category,
		}
	}
	return out
}

// CloneFilters deep-copies filter groups.
func CloneFilters(filters []FilterList) []FilterList {
	if len(filters) == 0 {
		return nil
	}
	out := make([]FilterList, len(filters))
	for i, f := range filters {
		out[i] = f
		out[i].List = append([]string(nil), f.List...)
	}
	return out
}
