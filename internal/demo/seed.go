package demo

import (
	"fmt"
	"time"

	"github.com/five82/satchel/internal/storefront"
)

var seedSubjects = []string{"English", "Math", "Science", "Korean", "History", "Music"}

var seedPublishers = []string{"Bright Page", "Cedar Press", "Northwind Learning"}

var seedGrades = []string{"Elementary", "Middle school", "High school"}

// SeedProducts returns a deterministic demo catalog of textbooks, workbooks
// and handouts.
func SeedProducts() []storefront.RawProduct {
	base := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	kinds := []struct {
		sourceType string
		suffix     string
		price      int64
	}{
		{"textbook", "Textbook", 18000},
		{"workbook", "Workbook", 9500},
		{"handout", "Handout Pack", 3000},
	}

	var out []storefront.RawProduct
	id := int64(1)
	for i, subject := range seedSubjects {
		for j, kind := range kinds {
			for unit := 1; unit <= 2; unit++ {
				out = append(out, storefront.RawProduct{
					ID:         id,
					Title:      fmt.Sprintf("%s %s Unit %d", subject, kind.suffix, unit),
					SourceType: kind.sourceType,
					Price:      kind.price + int64((i*7+j*3+unit)%5)*500,
					Publisher:  seedPublishers[(i+j)%len(seedPublishers)],
					Grade:      seedGrades[(i+unit)%len(seedGrades)],
					Subject:    subject,
					CreatedAt:  base.Add(time.Duration(id) * time.Hour).Format(time.RFC3339),
				})
				id++
			}
		}
	}
	return out
}

// SeedFilters returns the filter groups the demo server advertises.
func SeedFilters() []storefront.FilterGroup {
	subjects := append([]string(nil), seedSubjects...)
	return []storefront.FilterGroup{
		{ID: 101, Title: "Subject", List: subjects, Category: "subject"},
		{ID: 102, Title: "Publisher", List: append([]string(nil), seedPublishers...), Category: "publisher"},
		{ID: 103, Title: "Grade", List: append([]string(nil), seedGrades...), Category: "grade"},
	}
}
