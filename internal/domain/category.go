package domain

import "strings"

// Category buckets catalog courses for display. It is derived from the
// course ID prefix, never stored.
type Category string

const (
	CategoryCoreComputing   Category = "Core Computing"
	CategoryDomainElectives Category = "Domain Electives"
	CategoryGeneralAndMath  Category = "General & Math"
)

// Categories lists the buckets in display order.
var Categories = []Category{
	CategoryCoreComputing,
	CategoryDomainElectives,
	CategoryGeneralAndMath,
}

// CategoryRule maps a set of course-ID prefixes onto a category.
type CategoryRule struct {
	Prefixes []string
	Category Category
}

// categoryRules is the ordered rule list. First match wins; IDs matching
// no rule fall into the General & Math bucket.
var categoryRules = []CategoryRule{
	{Prefixes: []string{"CMPC", "CSDC"}, Category: CategoryCoreComputing},
	{Prefixes: []string{"CSDE", "ITDC", "SEDC", "DSDC", "DSDE", "AIDC"}, Category: CategoryDomainElectives},
}

// CategoryOf returns the category bucket for a course ID.
func CategoryOf(courseID string) Category {
	for _, rule := range categoryRules {
		for _, p := range rule.Prefixes {
			if strings.HasPrefix(courseID, p) {
				return rule.Category
			}
		}
	}
	return CategoryGeneralAndMath
}
