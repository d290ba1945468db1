package planner

import (
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
)

type bucketRule struct {
	bucket  domain.Bucket
	needles []string
}

// bucketRules is checked in order; the first substring hit wins.
var bucketRules = []bucketRule{
	{domain.BucketFamily, []string{"family"}},
	{domain.BucketHealth, []string{"health"}},
	{domain.BucketWork, []string{"work", "business"}},
	{domain.BucketPersonal, []string{"personal", "social"}},
	{domain.BucketTravel, []string{"travel"}},
	{domain.BucketDefault, []string{"default"}},
}

// ResolveBucket classifies an item for presentation. Default markers always
// land in the default bucket. A category is matched case-insensitively by
// substring. Without a category, a known untimed item is allDay; unknown
// timing falls back to default.
func ResolveBucket(category string, isDefault bool, hasTime *bool) domain.Bucket {
	if isDefault {
		return domain.BucketDefault
	}
	if category != "" {
		normalized := strings.ToLower(category)
		for _, rule := range bucketRules {
			for _, needle := range rule.needles {
				if strings.Contains(normalized, needle) {
					return rule.bucket
				}
			}
		}
	}
	if hasTime != nil && !*hasTime {
		return domain.BucketAllDay
	}
	return domain.BucketDefault
}

// BucketOf resolves an execution task.
func BucketOf(t domain.ExecutionTask) domain.Bucket {
	hasTime := t.HasTime
	return ResolveBucket(t.Category, t.IsDefault, &hasTime)
}

// EventBucket resolves a calendar event.
func EventBucket(e domain.CalendarEvent) domain.Bucket {
	hasTime := e.HasTime
	return ResolveBucket(e.Category, false, &hasTime)
}

// LegendEntry pairs a bucket with its display label.
type LegendEntry struct {
	Bucket domain.Bucket
	Label  string
}

// Legend lists every bucket in display order.
func Legend() []LegendEntry {
	return []LegendEntry{
		{domain.BucketFamily, "Family"},
		{domain.BucketHealth, "Health"},
		{domain.BucketWork, "Work"},
		{domain.BucketPersonal, "Personal"},
		{domain.BucketTravel, "Travel"},
		{domain.BucketDefault, "Default"},
		{domain.BucketAllDay, "All day"},
	}
}
