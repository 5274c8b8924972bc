package query

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityFilterParams narrows activity listings. Zero values impose no
// constraint; an all-zero params matches every document.
type ActivityFilterParams struct {
	Month    int
	Year     int
	Category string
	Search   string
}

// FilterBuilder translates filter parameters into store filter expressions.
type FilterBuilder struct {
	lenientDateFilter bool
	now               func() time.Time
}

// NewFilterBuilder constructs a filter builder. With lenientDateFilter set,
// an unresolvable month window drops the date condition instead of failing
// the whole query, so a bad month silently returns the unfiltered set.
func NewFilterBuilder(lenientDateFilter bool) *FilterBuilder {
	return &FilterBuilder{lenientDateFilter: lenientDateFilter, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (b *FilterBuilder) WithClock(now func() time.Time) *FilterBuilder {
	b.now = now
	return b
}

// Build combines the present conditions with logical AND:
// a date window when month or year is supplied, exact category equality,
// and a case-insensitive substring match over name, result and notes.
func (b *FilterBuilder) Build(p ActivityFilterParams) (bson.M, error) {
	filter := bson.M{}

	if p.Month != 0 || p.Year != 0 {
		window, err := ResolveWindow(p.Month, p.Year, b.now())
		switch {
		case err == nil:
			filter["date"] = bson.M{"$gte": window.Start, "$lt": window.End}
		case !b.lenientDateFilter:
			return nil, fmt.Errorf("resolve month window: %w", err)
		}
	}

	if p.Category != "" {
		filter["category"] = p.Category
	}

	if search := strings.TrimSpace(p.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"result": pattern},
			bson.M{"notes": pattern},
		}
	}

	return filter, nil
}
