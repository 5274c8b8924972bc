package service

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/laporku/monthly-report-api/internal/models"
	"github.com/laporku/monthly-report-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// fakeStore implements the repository over an in-memory slice, honoring
// date-window and category conditions so aggregate behavior can be
// exercised end to end without a running store.
type fakeStore struct {
	activities []models.Activity
	lastFilter bson.M
	lastUpdate bson.M
	err        error
}

func (f *fakeStore) Create(_ context.Context, activity *models.Activity) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	activity.ID = primitive.NewObjectID()
	f.activities = append(f.activities, *activity)
	return activity.ID, nil
}

func (f *fakeStore) GetByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, activity := range f.activities {
		if activity.ID == id {
			return toDoc(activity), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) List(_ context.Context, filter bson.M) ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter

	docs := []bson.M{}
	for _, activity := range f.activities {
		if matches(activity, filter) {
			docs = append(docs, toDoc(activity))
		}
	}
	return docs, nil
}

func (f *fakeStore) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	f.lastUpdate = fields

	for i, activity := range f.activities {
		if activity.ID != id {
			continue
		}
		if name, ok := fields["name"].(string); ok {
			activity.Name = name
		}
		if notes, ok := fields["notes"].(string); ok {
			activity.Notes = &notes
		}
		if updatedAt, ok := fields["updated_at"].(time.Time); ok {
			activity.UpdatedAt = &updatedAt
		}
		f.activities[i] = activity
		return true, nil
	}
	return false, nil
}

func (f *fakeStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for i, activity := range f.activities {
		if activity.ID == id {
			f.activities = append(f.activities[:i], f.activities[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Count(_ context.Context, filter bson.M) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, activity := range f.activities {
		if matches(activity, filter) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) CategoryCounts(_ context.Context, filter bson.M) ([]repository.CategoryCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	buckets := map[string]int64{}
	for _, activity := range f.activities {
		if !matches(activity, filter) {
			continue
		}
		category := activity.Category
		if category == "" {
			category = "unknown"
		}
		buckets[category]++
	}

	counts := make([]repository.CategoryCount, 0, len(buckets))
	for category, count := range buckets {
		counts = append(counts, repository.CategoryCount{Category: category, Count: count})
	}
	return counts, nil
}

func (f *fakeStore) FinanceTotals(_ context.Context, filter bson.M) (repository.FinanceTotals, error) {
	if f.err != nil {
		return repository.FinanceTotals{}, f.err
	}
	var totals repository.FinanceTotals
	for _, activity := range f.activities {
		if matches(activity, filter) {
			totals.Income += activity.Income
			totals.Expense += activity.Expense
		}
	}
	return totals, nil
}

func matches(activity models.Activity, filter bson.M) bool {
	if condition, ok := filter["date"].(bson.M); ok {
		start := condition["$gte"].(time.Time)
		end := condition["$lt"].(time.Time)
		if activity.Date.Before(start) || !activity.Date.Before(end) {
			return false
		}
	}
	if category, ok := filter["category"].(string); ok && activity.Category != category {
		return false
	}
	return true
}

func toDoc(activity models.Activity) bson.M {
	doc := bson.M{
		"_id":      activity.ID,
		"date":     activity.Date,
		"name":     activity.Name,
		"category": activity.Category,
		"duration": activity.Duration,
		"income":   activity.Income,
		"expense":  activity.Expense,
	}
	if activity.Notes != nil {
		doc["notes"] = *activity.Notes
	}
	if activity.Result != nil {
		doc["result"] = *activity.Result
	}
	if activity.FinanceCategory != nil {
		doc["finance_category"] = *activity.FinanceCategory
	}
	if activity.UpdatedAt != nil {
		doc["updated_at"] = *activity.UpdatedAt
	}
	attachments := primitive.A{}
	for _, attachment := range activity.Attachments {
		attachments = append(attachments, bson.M{
			"filename": attachment.Filename,
			"url":      attachment.URL,
		})
	}
	doc["attachments"] = attachments
	return doc
}
