package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laporku/monthly-report-api/internal/models"
)

// ErrNotFound indicates no document matched the identifier.
var ErrNotFound = errors.New("activity not found")

// CategoryCount is one bucket of the per-category grouping.
type CategoryCount struct {
	Category string
	Count    int64
}

// FinanceTotals sums income and expense over a filter scope.
type FinanceTotals struct {
	Income  float64
	Expense float64
}

// ActivityRepository manages activity persistence operations. Reads return
// raw documents so the serialization layer can stay schemaless end to end.
type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	List(ctx context.Context, filter bson.M) ([]bson.M, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	CategoryCounts(ctx context.Context, filter bson.M) ([]CategoryCount, error)
	FinanceTotals(ctx context.Context, filter bson.M) (FinanceTotals, error)
}

type activityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository constructs a repository over the activity collection.
func NewActivityRepository(db *mongo.Database) ActivityRepository {
	return &activityRepository{collection: db.Collection(models.ActivityCollection)}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, activity)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert activity: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return doc, nil
}

func (r *activityRepository) List(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return docs, nil
}

func (r *activityRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return false, fmt.Errorf("update activity: %w", err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *activityRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete activity: %w", err)
	}
	return result.DeletedCount == 1, nil
}

func (r *activityRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}
	return count, nil
}

func (r *activityRepository) CategoryCounts(ctx context.Context, filter bson.M) ([]CategoryCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate category counts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category *string `bson:"_id"`
		Count    int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode category counts: %w", err)
	}

	counts := make([]CategoryCount, 0, len(rows))
	for _, row := range rows {
		category := "unknown"
		if row.Category != nil && *row.Category != "" {
			category = *row.Category
		}
		counts = append(counts, CategoryCount{Category: category, Count: row.Count})
	}
	return counts, nil
}

func (r *activityRepository) FinanceTotals(ctx context.Context, filter bson.M) (FinanceTotals, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "income", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$income", 0}}}}}},
			{Key: "expense", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$expense", 0}}}}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return FinanceTotals{}, fmt.Errorf("aggregate finance totals: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Income  float64 `bson:"income"`
		Expense float64 `bson:"expense"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return FinanceTotals{}, fmt.Errorf("decode finance totals: %w", err)
	}

	if len(rows) == 0 {
		return FinanceTotals{}, nil
	}
	return FinanceTotals{Income: rows[0].Income, Expense: rows[0].Expense}, nil
}
