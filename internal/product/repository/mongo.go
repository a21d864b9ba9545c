package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/productshowcase/catalog-service/internal/database"
	"github.com/productshowcase/catalog-service/internal/product"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository on top of a MongoDB collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

// EnsureIndexes creates the indexes backing the listing filters and sort orders.
func (m *MongoRepo) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}},
	}
	if _, err := m.col.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}

func (m *MongoRepo) Find(ctx context.Context, q product.ListQuery) ([]product.Product, int64, error) {
	filter := q.Filter()
	opts := options.Find().
		SetSort(q.SortSpec()).
		SetSkip(q.Skip()).
		SetLimit(q.Limit())

	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find products: %w", err)
	}
	out := []product.Product{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("decode products: %w", err)
	}

	total, err := m.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return out, total, nil
}

// Distinct groups on field instead of running the distinct command, which is
// not part of Stable API v1 and is rejected by strict clients.
func (m *MongoRepo) Distinct(ctx context.Context, field string) ([]string, error) {
	if err := checkFacet(field); err != nil {
		return nil, err
	}
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$" + field}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cur, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}
	var groups []struct {
		Value interface{} `bson:"_id"`
	}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("decode distinct %s: %w", field, err)
	}
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if s, ok := g.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *MongoRepo) InsertMany(ctx context.Context, products []product.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(products))
	for i := range products {
		if products[i].CreatedAt.IsZero() {
			products[i].CreatedAt = now
		}
		docs = append(docs, products[i])
	}
	res, err := m.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert products: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (m *MongoRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := m.col.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *MongoRepo) Ping(ctx context.Context) error {
	return database.Ping(ctx, m.col.Database().Client())
}
