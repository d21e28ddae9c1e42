package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const serverSelectionTimeout = 5 * time.Second

// Mongo is the production Store backed by a MongoDB collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect dials MongoDB and verifies the connection with a ping before
// returning. On failure the caller gets no adapter; there is no background
// reconnection and the process is expected to keep running without one.
func Connect(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Close releases the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Find(ctx context.Context, q QuerySpec) ([]Document, error) {
	filter := bson.D{}
	if q.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: containsPattern(q.Category)})
	}
	if q.Text != "" {
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: containsPattern(q.Text)}},
			bson.D{{Key: "content", Value: containsPattern(q.Text)}},
		}})
	}
	if !q.Since.IsZero() {
		filter = append(filter, bson.E{Key: "published_date", Value: bson.D{{Key: "$gte", Value: q.Since}}})
	}

	order := 1
	if q.SortDesc {
		order = -1
	}
	opts := options.Find().
		SetSort(bson.D{{Key: q.SortKey, Value: order}}).
		SetLimit(int64(q.Limit))

	cursor, err := m.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find failed: %w", err)
	}
	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read query results: %w", err)
	}
	return docs, nil
}

func (m *Mongo) CategoryCounts(ctx context.Context) ([]CategoryCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := m.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("category aggregation failed: %w", err)
	}
	var rows []struct {
		Name  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to read aggregation results: %w", err)
	}

	counts := make([]CategoryCount, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, CategoryCount{Name: r.Name, Count: r.Count})
	}
	return counts, nil
}

func (m *Mongo) Categories(ctx context.Context) ([]string, error) {
	var values []string
	if err := m.coll.Distinct(ctx, "category", bson.D{}).Decode(&values); err != nil {
		return nil, fmt.Errorf("distinct categories failed: %w", err)
	}
	return values, nil
}

// containsPattern builds a case-insensitive substring match. The user value
// is quoted so it matches literally rather than as a regex.
func containsPattern(value string) bson.D {
	return bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(value)},
		{Key: "$options", Value: "i"},
	}
}
