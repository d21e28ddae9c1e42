// Package seed populates the news collection with the demo corpus and the
// indexes the query paths expect. It is a setup collaborator: the serving
// core never creates indexes or writes documents.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Run wipes the collection, inserts the sample articles, and creates the
// category, published_date, and text indexes.
func Run(ctx context.Context, uri, database, collection string) error {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	coll := client.Database(database).Collection(collection)

	if _, err := coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear collection: %w", err)
	}

	docs := SampleArticles(time.Now())
	inserts := make([]any, 0, len(docs))
	for _, doc := range docs {
		inserts = append(inserts, doc)
	}
	if _, err := coll.InsertMany(ctx, inserts); err != nil {
		return fmt.Errorf("failed to insert sample articles: %w", err)
	}
	slog.Info("inserted sample articles", "count", len(docs))

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "published_date", Value: -1}}},
		{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "content", Value: "text"}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	slog.Info("created indexes", "count", len(indexes))

	var categories []string
	if err := coll.Distinct(ctx, "category", bson.D{}).Decode(&categories); err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	slog.Info("database seeded",
		"database", database,
		"collection", collection,
		"categories", strings.Join(categories, ", "))

	return nil
}
