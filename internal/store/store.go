package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
)

// Collection names in the document store.
const (
	collArticles     = "articles"
	collVideos       = "videos"
	collResearch     = "research"
	collLegal        = "legal"
	collComments     = "comments"
	collUsers        = "users"
	collTickers      = "news-tickers"
	collSportBanners = "sport-banners"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var (
	// ErrDuplicate is returned when a unique index rejects a write
	ErrDuplicate = errors.New("document already exists")
	// ErrNotFound is returned when a write targets a document that does
	// not exist
	ErrNotFound = errors.New("document does not exist")
)

// Store wraps the MongoDB client and database handle.
// Collection services embed *Store for access to typed collections.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// New connects to MongoDB, verifies the connection and ensures indexes
func New(ctx context.Context, cfg *config.MongoConfig) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mongo_url is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	s := &Store{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logging.GetLogger().With(zap.String("component", "store")),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = s.Close(context.Background())
		return nil, err
	}

	s.logger.Info("Document store connection established", zap.String("database", cfg.Database))

	return s, nil
}

// Close closes the MongoDB connection
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Health checks document store health
func (s *Store) Health(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	contentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "published_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	for _, name := range []string{collArticles, collVideos, collResearch, collLegal} {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, contentIndexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "content_type", Value: 1}, {Key: "content_id", Value: 1}}},
	}
	if _, err := s.db.Collection(collComments).Indexes().CreateMany(ctx, commentIndexes); err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}

	userIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.db.Collection(collUsers).Indexes().CreateOne(ctx, userIndex); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	return nil
}

// ListOptions is the filter vocabulary shared by the content collections.
type ListOptions struct {
	Category     string
	FeaturedOnly bool
	Status       string // defaults to "published"
	Limit        int
}

// filter translates the options into a document-store query filter.
func (o ListOptions) filter() bson.M {
	f := bson.M{}
	status := o.Status
	if status == "" {
		status = "published"
	}
	f["status"] = status
	if o.Category != "" {
		f["category"] = o.Category
	}
	if o.FeaturedOnly {
		f["featured"] = true
	}
	return f
}

// limit clamps the requested result size into [1, maxLimit].
func (o ListOptions) limit() int64 {
	n := o.Limit
	if n <= 0 {
		n = defaultLimit
	}
	if n > maxLimit {
		n = maxLimit
	}
	return int64(n)
}

// listDocs runs a filtered, ordered, limited query against a collection.
// An empty result set is a valid, non-error outcome.
func listDocs[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, limit int64) ([]T, error) {
	opts := options.Find().SetSort(sort).SetLimit(limit)
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s documents: %w", coll.Name(), err)
	}
	return out, nil
}

// getDoc fetches one document by id. Not-found is (nil, nil), not an error;
// callers render a not-found state instead of failing.
func getDoc[T any](ctx context.Context, coll *mongo.Collection, id string) (*T, error) {
	var doc T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s document: %w", coll.Name(), err)
	}
	return &doc, nil
}

// insertDoc inserts a single document.
func insertDoc(ctx context.Context, coll *mongo.Collection, doc any) error {
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
	}
	return nil
}

// replaceDoc replaces a single document by id. Last writer wins; there are
// no optimistic-concurrency checks. Replacing a missing document is
// ErrNotFound, not a silent no-op.
func replaceDoc(ctx context.Context, coll *mongo.Collection, id string, doc any) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to update %s document: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteDoc removes a single document by id.
func deleteDoc(ctx context.Context, coll *mongo.Collection, id string) error {
	if _, err := coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete %s document: %w", coll.Name(), err)
	}
	return nil
}

var publishedDesc = bson.D{{Key: "published_at", Value: -1}}
