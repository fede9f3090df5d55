package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forn8njoell-cmd/promptstudio/internal/domain"
)

const (
	// CollectionName is the single collection holding prompt records.
	CollectionName = "prompts"

	// ListLimit caps every listing query.
	ListLimit = 100
)

// Store persists prompt records in one MongoDB collection. The underlying
// driver client is safe for concurrent use; Store adds no locking.
type Store struct {
	coll *mongo.Collection
}

func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(CollectionName)}
}

func (s *Store) Insert(ctx context.Context, p *domain.Prompt) error {
	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("inserting prompt: %w", err)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*domain.Prompt, error) {
	var p domain.Prompt
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching prompt %s: %w", id, err)
	}
	return &p, nil
}

func (s *Store) List(ctx context.Context, onlyFavorites bool) ([]domain.Prompt, error) {
	filter := bson.M{}
	if onlyFavorites {
		filter["is_favorite"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(ListLimit)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}

	prompts := make([]domain.Prompt, 0, ListLimit)
	if err := cursor.All(ctx, &prompts); err != nil {
		return nil, fmt.Errorf("decoding prompts: %w", err)
	}
	return prompts, nil
}

// SetFavorite writes a new favorite state. Callers read the current state
// first; two concurrent toggles on the same id can land on either final
// state. That race is accepted, no transaction guards it.
func (s *Store) SetFavorite(ctx context.Context, id string, favorite bool) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"is_favorite": favorite}},
	)
	if err != nil {
		return fmt.Errorf("updating favorite for prompt %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.PromptStore = (*Store)(nil)
