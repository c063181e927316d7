package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const tagCollection = "tags"

// TagRepository persists tags.
type TagRepository struct {
	coll *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{coll: db.Collection(tagCollection)}
}

type mongoTag struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (r *TagRepository) Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	res, err := r.coll.InsertOne(ctx, mongoTag{Name: tag.Name})
	if err != nil {
		return nil, fmt.Errorf("insert tag: %w", err)
	}

	created := *tag
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*domain.Tag, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTagNotFound
	}

	var mt mongoTag
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return &domain.Tag{ID: mt.ID.Hex(), Name: mt.Name}, nil
}

// FindByIDs resolves a set of tag ids; any unresolvable id fails the whole
// call with domain.ErrTagNotFound.
func (r *TagRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Tag, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, domain.ErrTagNotFound
		}
		oids = append(oids, oid)
	}

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	defer cur.Close(ctx)

	found := make(map[string]domain.Tag, len(ids))
	for cur.Next(ctx) {
		var mt mongoTag
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode tag: %w", err)
		}
		found[mt.ID.Hex()] = domain.Tag{ID: mt.ID.Hex(), Name: mt.Name}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}

	// Preserve request order and catch missing ids.
	tags := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		tag, ok := found[id]
		if !ok {
			return nil, domain.ErrTagNotFound
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (r *TagRepository) FindAll(ctx context.Context) ([]domain.Tag, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find tags: %w", err)
	}
	defer cur.Close(ctx)

	var tags []domain.Tag
	for cur.Next(ctx) {
		var mt mongoTag
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode tag: %w", err)
		}
		tags = append(tags, domain.Tag{ID: mt.ID.Hex(), Name: mt.Name})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error) {
	oid, err := primitive.ObjectIDFromHex(tag.ID)
	if err != nil {
		return nil, domain.ErrTagNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"name": tag.Name}})
	if err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTagNotFound
	}
	return tag, nil
}

func (r *TagRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTagNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTagNotFound
	}
	return nil
}
