package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const postCollection = "posts"

// PostRepository persists posts. Tags are embedded as {id, name} snapshots;
// the tags collection remains the source of truth for tag CRUD.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postCollection)}
}

type mongoTagRef struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
}

type mongoPost struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Content        string             `bson:"content"`
	AuthorID       string             `bson:"author_id,omitempty"`
	AuthorUsername string             `bson:"author_username,omitempty"`
	Tags           []mongoTagRef      `bson:"tags"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	doc := toMongoPost(post)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *PostRepository) FindByAuthorID(ctx context.Context, authorID string) ([]domain.Post, error) {
	return r.find(ctx, bson.M{"author_id": authorID})
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	doc := toMongoPost(post)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) find(ctx context.Context, filter bson.M) ([]domain.Post, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []domain.Post
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, *mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func toMongoPost(post *domain.Post) mongoPost {
	tags := make([]mongoTagRef, 0, len(post.Tags))
	for _, t := range post.Tags {
		tags = append(tags, mongoTagRef{ID: t.ID, Name: t.Name})
	}
	return mongoPost{
		Title:          post.Title,
		Content:        post.Content,
		AuthorID:       post.AuthorID,
		AuthorUsername: post.AuthorUsername,
		Tags:           tags,
		CreatedAt:      post.CreatedAt.Unix(),
		UpdatedAt:      post.UpdatedAt.Unix(),
	}
}

func (mp *mongoPost) toDomain() *domain.Post {
	tags := make([]domain.Tag, 0, len(mp.Tags))
	for _, t := range mp.Tags {
		tags = append(tags, domain.Tag{ID: t.ID, Name: t.Name})
	}
	return &domain.Post{
		ID:             mp.ID.Hex(),
		Title:          mp.Title,
		Content:        mp.Content,
		AuthorID:       mp.AuthorID,
		AuthorUsername: mp.AuthorUsername,
		Tags:           tags,
		CreatedAt:      unixToTime(mp.CreatedAt),
		UpdatedAt:      unixToTime(mp.UpdatedAt),
	}
}
