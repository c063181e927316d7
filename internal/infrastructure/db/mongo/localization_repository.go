package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const localizationCollection = "localization_messages"

// LocalizationRepository persists translated messages keyed by (key, locale).
type LocalizationRepository struct {
	coll *mongo.Collection
}

func NewLocalizationRepository(db *mongo.Database) *LocalizationRepository {
	return &LocalizationRepository{coll: db.Collection(localizationCollection)}
}

type mongoMessage struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Key    string             `bson:"message_key"`
	Locale string             `bson:"locale"`
	Value  string             `bson:"message_value"`
}

func (r *LocalizationRepository) FindByID(ctx context.Context, id string) (*domain.Message, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *LocalizationRepository) FindByKeyAndLocale(ctx context.Context, key, locale string) (*domain.Message, error) {
	return r.findOne(ctx, bson.M{"message_key": key, "locale": locale})
}

func (r *LocalizationRepository) FindByLocale(ctx context.Context, locale string) ([]domain.Message, error) {
	cur, err := r.coll.Find(ctx, bson.M{"locale": locale})
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	defer cur.Close(ctx)

	var messages []domain.Message
	for cur.Next(ctx) {
		var mm mongoMessage
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, *mm.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}
	return messages, nil
}

func (r *LocalizationRepository) ExistsByKeyAndLocale(ctx context.Context, key, locale string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"message_key": key, "locale": locale})
	if err != nil {
		return false, fmt.Errorf("count messages: %w", err)
	}
	return n > 0, nil
}

// Save inserts when the message has no id, replaces otherwise.
func (r *LocalizationRepository) Save(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	doc := mongoMessage{Key: msg.Key, Locale: msg.Locale, Value: msg.Value}

	if msg.ID == "" {
		res, err := r.coll.InsertOne(ctx, doc)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrDuplicateMessage
			}
			return nil, fmt.Errorf("insert message: %w", err)
		}
		saved := *msg
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			saved.ID = oid.Hex()
		}
		return &saved, nil
	}

	oid, err := primitive.ObjectIDFromHex(msg.ID)
	if err != nil {
		return nil, domain.ErrMessageNotFound
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateMessage
		}
		return nil, fmt.Errorf("update message: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMessageNotFound
	}
	return msg, nil
}

func (r *LocalizationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMessageNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *LocalizationRepository) findOne(ctx context.Context, filter bson.M) (*domain.Message, error) {
	var mm mongoMessage
	if err := r.coll.FindOne(ctx, filter).Decode(&mm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}
	return mm.toDomain(), nil
}

func (mm *mongoMessage) toDomain() *domain.Message {
	return &domain.Message{
		ID:     mm.ID.Hex(),
		Key:    mm.Key,
		Locale: mm.Locale,
		Value:  mm.Value,
	}
}
