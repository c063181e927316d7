package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository persists the security audit trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Username  string `bson:"username,omitempty"`
	Action    string `bson:"action"`
	Resource  string `bson:"resource,omitempty"`
	Decision  string `bson:"decision"`
	Reason    string `bson:"reason,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Username:  event.Username,
		Action:    event.Action,
		Resource:  event.Resource,
		Decision:  event.Decision,
		Reason:    event.Reason,
		Timestamp: event.Timestamp.UnixMilli(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// FindRecent returns up to limit events, newest first.
func (r *AuditRepository) FindRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuditEvent
	for cur.Next(ctx) {
		var me mongoAuditEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, domain.AuditEvent{
			Username:  me.Username,
			Action:    me.Action,
			Resource:  me.Resource,
			Decision:  me.Decision,
			Reason:    me.Reason,
			Timestamp: unixMilliToTime(me.Timestamp),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit events: %w", err)
	}
	return events, nil
}

func unixMilliToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ts).UTC()
}
