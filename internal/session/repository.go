package session

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides durable session persistence operations
type Repository interface {
	Save(ctx context.Context, sid string, rec *Record, ttl time.Duration) error
	Load(ctx context.Context, sid string) (*Record, error)
	Delete(ctx context.Context, sid string) error
}

// MongoRepository implements Repository using a Mongo collection. Used as a
// fallback when Redis is not configured.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

type mongoRecord struct {
	SID          string    `bson:"_id"`
	UserJSON     string    `bson:"user"`
	Token        string    `bson:"token"`
	RefreshToken string    `bson:"refreshToken"`
	ExpiresAt    time.Time `bson:"expiresAt"`
}

func (r *MongoRepository) Save(ctx context.Context, sid string, rec *Record, ttl time.Duration) error {
	doc := mongoRecord{
		SID:          sid,
		UserJSON:     rec.UserJSON,
		Token:        rec.Token,
		RefreshToken: rec.RefreshToken,
		ExpiresAt:    time.Now().UTC().Add(ttl),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": sid}, doc, opts)
	return err
}

func (r *MongoRepository) Load(ctx context.Context, sid string) (*Record, error) {
	var doc mongoRecord
	if err := r.col.FindOne(ctx, bson.M{"_id": sid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	if time.Now().UTC().After(doc.ExpiresAt) {
		// cleanup expired session
		_ = r.Delete(ctx, sid)
		return nil, nil
	}
	return &Record{UserJSON: doc.UserJSON, Token: doc.Token, RefreshToken: doc.RefreshToken}, nil
}

func (r *MongoRepository) Delete(ctx context.Context, sid string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": sid})
	return err
}
