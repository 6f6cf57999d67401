package profiles

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/impactmy/showcase/internal/domain/models"
)

// MongoStore persists profiles in a "profiles" collection, identifier as _id.
// A monotonically assigned seq field preserves insertion order so the
// directory lists records the same way the file backend does.
type MongoStore struct {
	client *mongo.Client
	c      *mongo.Collection
}

// NewMongoStore creates a store over db's "profiles" collection.
func NewMongoStore(client *mongo.Client, db *mongo.Database) *MongoStore {
	return &MongoStore{client: client, c: db.Collection("profiles")}
}

// mongoProfile wraps the domain record with the ordering field.
type mongoProfile struct {
	models.OrganizationProfile `bson:",inline"`
	Seq                        int64 `bson:"seq"`
}

func (s *MongoStore) LoadAll(ctx context.Context) ([]models.OrganizationProfile, error) {
	find := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []mongoProfile
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	records := make([]models.OrganizationProfile, 0, len(rows))
	for _, row := range rows {
		p := row.OrganizationProfile
		p.Normalize()
		records = append(records, p)
	}
	return records, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (models.OrganizationProfile, error) {
	var row mongoProfile
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.OrganizationProfile{}, ErrNotFound
	}
	if err != nil {
		return models.OrganizationProfile{}, err
	}
	p := row.OrganizationProfile
	p.Normalize()
	return p, nil
}

func (s *MongoStore) Append(ctx context.Context, p models.OrganizationProfile) error {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Normalize()

	seq, err := s.nextSeq(ctx)
	if err != nil {
		return err
	}

	_, err = s.c.InsertOne(ctx, mongoProfile{OrganizationProfile: p, Seq: seq})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateIdentifier
		}
		return err
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) nextSeq(ctx context.Context) (int64, error) {
	find := options.FindOne().SetSort(bson.D{{Key: "seq", Value: -1}})
	var last struct {
		Seq int64 `bson:"seq"`
	}
	err := s.c.FindOne(ctx, bson.M{}, find).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.Seq + 1, nil
}
