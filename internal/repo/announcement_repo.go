package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/mergington/announcements-service/internal/domain"
)

func (s *Store) Insert(ctx context.Context, a *domain.Announcement) error {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.announcement.insert")
	defer sp.Finish()

	res, err := s.colAnnouncements.InsertOne(ctx, a)
	if err != nil {
		sp.SetTag("error", err)
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		a.ID = oid
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Announcement, error) {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.announcement.find_one",
		tracer.Tag("announcement_id", id.Hex()),
	)
	defer sp.Finish()

	var a domain.Announcement
	err := s.colAnnouncements.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		sp.SetTag("error", err)
		return nil, err
	}
	return &a, nil
}

func (s *Store) FindAll(ctx context.Context) ([]domain.Announcement, error) {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.announcement.find_all")
	defer sp.Finish()
	return s.findSorted(ctx, bson.M{})
}

// FindActive selects the documents whose window contains now:
// expiration_date strictly in the future AND (start_date null or already
// reached). A null match also covers legacy documents missing the field.
func (s *Store) FindActive(ctx context.Context, now time.Time) ([]domain.Announcement, error) {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.announcement.find_active")
	defer sp.Finish()

	filter := bson.M{
		"$and": bson.A{
			bson.M{"expiration_date": bson.M{"$gt": now}},
			bson.M{"$or": bson.A{
				bson.M{"start_date": nil},
				bson.M{"start_date": bson.M{"$lte": now}},
			}},
		},
	}
	return s.findSorted(ctx, filter)
}

func (s *Store) findSorted(ctx context.Context, filter bson.M) ([]domain.Announcement, error) {
	cur, err := s.colAnnouncements.Find(ctx, filter,
		optionsFind().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Announcement
	for cur.Next(ctx) {
		var a domain.Announcement
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, cur.Err()
}

// UpdateFields replaces the mutable fields in place; _id and created_at are
// never part of the $set. start is written as null when absent, matching
// how the documents are created.
func (s *Store) UpdateFields(ctx context.Context, id primitive.ObjectID, message string, start *time.Time, expiration time.Time) error {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.announcement.update",
		tracer.Tag("announcement_id", id.Hex()),
	)
	defer sp.Finish()

	_, err := s.colAnnouncements.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"message":         message,
			"start_date":      start,
			"expiration_date": expiration,
		}},
	)
	if err != nil {
		sp.SetTag("error", err)
	}
	return err
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.announcement.delete",
		tracer.Tag("announcement_id", id.Hex()),
	)
	defer sp.Finish()

	res, err := s.colAnnouncements.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		sp.SetTag("error", err)
		return false, err
	}
	return res.DeletedCount == 1, nil
}

// small helper so the sort options read the same at every call site
func optionsFind() *options.FindOptions { return options.Find() }
