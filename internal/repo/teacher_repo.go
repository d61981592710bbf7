package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/mergington/announcements-service/internal/domain"
)

// FindByUsername resolves a credential. Teachers are keyed by username
// (_id); absence means the credential is not recognized.
func (s *Store) FindByUsername(ctx context.Context, username string) (*domain.Teacher, error) {
	sp, ctx := tracer.StartSpanFromContext(ctx, "mongo.teacher.find_one")
	defer sp.Finish()

	var t domain.Teacher
	err := s.colTeachers.FindOne(ctx, bson.M{"_id": username}).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		sp.SetTag("error", err)
		return nil, err
	}
	return &t, nil
}

// UpsertTeacher writes a credential document; used by the seeding tool.
func (s *Store) UpsertTeacher(ctx context.Context, t *domain.Teacher) error {
	_, err := s.colTeachers.UpdateOne(ctx,
		bson.M{"_id": t.Username},
		bson.M{"$set": bson.M{
			"display_name":  t.DisplayName,
			"password_hash": t.PasswordHash,
			"role":          t.Role,
		}, "$setOnInsert": bson.M{"created_at": t.CreatedAt}},
		optionsUpdate().SetUpsert(true),
	)
	return err
}

func optionsUpdate() *options.UpdateOptions { return options.Update() }
