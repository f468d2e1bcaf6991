package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/jobboard/internal/core/domain"
)

type ApplicationRepository struct {
	col  *mongo.Collection
	jobs *mongo.Collection
	seq  *sequence
}

func newApplicationRepository(db *mongo.Database, seq *sequence) *ApplicationRepository {
	return &ApplicationRepository{
		col:  db.Collection(collectionApplications),
		jobs: db.Collection(collectionJobs),
		seq:  seq,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *domain.Application) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.jobs.CountDocuments(ctx, bson.M{"_id": app.JobID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("check job: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: job %d", domain.ErrInvalidReference, app.JobID)
	}

	id, err := r.seq.next(ctx, collectionApplications)
	if err != nil {
		return err
	}
	doc := *app
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	app.ID = id
	return nil
}
