package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/jobboard/internal/core/domain"
)

type JobRepository struct {
	col   *mongo.Collection
	users *mongo.Collection
	seq   *sequence
}

func newJobRepository(db *mongo.Database, seq *sequence) *JobRepository {
	return &JobRepository{
		col:   db.Collection(collectionJobs),
		users: db.Collection(collectionUsers),
		seq:   seq,
	}
}

// Create checks the owner first; the check and the insert are separate
// operations.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.users.CountDocuments(ctx, bson.M{"_id": job.OwnerID}, options.Count().SetLimit(1))
	if err != nil {
		return fmt.Errorf("check owner: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: user %d", domain.ErrInvalidReference, job.OwnerID)
	}

	id, err := r.seq.next(ctx, collectionJobs)
	if err != nil {
		return err
	}
	doc := *job
	doc.ID = id
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	job.ID = id
	return nil
}

func (r *JobRepository) ListAll(ctx context.Context) ([]*domain.Job, error) {
	return r.find(ctx, bson.M{})
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Job, error) {
	return r.find(ctx, bson.M{"user_id": ownerID})
}

func (r *JobRepository) find(ctx context.Context, filter bson.M) ([]*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := []*domain.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) Get(ctx context.Context, id int64) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) ListIDs(ctx context.Context) ([]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(bson.M{"_id": 1})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find job ids: %w", err)
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID int64 `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode job ids: %w", err)
	}
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

// Delete removes the job only when it belongs to ownerID, then classifies a
// miss as not found or forbidden.
func (r *JobRepository) Delete(ctx context.Context, id, ownerID int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "user_id": ownerID})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 1 {
		return nil
	}

	err = r.col.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find job: %w", err)
	}
	return domain.ErrForbidden
}
