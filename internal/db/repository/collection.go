package repository

import (
	"context"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names
const (
	CollectionMenu         = "menu"
	CollectionReservations = "reservations"
	CollectionOrders       = "orders"
	CollectionStaff        = "staff"
	CollectionUsers        = "users"
)

// collection wraps a mongo collection with the per-operation timeout,
// error classification and metrics shared by every repository.
type collection struct {
	coll    *mongo.Collection
	name    string
	timeout time.Duration
}

func newCollection(db *mongo.Database, name string, timeout time.Duration) collection {
	return collection{coll: db.Collection(name), name: name, timeout: timeout}
}

// run executes fn under the operation timeout and records the outcome.
func (c collection) run(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(ctx)
	if err != nil {
		err = classify(op+" "+c.name, err)
	}
	metrics.ObserveStore(c.name, op, outcome(err), start)
	return err
}

func (c collection) insert(ctx context.Context, doc any) (primitive.ObjectID, error) {
	var id primitive.ObjectID
	err := c.run(ctx, "insert", func(ctx context.Context) error {
		res, err := c.coll.InsertOne(ctx, doc)
		if err != nil {
			return err
		}
		id, _ = res.InsertedID.(primitive.ObjectID)
		return nil
	})
	return id, err
}

func (c collection) updateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	return c.run(ctx, "update", func(ctx context.Context) error {
		res, err := c.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
		if err != nil {
			return err
		}
		if res.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil
	})
}

func (c collection) deleteByID(ctx context.Context, id primitive.ObjectID) error {
	return c.run(ctx, "delete", func(ctx context.Context) error {
		res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if res.DeletedCount == 0 {
			return mongo.ErrNoDocuments
		}
		return nil
	})
}

func (c collection) count(ctx context.Context) (int64, error) {
	var n int64
	err := c.run(ctx, "count", func(ctx context.Context) error {
		var err error
		n, err = c.coll.CountDocuments(ctx, bson.M{})
		return err
	})
	return n, err
}

// findOne decodes the first document matching filter into out.
func findOne[T any](ctx context.Context, c collection, filter bson.M) (*T, error) {
	var out T
	err := c.run(ctx, "find_one", func(ctx context.Context) error {
		return c.coll.FindOne(ctx, filter).Decode(&out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// findAll decodes every document in store-native order.
func findAll[T any](ctx context.Context, c collection) ([]T, error) {
	out := []T{}
	err := c.run(ctx, "find", func(ctx context.Context) error {
		cursor, err := c.coll.Find(ctx, bson.M{})
		if err != nil {
			return err
		}
		return cursor.All(ctx, &out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
