package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pizza-nz/backoffice-service/internal/config"
	"github.com/pizza-nz/backoffice-service/internal/logging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo owns the client for the process lifetime.
type Mongo struct {
	Client  *mongo.Client
	DB      *mongo.Database
	Timeout time.Duration
}

func NewMongo(cfg config.Database) (*Mongo, error) {
	log := logging.With("db")

	opts := options.Client().
		ApplyURI(cfg.URI()).
		SetConnectTimeout(cfg.Timeout()).
		SetServerSelectionTimeout(cfg.Timeout()).
		SetMaxPoolSize(20)

	maxRetries := cfg.ConnectRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	// Connect with retries - the store may still be starting alongside us
	var client *mongo.Client
	var err error
	for i := 0; i < maxRetries; i++ {
		client, err = connect(opts, cfg.Timeout())
		if err == nil {
			break
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max_attempts", maxRetries).Msg("failed to connect to database")
		if i < maxRetries-1 {
			time.Sleep(time.Duration(i+1) * 2 * time.Second)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("could not connect to database after %d attempts: %w", maxRetries, err)
	}

	log.Info().Str("uri", cfg.URI()).Str("database", cfg.Name).Msg("connected to database")

	return &Mongo{
		Client:  client,
		DB:      client.Database(cfg.Name),
		Timeout: cfg.Timeout(),
	}, nil
}

func connect(opts *options.ClientOptions, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("could not ping database: %w", err)
	}

	return client, nil
}

// Close disconnects the client
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// Migrate applies the JSON command migrations under cfg.MigrationsPath.
// It refuses to run while users holds duplicate usernames; the unique index
// cannot be built over them.
func (m *Mongo) Migrate(cfg config.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	dups, err := m.duplicateUsernames(ctx)
	if err != nil {
		return fmt.Errorf("failed to check usernames: %w", err)
	}
	if len(dups) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateUsernames, strings.Join(dups, ", "))
	}

	migrationsPath := "file://" + cfg.MigrationsPath
	dbURL := fmt.Sprintf("mongodb://%s:%d/%s", cfg.Host, cfg.Port, cfg.Name)

	mg, err := migrate.New(migrationsPath, dbURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer mg.Close()

	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logging.With("db").Info().Uint("version", version).Bool("dirty", dirty).Msg("database migrations completed")
	return nil
}

// ErrDuplicateUsernames blocks the unique username index until an operator
// removes the extra accounts.
var ErrDuplicateUsernames = errors.New("users collection has duplicate usernames")

// duplicateUsernames lists usernames held by more than one account.
func (m *Mongo) duplicateUsernames(ctx context.Context) ([]string, error) {
	cursor, err := m.DB.Collection("users").Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$username"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$gt", Value: 1}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	})
	if err != nil {
		return nil, err
	}

	var groups []struct {
		Username string `bson:"_id"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Username)
	}
	return names, nil
}

// HealthCheck performs a database health check
func (m *Mongo) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()
	return m.Client.Ping(ctx, readpref.Primary())
}
