// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/impactmy/showcase/internal/app/store/profiles"
	"github.com/impactmy/showcase/internal/app/system/timeouts"
)

// ConnectDB builds the profile store for the configured backend.
//
// The file backend needs no connection; the mongo backend dials the server
// and verifies it with a ping so startup fails fast on a bad URI.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.StorageBackend == "file" {
		logger.Info("using file-backed profile store", zap.String("path", appCfg.DatasetPath))
		return DBDeps{Profiles: profiles.NewFileStore(appCfg.DatasetPath, logger)}, nil
	}

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Error("mongo ping failed", zap.Error(err))
		return DBDeps{}, err
	}

	db := client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		Profiles:    profiles.NewMongoStore(client, db),
		MongoClient: client,
	}, nil
}

// EnsureSchema sets up indexes as needed. The file backend has no schema;
// the mongo backend indexes the insertion-order field the directory sorts
// by.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoClient == nil {
		return nil
	}

	schemaCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	coll := deps.MongoClient.Database(appCfg.MongoDatabase).Collection("profiles")
	_, err := coll.Indexes().CreateOne(schemaCtx, mongo.IndexModel{
		Keys: map[string]any{"seq": 1},
	})
	if err != nil {
		logger.Error("create seq index failed", zap.Error(err))
		return err
	}
	return nil
}
