// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/impactmy/showcase/internal/app/store/profiles"
)

// DBDeps holds storage dependencies for the app.
type DBDeps struct {
	// Profiles is the active profile store, backed by either the dataset
	// file or MongoDB depending on configuration.
	Profiles profiles.Store

	// MongoClient is set only with the mongo backend, for shutdown.
	MongoClient *mongo.Client
}
