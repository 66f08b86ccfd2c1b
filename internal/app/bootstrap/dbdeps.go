// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/pawhub/internal/app/system/payments"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: EnsureSchema, Startup, BuildHandler, and Shutdown. The Shutdown
// hook closes these connections gracefully when the app terminates.
type DBDeps struct {
	// MongoDB client and database
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Payment gateway (Stripe, or a fake in tests)
	PaymentGateway payments.Gateway
}
