package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Println("Connected to MongoDB")
	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (db *DB) Users() *mongo.Collection {
	return db.Database.Collection("users")
}

func (db *DB) Contacts() *mongo.Collection {
	return db.Database.Collection("contacts")
}

func (db *DB) JobApplications() *mongo.Collection {
	return db.Database.Collection("job_applications")
}

func (db *DB) FraudCases() *mongo.Collection {
	return db.Database.Collection("fraud_cases")
}

func (db *DB) Newsletter() *mongo.Collection {
	return db.Database.Collection("newsletter")
}

func (db *DB) HeroContent() *mongo.Collection {
	return db.Database.Collection("hero_content")
}

func (db *DB) AboutContent() *mongo.Collection {
	return db.Database.Collection("about_content")
}

func (db *DB) Services() *mongo.Collection {
	return db.Database.Collection("services")
}

func (db *DB) Stats() *mongo.Collection {
	return db.Database.Collection("stats")
}

func (db *DB) Testimonials() *mongo.Collection {
	return db.Database.Collection("testimonials")
}

func (db *DB) NotificationLogs() *mongo.Collection {
	return db.Database.Collection("notification_logs")
}

func (db *DB) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
