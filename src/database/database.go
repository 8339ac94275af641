package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "CmisEventsDB"

var (
	client     *mongo.Client
	once       sync.Once // guard against double ConnectMongoDB()
	connectErr error

	UserCollection           *mongo.Collection
	MentorCollection         *mongo.Collection
	StudentProfileCollection *mongo.Collection
	MatchBatchCollection     *mongo.Collection
	MatchCandidateCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB once and wires the shared collection
// handles used across services.
func ConnectMongoDB() error {

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = GetCollection(DBName, "users")
		MentorCollection = GetCollection(DBName, "mentors")
		StudentProfileCollection = GetCollection(DBName, "student_profiles")
		MatchBatchCollection = GetCollection(DBName, "match_batches")
		MatchCandidateCollection = GetCollection(DBName, "match_candidates")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
