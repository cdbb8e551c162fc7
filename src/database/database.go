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

const DBName = "CareerBridgeDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	StudentCollection     *mongo.Collection
	UserCollection        *mongo.Collection
	ProjectCollection     *mongo.Collection
	InternshipCollection  *mongo.Collection
	JobCollection         *mongo.Collection
	SkillCollection       *mongo.Collection
	CertificateCollection *mongo.Collection
	JobPostingCollection  *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once.
func ConnectMongoDB() error {
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

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// InitCollections binds the shared collection handles. Must run after ConnectMongoDB.
func InitCollections() {
	StudentCollection = GetCollection(DBName, "students")
	UserCollection = GetCollection(DBName, "users")
	ProjectCollection = GetCollection(DBName, "projects")
	InternshipCollection = GetCollection(DBName, "internships")
	JobCollection = GetCollection(DBName, "jobs")
	SkillCollection = GetCollection(DBName, "skills")
	CertificateCollection = GetCollection(DBName, "certificates")
	JobPostingCollection = GetCollection(DBName, "jobPostings")
}

// GetCollection returns a collection handle from MongoDB.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
