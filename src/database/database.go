package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "CampusPortalDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	AdminCollection      *mongo.Collection
	TeacherCollection    *mongo.Collection
	StudentCollection    *mongo.Collection
	CourseCollection     *mongo.Collection
	LectureCollection    *mongo.Collection
	AttendanceCollection *mongo.Collection
	MarksCollection      *mongo.Collection
	EvaluationCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and wires up the shared
// collection handles plus the unique indexes the write paths rely on.
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
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

		AdminCollection = GetCollection(DBName, "admins")
		TeacherCollection = GetCollection(DBName, "teachers")
		StudentCollection = GetCollection(DBName, "students")
		CourseCollection = GetCollection(DBName, "courses")
		LectureCollection = GetCollection(DBName, "lectures")
		AttendanceCollection = GetCollection(DBName, "attendance")
		MarksCollection = GetCollection(DBName, "marks")
		EvaluationCollection = GetCollection(DBName, "evaluations")

		connectErr = ensureIndexes(context.TODO())
		if connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
			return
		}

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// ensureIndexes creates the unique indexes that back the uniqueness
// invariants: one email per principal, one rollNo per student, one course
// code, one attendance row per (student, lecture), one marks row per
// (student, course, examType). Duplicate writes surface as duplicate-key
// errors instead of silently overwriting.
func ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := AdminCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = TeacherCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = StudentCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "rollNo", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}

	_, err = CourseCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = AttendanceCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "studentId", Value: 1}, {Key: "lectureId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = MarksCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "studentId", Value: 1},
			{Key: "courseId", Value: 1},
			{Key: "examType", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
