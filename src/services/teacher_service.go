package services

import (
	"context"
	"strings"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateTeacher registers a teacher; the unique email index turns duplicates
// into Conflict.
func CreateTeacher(teacher *models.Teacher) error {
	teacher.Email = strings.ToLower(teacher.Email)
	if teacher.Name == "" || teacher.Email == "" {
		return utils.ValidationError("Name and email are required")
	}
	if teacher.Department != "" && !models.ValidDepartment(teacher.Department) {
		return utils.ValidationError("Unknown department: " + teacher.Department)
	}
	if teacher.Password == "" {
		return utils.ValidationError("Password is required")
	}

	hash, err := utils.HashPassword(teacher.Password)
	if err != nil {
		return utils.UpstreamError(err)
	}
	teacher.Password = hash
	teacher.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.TeacherCollection.InsertOne(ctx, teacher)
	if err != nil {
		return utils.WrapStoreError(err, "A teacher with this email already exists")
	}
	return nil
}

// GetTeachers lists teachers with search and pagination.
func GetTeachers(params models.PaginationParams) (*models.PaginatedResponse, error) {
	params.Normalize()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"email": regex},
		}
	}

	total, err := database.TeacherCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder()).
		SetProjection(bson.M{"password": 0})

	cursor, err := database.TeacherCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	teachers := []models.Teacher{}
	if err := cursor.All(ctx, &teachers); err != nil {
		return nil, utils.UpstreamError(err)
	}

	return models.NewPaginatedResponse(teachers, total, params), nil
}

// GetTeacherByID returns one teacher, password excluded.
func GetTeacherByID(id string) (*models.Teacher, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError("Invalid teacher ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var teacher models.Teacher
	err = database.TeacherCollection.FindOne(ctx, bson.M{"_id": objID},
		options.FindOne().SetProjection(bson.M{"password": 0})).Decode(&teacher)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Teacher not found")
	}
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	return &teacher, nil
}

// UpdateTeacher applies a partial update, rehashing on password change.
func UpdateTeacher(id string, update *models.Teacher) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ValidationError("Invalid teacher ID")
	}

	set := bson.M{}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Email != "" {
		set["email"] = strings.ToLower(update.Email)
	}
	if update.Education != "" {
		set["education"] = update.Education
	}
	if update.Department != "" {
		if !models.ValidDepartment(update.Department) {
			return utils.ValidationError("Unknown department: " + update.Department)
		}
		set["department"] = update.Department
	}
	if update.Password != "" {
		hash, err := utils.HashPassword(update.Password)
		if err != nil {
			return utils.UpstreamError(err)
		}
		set["password"] = hash
	}
	if len(set) == 0 {
		return utils.ValidationError("Nothing to update")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.TeacherCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return utils.WrapStoreError(err, "A teacher with this email already exists")
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("Teacher not found")
	}
	return nil
}

// DeleteTeacher removes a teacher document.
func DeleteTeacher(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ValidationError("Invalid teacher ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.TeacherCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return utils.UpstreamError(err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError("Teacher not found")
	}
	return nil
}
