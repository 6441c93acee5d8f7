package services

import (
	"context"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCourse adds a course; the unique code index turns duplicates into
// Conflict.
func CreateCourse(course *models.Course) error {
	if course.Name == "" || course.Code == "" {
		return utils.ValidationError("Name and code are required")
	}
	if course.CreditHours < 1 || course.CreditHours > 6 {
		return utils.ValidationError("Credit hours must be between 1 and 6")
	}
	if !models.ValidDepartment(course.Department) {
		return utils.ValidationError("Unknown department: " + course.Department)
	}

	course.ID = primitive.NewObjectID()
	if course.StudentIDs == nil {
		course.StudentIDs = []primitive.ObjectID{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := database.CourseCollection.InsertOne(ctx, course)
	if err != nil {
		return utils.WrapStoreError(err, "A course with this code already exists")
	}
	return nil
}

// GetCourses lists courses, optionally filtered by department or teacher.
func GetCourses(params models.PaginationParams, filters models.CourseFilters) (*models.PaginatedResponse, error) {
	params.Normalize()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"code": regex},
		}
	}
	if filters.Department != "" {
		filter["department"] = filters.Department
	}
	if filters.TeacherID != "" {
		teacherID, err := primitive.ObjectIDFromHex(filters.TeacherID)
		if err != nil {
			return nil, utils.ValidationError("Invalid teacher ID")
		}
		filter["teacherId"] = teacherID
	}

	total, err := database.CourseCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := database.CourseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, utils.UpstreamError(err)
	}

	return models.NewPaginatedResponse(courses, total, params), nil
}

// GetCourseByID returns one course.
func GetCourseByID(id string) (*models.Course, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError("Invalid course ID")
	}
	return getCourse(objID)
}

func getCourse(id primitive.ObjectID) (*models.Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	err := database.CourseCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Course not found")
	}
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	return &course, nil
}

// requireOwnedCourse loads the course and checks the teacher owns it. The
// resource existing but belonging to someone else is Authorization, not
// NotFound.
func requireOwnedCourse(courseID, teacherID primitive.ObjectID) (*models.Course, error) {
	course, err := getCourse(courseID)
	if err != nil {
		return nil, err
	}
	if course.TeacherID != teacherID {
		return nil, utils.AuthorizationError("You do not teach this course")
	}
	return course, nil
}

// AssignTeacher sets the course's teacher.
func AssignTeacher(courseID, teacherID string) error {
	courseObjID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return utils.ValidationError("Invalid course ID")
	}
	teacherObjID, err := primitive.ObjectIDFromHex(teacherID)
	if err != nil {
		return utils.ValidationError("Invalid teacher ID")
	}

	if _, err := GetTeacherByID(teacherID); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.CourseCollection.UpdateOne(ctx,
		bson.M{"_id": courseObjID}, bson.M{"$set": bson.M{"teacherId": teacherObjID}})
	if err != nil {
		return utils.UpstreamError(err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("Course not found")
	}
	return nil
}

// DeleteCourse removes a course document.
func DeleteCourse(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ValidationError("Invalid course ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.CourseCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return utils.UpstreamError(err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError("Course not found")
	}
	return nil
}

// GetCoursesByTeacher lists every course taught by the teacher.
func GetCoursesByTeacher(teacherID primitive.ObjectID) ([]models.Course, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.CourseCollection.Find(ctx, bson.M{"teacherId": teacherID})
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, utils.UpstreamError(err)
	}
	return courses, nil
}

// GetCoursesByIDs resolves a set of course ids, used for the student's own
// course list view.
func GetCoursesByIDs(ids []primitive.ObjectID) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := database.CourseCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, utils.UpstreamError(err)
	}
	return courses, nil
}
