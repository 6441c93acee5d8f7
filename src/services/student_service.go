package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// ValidateStudent checks domain bounds before any document is written.
func ValidateStudent(student *models.Student) error {
	if err := validate.Struct(student); err != nil {
		return utils.ValidationError(fmt.Sprintf("Invalid student data: %v", err))
	}
	if student.Semester < models.MinSemester || student.Semester > models.MaxSemester {
		return utils.ValidationError("Semester must be between 1 and 8")
	}
	if !models.ValidDepartment(student.Department) {
		return utils.ValidationError("Unknown department: " + student.Department)
	}
	if !models.ValidBatch(student.Batch) {
		return utils.ValidationError("Unknown batch: " + student.Batch)
	}
	return nil
}

// CreateStudent registers a student. The plaintext password is hashed here,
// exactly once; the unique indexes on email and rollNo turn duplicates into
// Conflict.
func CreateStudent(student *models.Student) error {
	student.Email = strings.ToLower(student.Email)
	if err := ValidateStudent(student); err != nil {
		return err
	}
	if student.Password == "" {
		return utils.ValidationError("Password is required")
	}

	hash, err := utils.HashPassword(student.Password)
	if err != nil {
		return utils.UpstreamError(err)
	}
	student.Password = hash

	student.ID = primitive.NewObjectID()
	if student.EnrolledCourses == nil {
		student.EnrolledCourses = []models.EnrolledCourse{}
	}
	if student.Marks == nil {
		student.Marks = []models.MarkEntry{}
	}
	if student.SemesterResults == nil {
		student.SemesterResults = []models.SemesterResult{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.StudentCollection.InsertOne(ctx, student)
	if err != nil {
		return utils.WrapStoreError(err, "A student with this email or roll number already exists")
	}
	return nil
}

// GetStudents lists students with search and pagination.
func GetStudents(params models.PaginationParams, department string) (*models.PaginatedResponse, error) {
	params.Normalize()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	filter := bson.M{}
	if params.Search != "" {
		regex := bson.M{"$regex": params.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"rollNo": regex},
		}
	}
	if department != "" {
		filter["department"] = department
	}

	total, err := database.StudentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}

	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder()).
		SetProjection(bson.M{"password": 0})

	cursor, err := database.StudentCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, utils.UpstreamError(err)
	}

	return models.NewPaginatedResponse(students, total, params), nil
}

// GetStudentByID returns one student, password excluded from the projection.
func GetStudentByID(id string) (*models.Student, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ValidationError("Invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	err = database.StudentCollection.FindOne(ctx, bson.M{"_id": objID},
		options.FindOne().SetProjection(bson.M{"password": 0})).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Student not found")
	}
	if err != nil {
		return nil, utils.UpstreamError(err)
	}
	return &student, nil
}

// UpdateStudent applies a partial update. When the password field changes the
// hash is rederived here, never by the caller.
func UpdateStudent(id string, update *models.Student) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ValidationError("Invalid student ID")
	}

	set := bson.M{}
	if update.Name != "" {
		set["name"] = update.Name
	}
	if update.Email != "" {
		set["email"] = strings.ToLower(update.Email)
	}
	if update.Semester != 0 {
		if update.Semester < models.MinSemester || update.Semester > models.MaxSemester {
			return utils.ValidationError("Semester must be between 1 and 8")
		}
		set["semester"] = update.Semester
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

	res, err := database.StudentCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return utils.WrapStoreError(err, "A student with this email already exists")
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("Student not found")
	}
	return nil
}

// DeleteStudent removes a student document.
func DeleteStudent(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.ValidationError("Invalid student ID")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.StudentCollection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return utils.UpstreamError(err)
	}
	if res.DeletedCount == 0 {
		return utils.NotFoundError("Student not found")
	}
	return nil
}

// ChangeStudentPassword rehashes and replaces the student's password.
func ChangeStudentPassword(studentID primitive.ObjectID, newPassword string) error {
	if newPassword == "" {
		return utils.ValidationError("Password is required")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.UpstreamError(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := database.StudentCollection.UpdateOne(ctx,
		bson.M{"_id": studentID}, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return utils.UpstreamError(err)
	}
	if res.MatchedCount == 0 {
		return utils.NotFoundError("Student not found")
	}
	return nil
}

// RegisterCourses enrolls the student in every requested course, or none:
// any id that doesn't resolve to an existing course fails the whole request
// before a single enrollment is appended.
func RegisterCourses(studentID primitive.ObjectID, courseIDs []string) error {
	if len(courseIDs) == 0 {
		return utils.ValidationError("No courses requested")
	}

	objIDs := make([]primitive.ObjectID, 0, len(courseIDs))
	seen := map[primitive.ObjectID]bool{}
	for _, id := range courseIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return utils.ValidationError("Invalid course ID: " + id)
		}
		if !seen[objID] {
			seen[objID] = true
			objIDs = append(objIDs, objID)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.CourseCollection.CountDocuments(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return utils.UpstreamError(err)
	}
	if count != int64(len(objIDs)) {
		return utils.NotFoundError("One or more courses not found")
	}

	var student models.Student
	err = database.StudentCollection.FindOne(ctx, bson.M{"_id": studentID}).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return utils.NotFoundError("Student not found")
	}
	if err != nil {
		return utils.UpstreamError(err)
	}

	for _, objID := range objIDs {
		if IsEnrolled(&student, objID) {
			return utils.ConflictError("Already enrolled in one or more requested courses")
		}
	}

	enrollments := make([]models.EnrolledCourse, 0, len(objIDs))
	for _, objID := range objIDs {
		enrollments = append(enrollments, models.EnrolledCourse{
			CourseID: objID,
			Semester: student.Semester,
		})
	}

	_, err = database.StudentCollection.UpdateOne(ctx,
		bson.M{"_id": studentID},
		bson.M{"$push": bson.M{"enrolledCourses": bson.M{"$each": enrollments}}})
	if err != nil {
		return utils.UpstreamError(err)
	}

	_, err = database.CourseCollection.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": objIDs}},
		bson.M{"$addToSet": bson.M{"studentIds": studentID}})
	if err != nil {
		return utils.UpstreamError(err)
	}
	return nil
}

// IsEnrolled reports whether the student is enrolled in the course.
func IsEnrolled(student *models.Student, courseID primitive.ObjectID) bool {
	for _, ec := range student.EnrolledCourses {
		if ec.CourseID == courseID {
			return true
		}
	}
	return false
}

// GPATrajectory returns the semester results sorted ascending by semester.
// An empty result list yields an empty sequence, not an error.
func GPATrajectory(results []models.SemesterResult) []models.SemesterResult {
	out := make([]models.SemesterResult, len(results))
	copy(out, results)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Semester < out[j].Semester
	})
	return out
}

// GetGPATrajectory loads the student and projects the sorted trajectory.
func GetGPATrajectory(studentID primitive.ObjectID) ([]models.SemesterResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	err := database.StudentCollection.FindOne(ctx, bson.M{"_id": studentID},
		options.FindOne().SetProjection(bson.M{"semesterResults": 1})).Decode(&student)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundError("Student not found")
	}
	if err != nil {
		return nil, utils.UpstreamError(err)
	}

	return GPATrajectory(student.SemesterResults), nil
}
