package services

import (
	"context"
	"strings"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Every login failure collapses to the same generic AuthenticationError so
// the response never reveals whether the account exists.

// AuthenticateAdmin verifies admin credentials and mints a token.
func AuthenticateAdmin(email, password string) (*models.Admin, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := database.AdminCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&admin)
	if err != nil {
		return nil, "", utils.AuthenticationError()
	}

	if !utils.CheckPassword(password, admin.Password) {
		return nil, "", utils.AuthenticationError()
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email, models.RoleAdmin)
	if err != nil {
		return nil, "", utils.UpstreamError(err)
	}

	admin.Password = ""
	return &admin, token, nil
}

// AuthenticateTeacher verifies teacher credentials and mints a token.
func AuthenticateTeacher(email, password string) (*models.Teacher, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var teacher models.Teacher
	err := database.TeacherCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&teacher)
	if err != nil {
		return nil, "", utils.AuthenticationError()
	}

	if !utils.CheckPassword(password, teacher.Password) {
		return nil, "", utils.AuthenticationError()
	}

	token, err := utils.GenerateJWT(teacher.ID.Hex(), teacher.Email, models.RoleTeacher)
	if err != nil {
		return nil, "", utils.UpstreamError(err)
	}

	teacher.Password = ""
	return &teacher, token, nil
}

// AuthenticateStudent verifies student credentials by roll number, batch and
// department and mints a token.
func AuthenticateStudent(rollNo, batch, department, password string) (*models.Student, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var student models.Student
	err := database.StudentCollection.FindOne(ctx, bson.M{
		"rollNo":     rollNo,
		"batch":      batch,
		"department": department,
	}).Decode(&student)
	if err != nil {
		return nil, "", utils.AuthenticationError()
	}

	if !utils.CheckPassword(password, student.Password) {
		return nil, "", utils.AuthenticationError()
	}

	token, err := utils.GenerateJWT(student.ID.Hex(), student.Email, models.RoleStudent)
	if err != nil {
		return nil, "", utils.UpstreamError(err)
	}

	student.Password = ""
	return &student, token, nil
}
