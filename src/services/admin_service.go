package services

import (
	"context"
	"strings"
	"time"

	"Campus-Portal-Backend/src/database"
	"Campus-Portal-Backend/src/models"
	"Campus-Portal-Backend/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateAdmin registers a portal administrator.
func CreateAdmin(admin *models.Admin) error {
	admin.Email = strings.ToLower(admin.Email)
	if admin.Name == "" || admin.Email == "" {
		return utils.ValidationError("Name and email are required")
	}
	if admin.Password == "" {
		return utils.ValidationError("Password is required")
	}

	hash, err := utils.HashPassword(admin.Password)
	if err != nil {
		return utils.UpstreamError(err)
	}
	admin.Password = hash
	admin.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = database.AdminCollection.InsertOne(ctx, admin)
	if err != nil {
		return utils.WrapStoreError(err, "An admin with this email already exists")
	}
	return nil
}
