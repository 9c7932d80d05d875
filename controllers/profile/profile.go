package profileController

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	profileValidator "lms/validators/profile"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProfiles lists profiles, newest first
func GetProfiles(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Profile{})

	var total int64
	db.Count(&total)

	var profiles []models.Profile
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&profiles).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profiles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profiles fetched successfully!", fiber.Map{
		"profiles": profiles,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProfile(c *fiber.Ctx) error {
	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	var profile models.Profile
	if err := database.Database.Db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// CreateProfile creates the requester's profile. The owning user is always the
// authenticated requester; a second profile for the same user is a conflict.
func CreateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*profileValidator.CreateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Friendly pre-check; the unique index on user_id is the real guard
	if err := db.Where("user_id = ?", userID).First(&models.Profile{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Profile already exists for this user!", nil)
	}

	profile := models.Profile{
		UserID: userID,
		Name:   reqData.Name,
		Role:   reqData.Role,
		Bio:    reqData.Bio,
	}

	if err := db.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Profile already exists for this user!", nil)
		}
		log.Printf("Error creating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Profile created successfully!", profile)
}

// UpdateProfile updates the requester's own profile
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*profileValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var profile models.Profile
	if err := database.Database.Db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own profile!", nil)
	}

	if reqData.Name != nil {
		profile.Name = *reqData.Name
	}
	if reqData.Role != nil {
		profile.Role = *reqData.Role
	}
	if reqData.Bio != nil {
		profile.Bio = *reqData.Bio
	}

	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}

// DeleteProfile removes the requester's own profile
func DeleteProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	var profile models.Profile
	if err := database.Database.Db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own profile!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile deleted successfully!", nil)
}

// UploadAvatar stores an avatar image for the requester's profile
func UploadAvatar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	profileID, ok := c.Locals("profileID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
	}

	var profile models.Profile
	if err := database.Database.Db.Where("id = ?", profileID).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if profile.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own profile!", nil)
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Avatar file is required!", nil)
	}

	storedPath, err := utils.SaveUploadedFile(file, "./uploads")
	if err != nil {
		log.Printf("Error saving avatar: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store avatar!", nil)
	}

	profile.Avatar = utils.GetFileURL(storedPath)
	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Avatar uploaded successfully!", profile)
}
