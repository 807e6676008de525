package userControllers

import (
	"log"

	"skillforge/database"
	"skillforge/middleware"
	"skillforge/models"
	"skillforge/utils"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := new(struct {
		Name        *string `json:"name"`
		RollNumber  *string `json:"roll_number"`
		Branch      *string `json:"branch"`
		Section     *string `json:"section"`
		Department  *string `json:"department"`
		Designation *string `json:"designation"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != nil {
		user.Name = *reqData.Name
	}

	// Profile fields only apply to the matching role.
	switch user.Role {
	case models.RoleStudent:
		if reqData.RollNumber != nil {
			user.RollNumber = *reqData.RollNumber
		}
		if reqData.Branch != nil {
			user.Branch = *reqData.Branch
		}
		if reqData.Section != nil {
			user.Section = *reqData.Section
		}
	case models.RoleTeacher:
		if reqData.Department != nil {
			user.Department = *reqData.Department
		}
		if reqData.Designation != nil {
			user.Designation = *reqData.Designation
		}
	case models.RoleAdmin:
		// Admin profile carries no role-specific fields.
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// UploadProfilePicture pushes the uploaded image to the external image host
// and stores the hosted URL on the profile.
func UploadProfilePicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	url, err := utils.UploadProfileImage(file)
	if err != nil {
		log.Printf("Error uploading profile image: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload image!", nil)
	}

	user.ProfileImage = url
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile picture updated successfully!", fiber.Map{
		"profile_image": url,
	})
}
