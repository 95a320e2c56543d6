package controllers

import (
	"log"
	"os"
	"path/filepath"

	"studyabroad-backend/src/models"
	"studyabroad-backend/src/services/extraction"
	"studyabroad-backend/src/services/profiles"
	"studyabroad-backend/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// @Summary      Get the applicant profile in client-form shape
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.ProfileResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/auth/profile [get]
func GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	user, err := profiles.GetUser(userID)
	if err != nil {
		if err == profiles.ErrUserNotFound {
			return utils.HandleError(c, fiber.StatusNotFound, "User not found")
		}
		return utils.HandleError(c, fiber.StatusInternalServerError, "Server Error")
	}

	return c.JSON(profiles.ProjectForClient(user.Profile))
}

// @Summary      Update the applicant profile from a client form
// @Description  Sections absent from the payload stay untouched.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/auth/profile [put]
func UpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	var req models.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	user, err := profiles.UpdateUserProfile(userID, req)
	if err != nil {
		if err == profiles.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
				"code":  "NOT_FOUND",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server Error updating profile",
			"code":  "SERVER_ERROR",
		})
	}

	return c.JSON(fiber.Map{
		"id":      user.ID.Hex(),
		"name":    user.Name,
		"email":   user.Email,
		"profile": profiles.ProjectForClient(user.Profile),
		"message": "Profile updated successfully",
	})
}

// swapped out in tests so the upload handler can run without a real PDF
// parser or a database behind it
var (
	readPDFText     = extraction.ReadText
	ingestCandidate = profiles.IngestCandidate
)

// @Summary      Update the applicant profile from an uploaded PDF
// @Description  Extracts labeled fields from an ApplyBoard/Passport style PDF and merges them into the profile.
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profilePdf  formData  file  true  "Profile PDF"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/auth/profile/upload-pdf [put]
func UploadProfilePDF(c *fiber.Ctx) error {
	userID, _ := c.Locals("userId").(string)

	// field name "profilePdf" must match the frontend FormData key
	fileHeader, err := c.FormFile("profilePdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a PDF file",
			"code":  "MISSING_FILE",
		})
	}

	if err := os.MkdirAll("uploads", 0o755); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing PDF file",
			"code":  "UPLOAD_ERROR",
		})
	}

	tmpPath := filepath.Join("uploads", uuid.New().String()+".pdf")
	if err := c.SaveFile(fileHeader, tmpPath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing PDF file",
			"code":  "UPLOAD_ERROR",
		})
	}
	// the temp artifact goes away on every exit path, success or failure
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			log.Printf("⚠️ failed to remove upload %s: %v\n", tmpPath, err)
		}
	}()

	text, err := readPDFText(tmpPath)
	if err != nil {
		log.Printf("❌ PDF processing error: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error processing PDF file",
			"code":  "PDF_ERROR",
		})
	}

	candidate := extraction.ExtractProfile(text)

	user, err := ingestCandidate(userID, candidate)
	if err != nil {
		if err == profiles.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
				"code":  "NOT_FOUND",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server Error updating profile",
			"code":  "SERVER_ERROR",
		})
	}

	return c.JSON(fiber.Map{
		"id":      user.ID.Hex(),
		"name":    user.Name,
		"email":   user.Email,
		"profile": profiles.ProjectForClient(user.Profile),
		"message": "Profile updated from PDF",
	})
}
