package controllers

import (
	"log"

	"studyabroad-backend/src/models"
	"studyabroad-backend/src/services"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// @Summary      List all universities
// @Tags         universities
// @Produce      json
// @Success      200  {array}  models.University
// @Router       /api/universities [get]
func GetUniversities(c *fiber.Ctx) error {
	universities, err := services.GetAllUniversities()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error fetching universities",
			"code":  "SERVER_ERROR",
		})
	}

	return c.JSON(universities)
}

// @Summary      Create a university listing (admin only)
// @Tags         universities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      models.UniversityRequest  true  "University data"
// @Success      201   {object}  models.University
// @Failure      400   {object}  map[string]interface{}
// @Router       /api/universities [post]
func CreateUniversity(c *fiber.Ctx) error {
	var req models.UniversityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
			"code":  "INVALID_REQUEST",
		})
	}

	userID, _ := c.Locals("userId").(string)
	createdBy, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not authenticated",
			"code":  "NOT_AUTHENTICATED",
		})
	}

	uni, err := services.CreateUniversity(req, createdBy)
	if err != nil {
		if services.IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Please add all required fields",
				"code":  "MISSING_FIELDS",
			})
		}
		log.Printf("❌ create university failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error creating university",
			"code":  "SERVER_ERROR",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(uni)
}
