package controllers

import (
	"net/http"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/skills"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateSkill(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var skill models.Skill
	if err := c.BodyParser(&skill); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	skill.StudentID = objID

	if err := skills.CreateSkill(&skill); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Skill created successfully",
		"skill":   skill,
	})
}

// GetSkills - ดึงทักษะทั้งหมดของนิสิต
func GetSkills(c *fiber.Ctx) error {
	result, err := skills.GetSkillsByStudent(c.Params("studentId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching skills"})
	}
	return c.JSON(result)
}

// UpdateSkill - อัปเดตระดับทักษะ
func UpdateSkill(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	var req struct {
		Level string `json:"level" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := skills.UpdateSkillLevel(c.Params("id"), studentID, req.Level); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Skill updated successfully"})
}

// DeleteSkill - ลบทักษะ
func DeleteSkill(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	if err := skills.DeleteSkill(c.Params("id"), studentID); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting skill"})
	}

	return c.JSON(fiber.Map{"message": "Skill deleted successfully"})
}
