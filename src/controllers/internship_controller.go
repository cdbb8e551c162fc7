package controllers

import (
	"net/http"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/internships"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateInternship(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var internship models.Internship
	if err := c.BodyParser(&internship); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	internship.StudentID = objID

	if err := internships.CreateInternship(&internship); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating internship"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":    "Internship created successfully",
		"internship": internship,
	})
}

// GetInternships - ดึงการฝึกงานทั้งหมดของนิสิต
func GetInternships(c *fiber.Ctx) error {
	result, err := internships.GetInternshipsByStudent(c.Params("studentId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching internships"})
	}
	return c.JSON(result)
}

// UpdateInternship - อัปเดตการฝึกงาน
func UpdateInternship(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	var internship models.Internship
	if err := c.BodyParser(&internship); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := internships.UpdateInternship(c.Params("id"), studentID, &internship); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating internship"})
	}

	return c.JSON(fiber.Map{"message": "Internship updated successfully"})
}

// DeleteInternship - ลบการฝึกงาน
func DeleteInternship(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	if err := internships.DeleteInternship(c.Params("id"), studentID); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting internship"})
	}

	return c.JSON(fiber.Map{"message": "Internship deleted successfully"})
}
