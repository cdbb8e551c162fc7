package controllers

import (
	"net/http"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/projects"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateProject(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	project.StudentID = objID

	if err := projects.CreateProject(&project); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating project"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Project created successfully",
		"project": project,
	})
}

// GetProjects - ดึงโปรเจกต์ทั้งหมดของนิสิต
func GetProjects(c *fiber.Ctx) error {
	result, err := projects.GetProjectsByStudent(c.Params("studentId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching projects"})
	}
	return c.JSON(result)
}

// UpdateProject - อัปเดตโปรเจกต์
func UpdateProject(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := projects.UpdateProject(c.Params("id"), studentID, &project); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating project"})
	}

	return c.JSON(fiber.Map{"message": "Project updated successfully"})
}

// DeleteProject - ลบโปรเจกต์
func DeleteProject(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	if err := projects.DeleteProject(c.Params("id"), studentID); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting project"})
	}

	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
