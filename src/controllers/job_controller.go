package controllers

import (
	"net/http"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/jobs"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateJob(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var job models.Job
	if err := c.BodyParser(&job); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	job.StudentID = objID

	if err := jobs.CreateJob(&job); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"job":     job,
	})
}

// GetJobs - ดึงรายการสมัครงานทั้งหมดของนิสิต
func GetJobs(c *fiber.Ctx) error {
	result, err := jobs.GetJobsByStudent(c.Params("studentId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching jobs"})
	}
	return c.JSON(result)
}

// UpdateJobStatus - อัปเดตสถานะการสมัครงาน
func UpdateJobStatus(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := jobs.UpdateJobStatus(c.Params("id"), studentID, req.Status); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Job status updated successfully"})
}

// DeleteJob - ลบรายการสมัครงาน
func DeleteJob(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	if err := jobs.DeleteJob(c.Params("id"), studentID); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting job"})
	}

	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}
