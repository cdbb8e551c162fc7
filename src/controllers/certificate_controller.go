package controllers

import (
	"net/http"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/certificates"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateCertificate(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}
	objID, err := primitive.ObjectIDFromHex(studentID)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid student ID"})
	}

	var certificate models.Certificate
	if err := c.BodyParser(&certificate); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}
	certificate.StudentID = objID

	if err := certificates.CreateCertificate(&certificate); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating certificate"})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":     "Certificate created successfully",
		"certificate": certificate,
	})
}

// GetCertificates - ดึงใบรับรองทั้งหมดของนิสิต
func GetCertificates(c *fiber.Ctx) error {
	result, err := certificates.GetCertificatesByStudent(c.Params("studentId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching certificates"})
	}
	return c.JSON(result)
}

// UpdateCertificate - อัปเดตใบรับรอง
func UpdateCertificate(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	var certificate models.Certificate
	if err := c.BodyParser(&certificate); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if err := certificates.UpdateCertificate(c.Params("id"), studentID, &certificate); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating certificate"})
	}

	return c.JSON(fiber.Map{"message": "Certificate updated successfully"})
}

// DeleteCertificate - ลบใบรับรอง
func DeleteCertificate(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Not allowed"})
	}

	if err := certificates.DeleteCertificate(c.Params("id"), studentID); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting certificate"})
	}

	return c.JSON(fiber.Map{"message": "Certificate deleted successfully"})
}
