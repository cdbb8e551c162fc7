package controllers

import (
	"net/http"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/dashboard"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard godoc
// @Summary Get student dashboard
// @Description Aggregated summary: career score, counts, status breakdown, profile completion, score history
// @Tags dashboard
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} models.DashboardView
// @Failure 500 {object} map[string]interface{}
// @Router /students/{studentId}/dashboard [get]
func GetDashboard(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}

	view, err := dashboard.BuildDashboard(studentID)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error building dashboard")
	}

	return c.JSON(view)
}
