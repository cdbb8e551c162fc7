package controllers

import (
	"net/http"

	DB "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/database"
	tasks "github.com/Deepak-csengineer05/zonavi-scms-sub000/src/jobs"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
)

// RecalculateAllScores godoc
// @Summary      Enqueue a bulk career-score recalculation
// @Description  Recomputes the career score of every student in the background. Requires Asynq (Redis) configured.
// @Tags         admin
// @Produce      json
// @Success      202 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /admin/recalculate-scores [post]
func RecalculateAllScores(c *fiber.Ctx) error {
	if !middleware.RequireRole(c, "Admin") {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}
	if DB.AsynqClient == nil {
		return utils.HandleError(c, http.StatusServiceUnavailable, "Background jobs not available")
	}

	task, err := tasks.NewRecalcAllScoresTask()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error creating task")
	}

	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error enqueueing task")
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"message": "Score recalculation enqueued",
	})
}
