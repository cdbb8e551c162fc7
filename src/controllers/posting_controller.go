package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/postings"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatePosting godoc
// @Summary Create job posting
// @Description Employer/admin publishes a posting; it auto-closes at the deadline
// @Tags postings
// @Accept json
// @Produce json
// @Param posting body object true "Job posting"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /postings [post]
func CreatePosting(c *fiber.Ctx) error {
	if !middleware.RequireRole(c, "Employer", "Admin") {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}

	var req struct {
		Title          string    `json:"title" validate:"required"`
		Company        string    `json:"company" validate:"required"`
		Location       string    `json:"location"`
		Description    string    `json:"description"`
		SkillsRequired []string  `json:"skillsRequired"`
		Deadline       time.Time `json:"deadline" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	postedBy := primitive.NilObjectID
	if refID, ok := c.Locals("refId").(string); ok {
		if objID, err := primitive.ObjectIDFromHex(refID); err == nil {
			postedBy = objID
		}
	}

	posting := models.JobPosting{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		Deadline:       req.Deadline,
		PostedBy:       postedBy,
	}
	if err := postings.CreatePosting(&posting); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Posting created successfully",
		"posting": posting,
	})
}

// GetPostings - ดึงประกาศทั้งหมดแบบแบ่งหน้า
func GetPostings(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	result, total, err := postings.GetPostings(params)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching postings")
	}

	return c.JSON(models.NewPaginatedResponse(result, total, params))
}

// GetActivePostings - ดึงประกาศที่ยังเปิดรับและยังไม่เลย deadline
func GetActivePostings(c *fiber.Ctx) error {
	result, err := postings.GetActivePostings()
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching postings")
	}
	return c.JSON(result)
}

// GetPostingByID - ดึงประกาศตาม ID
func GetPostingByID(c *fiber.Ctx) error {
	posting, err := postings.GetPostingByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Posting not found")
	}
	return c.JSON(posting)
}

// UpdatePosting - อัปเดตประกาศ
func UpdatePosting(c *fiber.Ctx) error {
	if !middleware.RequireRole(c, "Employer", "Admin") {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}

	var posting models.JobPosting
	if err := c.BodyParser(&posting); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input")
	}

	if err := postings.UpdatePosting(c.Params("id"), &posting); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error updating posting")
	}

	return c.JSON(fiber.Map{"message": "Posting updated successfully"})
}

// DeletePosting - ลบประกาศ
func DeletePosting(c *fiber.Ctx) error {
	if !middleware.RequireRole(c, "Employer", "Admin") {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}

	if err := postings.DeletePosting(c.Params("id")); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error deleting posting")
	}

	return c.JSON(fiber.Map{"message": "Posting deleted successfully"})
}

// GetRecommendations godoc
// @Summary Get job recommendations
// @Description Open postings ranked by match percentage against the student's skills
// @Tags postings
// @Produce json
// @Param studentId path string true "Student ID"
// @Param recommendedOnly query bool false "Only postings with match >= 50%"
// @Success 200 {array} models.RankedPosting
// @Failure 500 {object} map[string]interface{}
// @Router /students/{studentId}/recommendations [get]
func GetRecommendations(c *fiber.Ctx) error {
	studentID := c.Params("studentId")
	if !middleware.RequireOwner(c, studentID) {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}

	recommendedOnly := c.Query("recommendedOnly") == "true"

	result, err := postings.RecommendationsForStudent(studentID, recommendedOnly)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching recommendations")
	}
	return c.JSON(result)
}
