package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/middleware"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/models"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/services/students"
	"github.com/Deepak-csengineer05/zonavi-scms-sub000/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

func cleanList(arr []string) []string {
	var result []string
	for _, v := range arr {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// CreateStudent godoc
// @Summary Create student
// @Description Register a student profile with a login account
// @Tags students
// @Accept json
// @Produce json
// @Param student body object true "Student profile and password"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /students [post]
func CreateStudent(c *fiber.Ctx) error {
	var req struct {
		Name     string  `json:"name" validate:"required"`
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password" validate:"required,min=6"`
		Branch   string  `json:"branch"`
		Year     string  `json:"year"`
		CGPA     float64 `json:"cgpa" validate:"gte=0,lte=10"`
		Phone    string  `json:"phone"`
		LinkedIn string  `json:"linkedin"`
		GitHub   string  `json:"github"`
		Bio      string  `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input format"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	student := models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Branch:   req.Branch,
		Year:     req.Year,
		CGPA:     req.CGPA,
		Phone:    req.Phone,
		LinkedIn: req.LinkedIn,
		GitHub:   req.GitHub,
		Bio:      req.Bio,
	}
	user := models.User{
		Email:    req.Email,
		Password: req.Password,
	}

	if err := students.CreateStudent(&user, &student); err != nil {
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": student,
	})
}

// GetStudents godoc
// @Summary Get students
// @Description Get all students with optional filters
// @Tags students
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search keyword"
// @Param sortBy query string false "Sort by field"
// @Param order query string false "Order (asc/desc)"
// @Param branch query string false "Branch (comma separated)"
// @Param year query string false "Year (comma separated)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /students [get]
func GetStudents(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", params.Search)
	params.SortBy = c.Query("sortBy", params.SortBy)
	params.Order = c.Query("order", params.Order)

	branches := cleanList(strings.Split(c.Query("branch"), ","))
	years := cleanList(strings.Split(c.Query("year"), ","))

	result, total, totalPages, err := students.GetStudentsWithFilter(params, branches, years)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error fetching students")
	}

	return c.JSON(fiber.Map{
		"data":       result,
		"total":      total,
		"page":       params.Page,
		"limit":      params.Limit,
		"totalPages": totalPages,
	})
}

// GetStudentByID - ดึงข้อมูลนิสิตตาม ID
func GetStudentByID(c *fiber.Ctx) error {
	id := c.Params("id")
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid student ID")
	}

	student, err := students.GetStudentById(objID)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, "Student not found")
	}

	return c.JSON(student)
}

// UpdateStudent - อัปเดตโปรไฟล์นิสิต
func UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	if !middleware.RequireOwner(c, id) {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}

	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input")
	}
	if student.CGPA < 0 || student.CGPA > 10 {
		return utils.HandleError(c, http.StatusBadRequest, "CGPA must be between 0 and 10")
	}

	if err := students.UpdateStudent(id, &student); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error updating student")
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully"})
}

// DeleteStudent - ลบนิสิต (admin only)
func DeleteStudent(c *fiber.Ctx) error {
	if !middleware.RequireRole(c, "Admin") {
		return utils.HandleError(c, http.StatusForbidden, "Not allowed")
	}

	id := c.Params("id")
	if err := students.DeleteStudent(id); err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, "Error deleting student")
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
