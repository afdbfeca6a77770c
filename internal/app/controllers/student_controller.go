package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ssms/scholarship/internal/app/models"
	"github.com/ssms/scholarship/internal/app/models/dto"
	"github.com/ssms/scholarship/internal/middleware"
)

// StudentService is the student behaviour the controller needs
type StudentService interface {
	Create(ctx context.Context, req dto.CreateStudentRequest) (int64, error)
	List(ctx context.Context) ([]*models.Student, error)
	Update(ctx context.Context, id int64, req dto.UpdateStudentRequest) error
	Delete(ctx context.Context, id int64) error
}

// StudentController handles student endpoints
type StudentController struct {
	studentService StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// AddStudent handles student creation
// @Summary Add a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.StudentCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields, malformed JSON or storage failure"
// @Failure 405 {object} dto.ErrorResponse
// @Router /add-student/ [post]
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id, err := c.studentService.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.StudentCreatedResponse{
		Message:   "Student added successfully!",
		StudentID: id,
	})
}

// ShowStudents lists every student
// @Summary List students
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /show-students/ [get]
func (c *StudentController) ShowStudents(ctx *gin.Context) {
	students, err := c.studentService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.StudentListResponse{Students: students})
}

// UpdateStudent applies a partial update
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /update-student/{id}/ [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.studentService.Update(ctx.Request.Context(), id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student updated successfully!"})
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /delete-student/{id}/ [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Student deleted successfully!"})
}
