package dto

import (
	"time"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// AssignmentCreateRequest is the payload for authoring an assignment.
// DueDate, when present, must be an RFC 3339 timestamp.
type AssignmentCreateRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description string  `json:"description" validate:"omitempty,max=5000"`
	CourseID    uint    `json:"course_id" validate:"required,gt=0"`
	DueDate     *string `json:"due_date"`
}

// AssignmentResponse is an assignment row with its resolved course title.
// DueDate is an RFC 3339 string or null.
type AssignmentResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CourseID    uint      `json:"course_id"`
	CourseTitle string    `json:"course"`
	TeacherID   uint      `json:"teacher_id"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewAssignmentResponse converts an Assignment model with a preloaded course
// into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	response := AssignmentResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		CourseID:    model.CourseID,
		CourseTitle: model.Course.Title,
		TeacherID:   model.TeacherID,
		CreatedAt:   model.CreatedAt,
	}

	if model.DueDate != nil {
		due := model.DueDate.Format(time.RFC3339)
		response.DueDate = &due
	}

	return response
}

// NewAssignmentResponseSlice converts assignment models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}
