package dto

import (
	"time"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// CourseCreateRequest is the payload for creating a course.
type CourseCreateRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// CourseResponse is the course summary returned to API clients. TeacherName
// is null when the owning teacher reference no longer resolves.
type CourseResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TeacherID   uint      `json:"teacher_id"`
	TeacherName *string   `json:"teacher"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCourseResponse converts a Course model into a DTO. The Teacher
// association must be preloaded for the display name to resolve.
func NewCourseResponse(model models.Course) CourseResponse {
	response := CourseResponse{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		TeacherID:   model.TeacherID,
		CreatedAt:   model.CreatedAt,
	}

	if model.Teacher.ID != 0 {
		name := model.Teacher.Name
		response.TeacherName = &name
	}

	return response
}

// NewCourseResponseSlice converts course models into DTOs.
func NewCourseResponseSlice(courses []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}

	return responses
}
