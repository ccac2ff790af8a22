package dto

import (
	"time"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// EnrollmentCreateRequest enrolls the requesting student into a course.
type EnrollmentCreateRequest struct {
	CourseID uint `json:"course_id" validate:"required,gt=0"`
}

// EnrollmentResponse is an enrollment row with resolved display fields.
type EnrollmentResponse struct {
	ID          uint      `json:"id"`
	StudentID   uint      `json:"student_id"`
	CourseID    uint      `json:"course_id"`
	StudentName string    `json:"student"`
	CourseTitle string    `json:"course"`
	EnrolledAt  time.Time `json:"enrolled_at"`
}

// NewEnrollmentResponse converts an Enrollment model with preloaded
// associations into a DTO.
func NewEnrollmentResponse(model models.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:          model.ID,
		StudentID:   model.StudentID,
		CourseID:    model.CourseID,
		StudentName: model.Student.Name,
		CourseTitle: model.Course.Title,
		EnrolledAt:  model.EnrolledAt,
	}
}

// NewEnrollmentResponseSlice converts enrollment models into DTOs.
func NewEnrollmentResponseSlice(enrollments []models.Enrollment) []EnrollmentResponse {
	responses := make([]EnrollmentResponse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		responses = append(responses, NewEnrollmentResponse(enrollment))
	}

	return responses
}
