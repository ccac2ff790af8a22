package dto

import (
	"time"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// GradeCreateRequest records or replaces the grade for a submission.
type GradeCreateRequest struct {
	SubmissionID uint   `json:"submission_id" validate:"required,gt=0"`
	Grade        string `json:"grade" validate:"required,max=10"`
	Feedback     string `json:"feedback" validate:"omitempty,max=2000"`
}

// GradeResponse is a grade row as returned to API clients.
type GradeResponse struct {
	ID           uint   `json:"id"`
	SubmissionID uint   `json:"submission_id"`
	TeacherID    uint   `json:"teacher_id"`
	Grade        string `json:"grade"`
	Feedback     string `json:"feedback"`
	GradedAt     string `json:"graded_at"`
}

// NewGradeResponse converts a Grade model into a DTO.
func NewGradeResponse(model models.Grade) GradeResponse {
	return GradeResponse{
		ID:           model.ID,
		SubmissionID: model.SubmissionID,
		TeacherID:    model.TeacherID,
		Grade:        model.Grade,
		Feedback:     model.Feedback,
		GradedAt:     model.GradedAt.Format(time.RFC3339),
	}
}

// NewGradeResponseSlice converts grade models into DTOs.
func NewGradeResponseSlice(grades []models.Grade) []GradeResponse {
	responses := make([]GradeResponse, 0, len(grades))
	for _, grade := range grades {
		responses = append(responses, NewGradeResponse(grade))
	}

	return responses
}
