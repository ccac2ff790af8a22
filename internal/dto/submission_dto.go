package dto

import (
	"time"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// SubmissionCreateRequest is the payload for submitting assignment work.
type SubmissionCreateRequest struct {
	AssignmentID uint   `json:"assignment_id" validate:"required,gt=0"`
	Content      string `json:"content" validate:"required"`
	FileURL      string `json:"file_url" validate:"omitempty,url,max=512"`
}

// SubmissionResponse is a submission row with its resolved assignment title.
type SubmissionResponse struct {
	ID              uint   `json:"id"`
	AssignmentID    uint   `json:"assignment_id"`
	AssignmentTitle string `json:"assignment"`
	StudentID       uint   `json:"student_id"`
	Content         string `json:"content"`
	FileURL         string `json:"file_url,omitempty"`
	SubmittedAt     string `json:"submitted_at"`
}

// NewSubmissionResponse converts a Submission model with a preloaded
// assignment into a DTO.
func NewSubmissionResponse(model models.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:              model.ID,
		AssignmentID:    model.AssignmentID,
		AssignmentTitle: model.Assignment.Title,
		StudentID:       model.StudentID,
		Content:         model.Content,
		FileURL:         model.FileURL,
		SubmittedAt:     model.SubmittedAt.Format(time.RFC3339),
	}
}

// NewSubmissionResponseSlice converts submission models into DTOs.
func NewSubmissionResponseSlice(submissions []models.Submission) []SubmissionResponse {
	responses := make([]SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		responses = append(responses, NewSubmissionResponse(submission))
	}

	return responses
}
