package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lumina-lms/lumina-api/internal/dto"
	"github.com/lumina-lms/lumina-api/internal/models"
	"github.com/lumina-lms/lumina-api/internal/repository"
)

// ErrAssignmentNotFound indicates an assignment reference that does not resolve.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrNotEnrolled indicates a submission for a course the student is not enrolled in.
var ErrNotEnrolled = errors.New("not enrolled in the assignment's course")

// SubmissionService manages student submissions.
type SubmissionService interface {
	List(ctx context.Context, requesterID uint) ([]dto.SubmissionResponse, error)
	Submit(ctx context.Context, requesterID uint, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error)
}

type submissionService struct {
	submissions repository.SubmissionRepository
	assignments repository.AssignmentRepository
	enrollments repository.EnrollmentRepository
	users       repository.UserRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewSubmissionService constructs a SubmissionService instance.
func NewSubmissionService(submissions repository.SubmissionRepository, assignments repository.AssignmentRepository, enrollments repository.EnrollmentRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		assignments: assignments,
		enrollments: enrollments,
		users:       users,
		validator:   validate,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "submission_service").Logger(),
	}
}

// List shows students their own submissions, and teachers the submissions
// received for assignments they authored.
func (s *submissionService) List(ctx context.Context, requesterID uint) ([]dto.SubmissionResponse, error) {
	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return nil, err
	}

	var submissions []models.Submission
	switch requester.Role {
	case models.RoleTeacher:
		submissions, err = s.submissions.ListByTeacher(ctx, requester.ID)
	case models.RoleStudent:
		submissions, err = s.submissions.ListByStudent(ctx, requester.ID)
	default:
		return nil, errUnknownRole
	}
	if err != nil {
		return nil, err
	}

	return dto.NewSubmissionResponseSlice(submissions), nil
}

func (s *submissionService) Submit(ctx context.Context, requesterID uint, payload dto.SubmissionCreateRequest) (dto.SubmissionResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SubmissionResponse{}, err
	}

	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return dto.SubmissionResponse{}, err
	}

	assignment, err := s.assignments.GetByID(ctx, payload.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmissionResponse{}, ErrAssignmentNotFound
		}
		return dto.SubmissionResponse{}, err
	}

	enrolled, err := s.enrollments.Exists(ctx, requester.ID, assignment.CourseID)
	if err != nil {
		return dto.SubmissionResponse{}, err
	}
	if !enrolled {
		return dto.SubmissionResponse{}, ErrNotEnrolled
	}

	submission := models.Submission{
		AssignmentID: assignment.ID,
		StudentID:    requester.ID,
		Content:      s.sanitizer.Sanitize(payload.Content),
		FileURL:      payload.FileURL,
	}

	if err := s.submissions.Create(ctx, &submission); err != nil {
		return dto.SubmissionResponse{}, err
	}
	submission.Assignment = assignment

	s.logger.Info().Uint("submission_id", submission.ID).Uint("assignment_id", assignment.ID).Msg("submission created")

	return dto.NewSubmissionResponse(submission), nil
}
