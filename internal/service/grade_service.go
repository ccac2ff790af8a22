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

// ErrSubmissionNotFound indicates a submission reference that does not resolve.
var ErrSubmissionNotFound = errors.New("submission not found")

// ErrNotAssignmentOwner indicates grading a submission for someone else's assignment.
var ErrNotAssignmentOwner = errors.New("submission belongs to another teacher's assignment")

// GradeService manages grading of submissions.
type GradeService interface {
	List(ctx context.Context, requesterID uint) ([]dto.GradeResponse, error)
	Grade(ctx context.Context, requesterID uint, payload dto.GradeCreateRequest) (dto.GradeResponse, error)
}

type gradeService struct {
	grades      repository.GradeRepository
	submissions repository.SubmissionRepository
	users       repository.UserRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewGradeService constructs a GradeService instance.
func NewGradeService(grades repository.GradeRepository, submissions repository.SubmissionRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) GradeService {
	return &gradeService{
		grades:      grades,
		submissions: submissions,
		users:       users,
		validator:   validate,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "grade_service").Logger(),
	}
}

// List shows students the grades on their own submissions, and teachers the
// grades they issued.
func (s *gradeService) List(ctx context.Context, requesterID uint) ([]dto.GradeResponse, error) {
	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return nil, err
	}

	var grades []models.Grade
	switch requester.Role {
	case models.RoleTeacher:
		grades, err = s.grades.ListByTeacher(ctx, requester.ID)
	case models.RoleStudent:
		grades, err = s.grades.ListByStudent(ctx, requester.ID)
	default:
		return nil, errUnknownRole
	}
	if err != nil {
		return nil, err
	}

	return dto.NewGradeResponseSlice(grades), nil
}

// Grade records the teacher's evaluation. Grading the same submission twice
// replaces the earlier grade rather than appending a second row.
func (s *gradeService) Grade(ctx context.Context, requesterID uint, payload dto.GradeCreateRequest) (dto.GradeResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.GradeResponse{}, err
	}

	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return dto.GradeResponse{}, err
	}

	if requester.Role != models.RoleTeacher {
		return dto.GradeResponse{}, ErrTeacherOnly
	}

	submission, err := s.submissions.GetByID(ctx, payload.SubmissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.GradeResponse{}, ErrSubmissionNotFound
		}
		return dto.GradeResponse{}, err
	}

	if submission.Assignment.TeacherID != requester.ID {
		return dto.GradeResponse{}, ErrNotAssignmentOwner
	}

	grade := models.Grade{
		SubmissionID: submission.ID,
		TeacherID:    requester.ID,
		Grade:        payload.Grade,
		Feedback:     s.sanitizer.Sanitize(payload.Feedback),
	}

	if err := s.grades.Upsert(ctx, &grade); err != nil {
		return dto.GradeResponse{}, err
	}

	s.logger.Info().Uint("grade_id", grade.ID).Uint("submission_id", submission.ID).Msg("submission graded")

	return dto.NewGradeResponse(grade), nil
}
