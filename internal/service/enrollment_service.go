package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lumina-lms/lumina-api/internal/dto"
	"github.com/lumina-lms/lumina-api/internal/models"
	"github.com/lumina-lms/lumina-api/internal/repository"
)

// ErrCourseNotFound indicates a course reference that does not resolve.
var ErrCourseNotFound = errors.New("course not found")

// ErrAlreadyEnrolled indicates a duplicate (student, course) enrollment.
var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

// ErrStudentOnly indicates an operation reserved for the student role.
var ErrStudentOnly = errors.New("only students may perform this action")

// EnrollmentService manages course membership.
type EnrollmentService interface {
	List(ctx context.Context, requesterID uint) ([]dto.EnrollmentResponse, error)
	Enroll(ctx context.Context, requesterID uint, payload dto.EnrollmentCreateRequest) (dto.EnrollmentResponse, error)
}

type enrollmentService struct {
	enrollments repository.EnrollmentRepository
	users       repository.UserRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewEnrollmentService constructs an EnrollmentService instance.
func NewEnrollmentService(enrollments repository.EnrollmentRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		enrollments: enrollments,
		users:       users,
		validator:   validate,
		logger:      logger.With().Str("component", "enrollment_service").Logger(),
	}
}

// List returns the requester's own enrollments for students, and the
// enrollments of owned courses for teachers.
func (s *enrollmentService) List(ctx context.Context, requesterID uint) ([]dto.EnrollmentResponse, error) {
	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return nil, err
	}

	var enrollments []models.Enrollment
	switch requester.Role {
	case models.RoleTeacher:
		enrollments, err = s.enrollments.ListByTeacher(ctx, requester.ID)
	case models.RoleStudent:
		enrollments, err = s.enrollments.ListByStudent(ctx, requester.ID)
	default:
		return nil, errUnknownRole
	}
	if err != nil {
		return nil, err
	}

	return dto.NewEnrollmentResponseSlice(enrollments), nil
}

func (s *enrollmentService) Enroll(ctx context.Context, requesterID uint, payload dto.EnrollmentCreateRequest) (dto.EnrollmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EnrollmentResponse{}, err
	}

	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return dto.EnrollmentResponse{}, err
	}

	if requester.Role != models.RoleStudent {
		return dto.EnrollmentResponse{}, ErrStudentOnly
	}

	enrollment := models.Enrollment{
		StudentID: requester.ID,
		CourseID:  payload.CourseID,
	}

	if err := s.enrollments.Create(ctx, &enrollment); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return dto.EnrollmentResponse{}, ErrCourseNotFound
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return dto.EnrollmentResponse{}, ErrAlreadyEnrolled
		default:
			return dto.EnrollmentResponse{}, err
		}
	}

	s.logger.Info().Uint("student_id", requester.ID).Uint("course_id", payload.CourseID).Msg("student enrolled")

	// Reload with associations for display fields.
	enrollments, err := s.enrollments.ListByStudent(ctx, requester.ID)
	if err != nil {
		return dto.EnrollmentResponse{}, err
	}
	for _, row := range enrollments {
		if row.ID == enrollment.ID {
			return dto.NewEnrollmentResponse(row), nil
		}
	}

	return dto.NewEnrollmentResponse(enrollment), nil
}
