package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/lumina-lms/lumina-api/internal/dto"
	"github.com/lumina-lms/lumina-api/internal/models"
	"github.com/lumina-lms/lumina-api/internal/repository"
)

// ErrInvalidDueDate indicates a due date that is not a valid RFC 3339 timestamp.
var ErrInvalidDueDate = errors.New("invalid due date format")

// ErrNotCourseOwner indicates a teacher acting on a course they do not own.
var ErrNotCourseOwner = errors.New("course is not owned by the requester")

// AssignmentService manages assignment authoring and visibility.
type AssignmentService interface {
	List(ctx context.Context, requesterID uint) ([]dto.AssignmentResponse, error)
	Create(ctx context.Context, requesterID uint, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	users       repository.UserRepository
	validator   *validator.Validate
	sanitizer   *bluemonday.Policy
	logger      zerolog.Logger
}

// NewAssignmentService constructs an AssignmentService instance.
func NewAssignmentService(assignments repository.AssignmentRepository, courses repository.CourseRepository, enrollments repository.EnrollmentRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		courses:     courses,
		enrollments: enrollments,
		users:       users,
		validator:   validate,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      logger.With().Str("component", "assignment_service").Logger(),
	}
}

// List shows students the assignments of courses they are enrolled in, and
// teachers the assignments they authored.
func (s *assignmentService) List(ctx context.Context, requesterID uint) ([]dto.AssignmentResponse, error) {
	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return nil, err
	}

	var assignments []models.Assignment
	switch requester.Role {
	case models.RoleTeacher:
		assignments, err = s.assignments.ListByTeacher(ctx, requester.ID)
	case models.RoleStudent:
		courseIDs, idsErr := s.enrollments.CourseIDsByStudent(ctx, requester.ID)
		if idsErr != nil {
			return nil, idsErr
		}
		assignments, err = s.assignments.ListByCourseIDs(ctx, courseIDs)
	default:
		return nil, errUnknownRole
	}
	if err != nil {
		return nil, err
	}

	return dto.NewAssignmentResponseSlice(assignments), nil
}

func (s *assignmentService) Create(ctx context.Context, requesterID uint, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	if requester.Role != models.RoleTeacher {
		return dto.AssignmentResponse{}, ErrTeacherOnly
	}

	var dueDate *time.Time
	if payload.DueDate != nil && *payload.DueDate != "" {
		parsed, parseErr := time.Parse(time.RFC3339, *payload.DueDate)
		if parseErr != nil {
			return dto.AssignmentResponse{}, ErrInvalidDueDate
		}
		dueDate = &parsed
	}

	course, err := s.courses.GetByID(ctx, payload.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrCourseNotFound
		}
		return dto.AssignmentResponse{}, err
	}

	if course.TeacherID != requester.ID {
		return dto.AssignmentResponse{}, ErrNotCourseOwner
	}

	assignment := models.Assignment{
		Title:       payload.Title,
		Description: s.sanitizer.Sanitize(payload.Description),
		CourseID:    course.ID,
		TeacherID:   requester.ID,
		DueDate:     dueDate,
	}

	if err := s.assignments.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}
	assignment.Course = course

	s.logger.Info().Uint("assignment_id", assignment.ID).Uint("course_id", course.ID).Msg("assignment created")

	return dto.NewAssignmentResponse(assignment), nil
}
