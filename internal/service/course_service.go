package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/lumina-lms/lumina-api/internal/dto"
	"github.com/lumina-lms/lumina-api/internal/models"
	"github.com/lumina-lms/lumina-api/internal/repository"
)

// ErrTeacherOnly indicates an operation reserved for the teacher role.
var ErrTeacherOnly = errors.New("only teachers may perform this action")

// CourseService manages the course directory.
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Create(ctx context.Context, requesterID uint, payload dto.CourseCreateRequest) (dto.CourseResponse, error)
}

type courseService struct {
	courses   repository.CourseRepository
	users     repository.UserRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewCourseService constructs a CourseService instance.
func NewCourseService(courses repository.CourseRepository, users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		courses:   courses,
		users:     users,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

// List is open to any authenticated identity regardless of role.
func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResponseSlice(courses), nil
}

func (s *courseService) Create(ctx context.Context, requesterID uint, payload dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	requester, err := resolveRequester(ctx, s.users, requesterID)
	if err != nil {
		return dto.CourseResponse{}, err
	}

	if requester.Role != models.RoleTeacher {
		return dto.CourseResponse{}, ErrTeacherOnly
	}

	course := models.Course{
		Title:       payload.Title,
		Description: s.sanitizer.Sanitize(payload.Description),
		TeacherID:   requester.ID,
	}

	if err := s.courses.Create(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}
	course.Teacher = requester

	s.logger.Info().Uint("course_id", course.ID).Uint("teacher_id", requester.ID).Msg("course created")

	return dto.NewCourseResponse(course), nil
}
