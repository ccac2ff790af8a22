package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lumina-lms/lumina-api/internal/dto"
	"github.com/lumina-lms/lumina-api/internal/models"
	"github.com/lumina-lms/lumina-api/internal/repository"
)

// DashboardService produces a role-conditional activity summary.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID uint) (dto.DashboardResponse, error)
}

type dashboardService struct {
	users       repository.UserRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
	assignments repository.AssignmentRepository
	submissions repository.SubmissionRepository
	grades      repository.GradeRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	logger      zerolog.Logger
}

// NewDashboardService builds the dashboard aggregator. The cache client may
// be nil; aggregation then always hits the database.
func NewDashboardService(users repository.UserRepository, courses repository.CourseRepository, enrollments repository.EnrollmentRepository, assignments repository.AssignmentRepository, submissions repository.SubmissionRepository, grades repository.GradeRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		users:       users,
		courses:     courses,
		enrollments: enrollments,
		assignments: assignments,
		submissions: submissions,
		grades:      grades,
		cache:       cache,
		cacheTTL:    ttl,
		logger:      logger.With().Str("component", "dashboard_service").Logger(),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID uint) (dto.DashboardResponse, error) {
	cacheKey := fmt.Sprintf("dashboard:user:%d", userID)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Uint("user_id", userID).Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	user, err := resolveRequester(ctx, s.users, userID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	var response dto.DashboardResponse
	switch user.Role {
	case models.RoleTeacher:
		response, err = s.teacherDashboard(ctx, user)
	case models.RoleStudent:
		response, err = s.studentDashboard(ctx, user)
	default:
		return dto.DashboardResponse{}, errUnknownRole
	}
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

func (s *dashboardService) studentDashboard(ctx context.Context, user models.User) (dto.DashboardResponse, error) {
	enrollments, err := s.enrollments.ListByStudent(ctx, user.ID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	courseIDs := make([]uint, 0, len(enrollments))
	courses := make([]models.Course, 0, len(enrollments))
	for _, enrollment := range enrollments {
		courseIDs = append(courseIDs, enrollment.CourseID)
		courses = append(courses, enrollment.Course)
	}

	assignmentCount, err := s.assignments.CountByCourseIDs(ctx, courseIDs)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	submissionCount, err := s.submissions.CountByStudent(ctx, user.ID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	gradedCount, err := s.grades.CountByStudent(ctx, user.ID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	return dto.DashboardResponse{
		User:    dto.NewUserResponse(user),
		Courses: dto.NewCourseResponseSlice(courses),
		Stats: dto.DashboardStats{
			Courses:     int64(len(courses)),
			Enrollments: int64(len(enrollments)),
			Assignments: assignmentCount,
			Submissions: submissionCount,
			Graded:      gradedCount,
		},
	}, nil
}

func (s *dashboardService) teacherDashboard(ctx context.Context, user models.User) (dto.DashboardResponse, error) {
	courses, err := s.courses.ListByTeacher(ctx, user.ID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	enrollmentCount, err := s.enrollments.CountByTeacher(ctx, user.ID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	submissionCount, err := s.submissions.CountByTeacher(ctx, user.ID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	gradedCount, err := s.grades.CountByTeacher(ctx, user.ID)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	pending := submissionCount - gradedCount
	if pending < 0 {
		pending = 0
	}

	return dto.DashboardResponse{
		User:    dto.NewUserResponse(user),
		Courses: dto.NewCourseResponseSlice(courses),
		Stats: dto.DashboardStats{
			Courses:        int64(len(courses)),
			Enrollments:    enrollmentCount,
			Submissions:    submissionCount,
			Graded:         gradedCount,
			PendingGrading: pending,
		},
	}, nil
}
