package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// EnrollmentRepository defines persistence operations for enrollments.
type EnrollmentRepository interface {
	ListByStudent(ctx context.Context, studentID uint) ([]models.Enrollment, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]models.Enrollment, error)
	CourseIDsByStudent(ctx context.Context, studentID uint) ([]uint, error)
	Exists(ctx context.Context, studentID, courseID uint) (bool, error)
	Create(ctx context.Context, enrollment *models.Enrollment) error
	CountByTeacher(ctx context.Context, teacherID uint) (int64, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository instantiates a GORM-backed repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("enrolled_at ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

// ListByTeacher returns enrollments for every course the teacher owns.
func (r *enrollmentRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.teacher_id = ?", teacherID).
		Order("enrollments.enrolled_at ASC").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (r *enrollmentRepository) CourseIDsByStudent(ctx context.Context, studentID uint) ([]uint, error) {
	var courseIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("student_id = ?", studentID).
		Pluck("course_id", &courseIDs).Error
	if err != nil {
		return nil, err
	}

	return courseIDs, nil
}

func (r *enrollmentRepository) Exists(ctx context.Context, studentID, courseID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Create inserts an enrollment after verifying, inside one transaction, that
// the course exists and the (student, course) pair is not already enrolled.
// Returns gorm.ErrRecordNotFound for a missing course and
// gorm.ErrDuplicatedKey for a duplicate pair.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.First(&course, enrollment.CourseID).Error; err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.Enrollment{}).
			Where("student_id = ? AND course_id = ?", enrollment.StudentID, enrollment.CourseID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return gorm.ErrDuplicatedKey
		}

		return tx.Create(enrollment).Error
	})
}

func (r *enrollmentRepository) CountByTeacher(ctx context.Context, teacherID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.teacher_id = ?", teacherID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
