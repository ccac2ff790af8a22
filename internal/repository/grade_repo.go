package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/lumina-lms/lumina-api/internal/models"
)

// GradeRepository defines persistence operations for grades.
type GradeRepository interface {
	ListByStudent(ctx context.Context, studentID uint) ([]models.Grade, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]models.Grade, error)
	Upsert(ctx context.Context, grade *models.Grade) error
	CountByStudent(ctx context.Context, studentID uint) (int64, error)
	CountByTeacher(ctx context.Context, teacherID uint) (int64, error)
}

type gradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository instantiates a GORM-backed repository.
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &gradeRepository{db: db}
}

// ListByStudent returns grades attached to the student's own submissions.
func (r *gradeRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.WithContext(ctx).
		Joins("JOIN submissions ON submissions.id = grades.submission_id").
		Where("submissions.student_id = ?", studentID).
		Order("grades.graded_at ASC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}

	return grades, nil
}

func (r *gradeRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("graded_at ASC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}

	return grades, nil
}

// Upsert writes the grade for a submission, replacing any existing row in
// the same transaction so a submission never accumulates duplicate grades.
func (r *gradeRepository) Upsert(ctx context.Context, grade *models.Grade) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Grade
		err := tx.Where("submission_id = ?", grade.SubmissionID).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(grade).Error
			}
			return err
		}

		existing.TeacherID = grade.TeacherID
		existing.Grade = grade.Grade
		existing.Feedback = grade.Feedback
		existing.GradedAt = time.Now()
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		*grade = existing
		return nil
	})
}

func (r *gradeRepository) CountByStudent(ctx context.Context, studentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Grade{}).
		Joins("JOIN submissions ON submissions.id = grades.submission_id").
		Where("submissions.student_id = ?", studentID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *gradeRepository) CountByTeacher(ctx context.Context, teacherID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Grade{}).
		Where("teacher_id = ?", teacherID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
