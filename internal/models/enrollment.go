package models

import "time"

// Enrollment links a student to a course. The (student, course) pair is
// unique; the repository enforces it transactionally so the check also holds
// on databases migrated before the composite index existed.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StudentID  uint      `gorm:"not null;uniqueIndex:idx_enrollment_pair" json:"student_id"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_enrollment_pair" json:"course_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
	Student    User      `gorm:"foreignKey:StudentID" json:"-"`
	Course     Course    `gorm:"foreignKey:CourseID" json:"-"`
}
