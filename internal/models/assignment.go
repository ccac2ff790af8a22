package models

import "time"

// Assignment is authored by a teacher for one of their own courses.
// The due date is optional; assignments without one never expire.
type Assignment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	CourseID    uint       `gorm:"not null;index" json:"course_id"`
	TeacherID   uint       `gorm:"not null;index" json:"teacher_id"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	Course      Course     `gorm:"foreignKey:CourseID" json:"-"`
	Teacher     User       `gorm:"foreignKey:TeacherID" json:"-"`
}

// IsPastDue reports whether the deadline, if any, has passed.
func (a Assignment) IsPastDue(reference time.Time) bool {
	return a.DueDate != nil && reference.After(*a.DueDate)
}
