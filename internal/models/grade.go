package models

import "time"

// Grade records a teacher's evaluation of one submission. A submission holds
// at most one grade; regrading overwrites the existing row in place.
type Grade struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	SubmissionID uint       `gorm:"not null;uniqueIndex" json:"submission_id"`
	TeacherID    uint       `gorm:"not null;index" json:"teacher_id"`
	Grade        string     `gorm:"size:10;not null" json:"grade"`
	Feedback     string     `gorm:"type:text" json:"feedback"`
	GradedAt     time.Time  `gorm:"autoCreateTime" json:"graded_at"`
	Submission   Submission `gorm:"foreignKey:SubmissionID" json:"-"`
	Teacher      User       `gorm:"foreignKey:TeacherID" json:"-"`
}
