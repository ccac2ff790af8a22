package models

import "time"

// Submission is a student's answer to an assignment. Submissions are an
// append-only log; resubmitting creates a new row rather than replacing.
type Submission struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	AssignmentID uint       `gorm:"not null;index" json:"assignment_id"`
	StudentID    uint       `gorm:"not null;index" json:"student_id"`
	Content      string     `gorm:"type:text" json:"content"`
	FileURL      string     `gorm:"size:512" json:"file_url"`
	SubmittedAt  time.Time  `gorm:"autoCreateTime" json:"submitted_at"`
	Assignment   Assignment `gorm:"foreignKey:AssignmentID" json:"-"`
	Student      User       `gorm:"foreignKey:StudentID" json:"-"`
}
