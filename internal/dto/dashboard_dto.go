package dto

// DashboardStats aggregates activity counts for the requesting user.
// Students count their own enrollments, visible assignments, submissions and
// graded submissions; teachers count owned courses, enrollments into them,
// received submissions and the subset still waiting on a grade.
type DashboardStats struct {
	Courses        int64 `json:"courses"`
	Enrollments    int64 `json:"enrollments"`
	Assignments    int64 `json:"assignments"`
	Submissions    int64 `json:"submissions"`
	Graded         int64 `json:"graded"`
	PendingGrading int64 `json:"pending_grading"`
}

// DashboardResponse is the aggregated dashboard payload.
type DashboardResponse struct {
	User    UserResponse     `json:"user"`
	Courses []CourseResponse `json:"courses"`
	Stats   DashboardStats   `json:"stats"`
}
