package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lumina-lms/lumina-api/internal/dto"
)

func TestDashboardReflectsActivity(t *testing.T) {
	app, _ := setupApp(t)

	teacher := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")

	course := createCourse(t, app, teacher.AccessToken, "Algebra I")
	enroll(t, app, student.AccessToken, course.ID)
	assignment := createAssignment(t, app, teacher.AccessToken, course.ID, "Homework 1")
	submitWork(t, app, student.AccessToken, assignment.ID, "my answers")

	resp := doJSON(t, app, "GET", "/api/dashboard", student.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var dashboard struct {
		Data dto.DashboardResponse `json:"data"`
	}
	decodeResponse(t, resp, &dashboard)
	require.Equal(t, student.User.ID, dashboard.Data.User.ID)
	require.Len(t, dashboard.Data.Courses, 1)
	require.EqualValues(t, 1, dashboard.Data.Stats.Enrollments)
	require.EqualValues(t, 1, dashboard.Data.Stats.Assignments)
	require.EqualValues(t, 1, dashboard.Data.Stats.Submissions)
	require.EqualValues(t, 0, dashboard.Data.Stats.Graded)

	// The teacher view counts the ungraded submission as pending.
	resp = doJSON(t, app, "GET", "/api/dashboard", teacher.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &dashboard)
	require.Equal(t, teacher.User.ID, dashboard.Data.User.ID)
	require.EqualValues(t, 1, dashboard.Data.Stats.PendingGrading)
}
