package handler_test

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lumina-lms/lumina-api/internal/dto"
)

func createAssignment(t *testing.T, app *fiber.App, token string, courseID uint, title string) dto.AssignmentResponse {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/assignments", token, map[string]interface{}{
		"title":     title,
		"course_id": courseID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data dto.AssignmentResponse `json:"data"`
	}
	decodeResponse(t, resp, &envelope)

	return envelope.Data
}

func TestCreateAssignmentValidatesDueDate(t *testing.T) {
	app, _ := setupApp(t)

	teacher := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	course := createCourse(t, app, teacher.AccessToken, "Algebra I")

	resp := doJSON(t, app, "POST", "/api/assignments", teacher.AccessToken, map[string]interface{}{
		"title":     "Homework 1",
		"course_id": course.ID,
		"due_date":  "next tuesday",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	due := time.Date(2026, 10, 1, 23, 59, 0, 0, time.UTC).Format(time.RFC3339)
	resp = doJSON(t, app, "POST", "/api/assignments", teacher.AccessToken, map[string]interface{}{
		"title":     "Homework 1",
		"course_id": course.ID,
		"due_date":  due,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		Data dto.AssignmentResponse `json:"data"`
	}
	decodeResponse(t, resp, &created)
	require.NotNil(t, created.Data.DueDate)
	require.Equal(t, due, *created.Data.DueDate)
	require.Equal(t, "Algebra I", created.Data.CourseTitle)
}

func TestCreateAssignmentChecksCourseOwnership(t *testing.T) {
	app, _ := setupApp(t)

	owner := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	intruder := registerUser(t, app, "Tom Teacher", "tom@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")
	course := createCourse(t, app, owner.AccessToken, "Algebra I")

	resp := doJSON(t, app, "POST", "/api/assignments", student.AccessToken, map[string]interface{}{
		"title":     "Homework 1",
		"course_id": course.ID,
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/assignments", intruder.AccessToken, map[string]interface{}{
		"title":     "Homework 1",
		"course_id": course.ID,
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/assignments", owner.AccessToken, map[string]interface{}{
		"title":     "Homework 1",
		"course_id": 404,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListAssignmentsScopedByRole(t *testing.T) {
	app, _ := setupApp(t)

	teacherA := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	teacherB := registerUser(t, app, "Tom Teacher", "tom@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")
	outsider := registerUser(t, app, "Olga Student", "olga@example.com", "student")

	courseA := createCourse(t, app, teacherA.AccessToken, "Algebra I")
	courseB := createCourse(t, app, teacherB.AccessToken, "Biology")

	createAssignment(t, app, teacherA.AccessToken, courseA.ID, "Homework 1")
	createAssignment(t, app, teacherA.AccessToken, courseA.ID, "Homework 2")
	createAssignment(t, app, teacherB.AccessToken, courseB.ID, "Lab Report")

	enroll(t, app, student.AccessToken, courseA.ID)

	// Teachers see assignments they authored.
	resp := doJSON(t, app, "GET", "/api/assignments", teacherA.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Data []dto.AssignmentResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 2)

	// Students see assignments from enrolled courses only.
	resp = doJSON(t, app, "GET", "/api/assignments", student.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 2)
	for _, assignment := range listed.Data {
		require.Equal(t, courseA.ID, assignment.CourseID)
	}

	// A student with no enrollments sees an empty list, not an error.
	resp = doJSON(t, app, "GET", "/api/assignments", outsider.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &listed)
	require.Empty(t, listed.Data)
}
