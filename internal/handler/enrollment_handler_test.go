package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lumina-lms/lumina-api/internal/dto"
)

func createCourse(t *testing.T, app *fiber.App, token, title string) dto.CourseResponse {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/courses", token, map[string]string{
		"title": title,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data dto.CourseResponse `json:"data"`
	}
	decodeResponse(t, resp, &envelope)

	return envelope.Data
}

func enroll(t *testing.T, app *fiber.App, token string, courseID uint) {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/enrollments", token, map[string]uint{
		"course_id": courseID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestEnrollStudentOnly(t *testing.T) {
	app, _ := setupApp(t)

	teacher := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	course := createCourse(t, app, teacher.AccessToken, "Algebra I")

	resp := doJSON(t, app, "POST", "/api/enrollments", teacher.AccessToken, map[string]uint{
		"course_id": course.ID,
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, _ := setupApp(t)

	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")

	resp := doJSON(t, app, "POST", "/api/enrollments", student.AccessToken, map[string]uint{
		"course_id": 999,
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestEnrollRejectsDuplicatePair(t *testing.T) {
	app, _ := setupApp(t)

	teacher := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")
	course := createCourse(t, app, teacher.AccessToken, "Algebra I")

	enroll(t, app, student.AccessToken, course.ID)

	resp := doJSON(t, app, "POST", "/api/enrollments", student.AccessToken, map[string]uint{
		"course_id": course.ID,
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// The failed attempt must not leave a second row behind.
	resp = doJSON(t, app, "GET", "/api/enrollments", student.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Data []dto.EnrollmentResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 1)
}

func TestEnrollmentListsScopedByRole(t *testing.T) {
	app, _ := setupApp(t)

	teacherA := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	teacherB := registerUser(t, app, "Tom Teacher", "tom@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")
	other := registerUser(t, app, "Olga Student", "olga@example.com", "student")

	courseA := createCourse(t, app, teacherA.AccessToken, "Algebra I")
	courseB := createCourse(t, app, teacherB.AccessToken, "Biology")

	enroll(t, app, student.AccessToken, courseA.ID)
	enroll(t, app, student.AccessToken, courseB.ID)
	enroll(t, app, other.AccessToken, courseB.ID)

	// A student sees only their own enrollments, with display fields resolved.
	resp := doJSON(t, app, "GET", "/api/enrollments", student.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Data []dto.EnrollmentResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 2)
	require.Equal(t, "Sam Student", listed.Data[0].StudentName)
	require.Equal(t, "Algebra I", listed.Data[0].CourseTitle)

	// A teacher sees enrollments into their own courses only.
	resp = doJSON(t, app, "GET", "/api/enrollments", teacherB.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 2)
	for _, enrollment := range listed.Data {
		require.Equal(t, courseB.ID, enrollment.CourseID)
	}

	resp = doJSON(t, app, "GET", "/api/enrollments", teacherA.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 1)
	require.Equal(t, courseA.ID, listed.Data[0].CourseID)
}
