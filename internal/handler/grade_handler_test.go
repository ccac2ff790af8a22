package handler_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lumina-lms/lumina-api/internal/dto"
)

func submitWork(t *testing.T, app *fiber.App, token string, assignmentID uint, content string) dto.SubmissionResponse {
	t.Helper()

	resp := doJSON(t, app, "POST", "/api/submissions", token, map[string]interface{}{
		"assignment_id": assignmentID,
		"content":       content,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data dto.SubmissionResponse `json:"data"`
	}
	decodeResponse(t, resp, &envelope)

	return envelope.Data
}

func TestSubmitRequiresEnrollment(t *testing.T) {
	app, _ := setupApp(t)

	teacher := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")
	course := createCourse(t, app, teacher.AccessToken, "Algebra I")
	assignment := createAssignment(t, app, teacher.AccessToken, course.ID, "Homework 1")

	resp := doJSON(t, app, "POST", "/api/submissions", student.AccessToken, map[string]interface{}{
		"assignment_id": assignment.ID,
		"content":       "my answers",
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/submissions", student.AccessToken, map[string]interface{}{
		"assignment_id": 999,
		"content":       "my answers",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	enroll(t, app, student.AccessToken, course.ID)

	submission := submitWork(t, app, student.AccessToken, assignment.ID, "my answers")
	require.Equal(t, "Homework 1", submission.AssignmentTitle)
	require.Equal(t, student.User.ID, submission.StudentID)
}

func TestGradeChecksAssignmentOwnership(t *testing.T) {
	app, _ := setupApp(t)

	owner := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	intruder := registerUser(t, app, "Tom Teacher", "tom@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")

	course := createCourse(t, app, owner.AccessToken, "Algebra I")
	assignment := createAssignment(t, app, owner.AccessToken, course.ID, "Homework 1")
	enroll(t, app, student.AccessToken, course.ID)
	submission := submitWork(t, app, student.AccessToken, assignment.ID, "my answers")

	resp := doJSON(t, app, "POST", "/api/grades", student.AccessToken, map[string]interface{}{
		"submission_id": submission.ID,
		"grade":         "A",
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/grades", intruder.AccessToken, map[string]interface{}{
		"submission_id": submission.ID,
		"grade":         "A",
	})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/grades", owner.AccessToken, map[string]interface{}{
		"submission_id": 999,
		"grade":         "A",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRegradeReplacesPriorGrade(t *testing.T) {
	app, _ := setupApp(t)

	teacher := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")

	course := createCourse(t, app, teacher.AccessToken, "Algebra I")
	assignment := createAssignment(t, app, teacher.AccessToken, course.ID, "Homework 1")
	enroll(t, app, student.AccessToken, course.ID)
	submission := submitWork(t, app, student.AccessToken, assignment.ID, "my answers")

	resp := doJSON(t, app, "POST", "/api/grades", teacher.AccessToken, map[string]interface{}{
		"submission_id": submission.ID,
		"grade":         "B",
		"feedback":      "solid work",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/grades", teacher.AccessToken, map[string]interface{}{
		"submission_id": submission.ID,
		"grade":         "A",
		"feedback":      "even better after revision",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The student sees exactly one grade per submission, carrying the
	// latest value.
	resp = doJSON(t, app, "GET", "/api/grades", student.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var listed struct {
		Data []dto.GradeResponse `json:"data"`
	}
	decodeResponse(t, resp, &listed)
	require.Len(t, listed.Data, 1)
	require.Equal(t, "A", listed.Data[0].Grade)
	require.Equal(t, "even better after revision", listed.Data[0].Feedback)
	require.Equal(t, submission.ID, listed.Data[0].SubmissionID)
}

func TestFullCourseWorkflow(t *testing.T) {
	app, _ := setupApp(t)

	teacher := registerUser(t, app, "Tina Teacher", "tina@example.com", "teacher")
	student := registerUser(t, app, "Sam Student", "sam@example.com", "student")

	course := createCourse(t, app, teacher.AccessToken, "Algebra I")
	enroll(t, app, student.AccessToken, course.ID)
	assignment := createAssignment(t, app, teacher.AccessToken, course.ID, "Homework 1")
	submission := submitWork(t, app, student.AccessToken, assignment.ID, "my answers")

	resp := doJSON(t, app, "POST", "/api/grades", teacher.AccessToken, map[string]interface{}{
		"submission_id": submission.ID,
		"grade":         "A",
		"feedback":      "great",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The teacher sees the submission for their assignment.
	resp = doJSON(t, app, "GET", "/api/submissions", teacher.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var submissions struct {
		Data []dto.SubmissionResponse `json:"data"`
	}
	decodeResponse(t, resp, &submissions)
	require.Len(t, submissions.Data, 1)
	require.Equal(t, submission.ID, submissions.Data[0].ID)

	// The student sees the grade issued for their work.
	resp = doJSON(t, app, "GET", "/api/grades", student.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var grades struct {
		Data []dto.GradeResponse `json:"data"`
	}
	decodeResponse(t, resp, &grades)
	require.Len(t, grades.Data, 1)
	require.Equal(t, "A", grades.Data[0].Grade)
	require.Equal(t, teacher.User.ID, grades.Data[0].TeacherID)
}
