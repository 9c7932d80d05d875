package controllers

import (
	"errors"
	"testing"

	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnrollCreatesActiveEnrollment(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")
	student := createTestUser(t, db, "student")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	resp, env := doJSON(t, app, "POST", "/api/enrollments", authToken(t, student), fiber.Map{"course_id": course.ID}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", student.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, models.EnrollmentActive, enrollment.Status)
	assert.Equal(t, 0, enrollment.Progress)
}

func TestEnrollTwiceReportsConflictAndKeepsOneRow(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")
	student := createTestUser(t, db, "student")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	resp, _ := doJSON(t, app, "POST", "/api/enrollments", authToken(t, student), fiber.Map{"course_id": course.ID}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, "POST", "/api/enrollments", authToken(t, student), fiber.Map{"course_id": course.ID}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.False(t, env.Status)

	var count int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", student.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollUnknownCourseNotFound(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	student := createTestUser(t, db, "student")

	resp, _ := doJSON(t, app, "POST", "/api/enrollments", authToken(t, student), fiber.Map{"course_id": 9999}, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var count int64
	db.Model(&models.Enrollment{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

// The unique index is what stops the concurrent double-enroll after the
// friendly pre-check has already passed for both requests.
func TestDuplicateEnrollmentInsertTranslatesToDuplicatedKey(t *testing.T) {
	db := setupCourseTestDB(t)

	owner := createTestUser(t, db, "instructor")
	student := createTestUser(t, db, "student")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	first := models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentActive}
	require.NoError(t, db.Create(&first).Error)

	second := models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentActive}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))
}

func TestEnrollmentListScopedToRequester(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")
	ana := createTestUser(t, db, "ana")
	bob := createTestUser(t, db, "bob")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	require.NoError(t, db.Create(&models.Enrollment{UserID: ana.ID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)
	require.NoError(t, db.Create(&models.Enrollment{UserID: bob.ID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)

	resp, env := doJSON(t, app, "GET", "/api/enrollments", authToken(t, ana), nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Enrollments []models.Enrollment `json:"enrollments"`
	}
	require.NoError(t, jsonUnmarshal(env.Data, &data))
	require.Len(t, data.Enrollments, 1)
	assert.Equal(t, ana.ID, data.Enrollments[0].UserID)
}

func TestUpdateEnrollmentValidatesStatusAndProgress(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")
	student := createTestUser(t, db, "student")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	enrollment := models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentActive}
	require.NoError(t, db.Create(&enrollment).Error)

	path := enrollmentPath(enrollment.ID)

	resp, _ := doJSON(t, app, "PUT", path, authToken(t, student), fiber.Map{"progress": 150}, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", path, authToken(t, student), fiber.Map{"status": "paused"}, nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", path, authToken(t, student), fiber.Map{"status": "completed", "progress": 100}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Enrollment
	require.NoError(t, db.First(&updated, enrollment.ID).Error)
	assert.Equal(t, models.EnrollmentCompleted, updated.Status)
	assert.Equal(t, 100, updated.Progress)
}

func TestDeleteEnrollmentAllowsReenroll(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")
	student := createTestUser(t, db, "student")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	enrollment := models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentActive}
	require.NoError(t, db.Create(&enrollment).Error)

	resp, _ := doJSON(t, app, "DELETE", enrollmentPath(enrollment.ID), authToken(t, student), nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/enrollments", authToken(t, student), fiber.Map{"course_id": course.ID}, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestActivationTokenDoesNotAuthorizeEnrollment(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	// A pending user holds only the emailed activation token
	pending := models.User{Username: "pending", Email: "pending@test.local", Password: "x", IsActive: false}
	require.NoError(t, db.Create(&pending).Error)

	activation, err := middleware.GenerateActivationToken(pending.ID)
	require.NoError(t, err)

	resp, _ := doJSON(t, app, "POST", "/api/enrollments", activation, fiber.Map{"course_id": course.ID}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var count int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", pending.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAjaxEnrollRequiresMarkerHeader(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")
	student := createTestUser(t, db, "student")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	// Missing X-Requested-With
	resp, _ := doJSON(t, app, "POST", "/ajax/enroll", authToken(t, student), fiber.Map{"course_id": course.ID}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	ajaxHeaders := map[string]string{"X-Requested-With": "XMLHttpRequest"}

	resp, env := doJSON(t, app, "POST", "/ajax/enroll", authToken(t, student), fiber.Map{"course_id": course.ID}, ajaxHeaders)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var data struct {
		CourseTitle string `json:"course_title"`
	}
	require.NoError(t, jsonUnmarshal(env.Data, &data))
	assert.Equal(t, course.Title, data.CourseTitle)

	// Second programmatic enroll conflicts
	resp, _ = doJSON(t, app, "POST", "/ajax/enroll", authToken(t, student), fiber.Map{"course_id": course.ID}, ajaxHeaders)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// Unknown course id
	resp, _ = doJSON(t, app, "POST", "/ajax/enroll", authToken(t, student), fiber.Map{"course_id": 9999}, ajaxHeaders)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
