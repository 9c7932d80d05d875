package controllers

import (
	"fmt"
	"testing"

	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseAssignsOwnerFromSession(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	user := createTestUser(t, db, "instructor")

	resp, env := doJSON(t, app, "POST", "/api/courses", authToken(t, user), fiber.Map{
		"title":       "Advanced Go",
		"description": "Concurrency, generics and the runtime.",
		"level":       "advanced",
		"language":    "en",
		"price":       49.99,
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, env.Status)

	var course models.Course
	require.NoError(t, db.Where("title = ?", "Advanced Go").First(&course).Error)
	assert.Equal(t, user.ID, course.OwnerID)
}

func TestCreateCourseRejectsNegativePrice(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	user := createTestUser(t, db, "instructor")

	resp, env := doJSON(t, app, "POST", "/api/courses", authToken(t, user), fiber.Map{
		"title":       "Cheap course",
		"description": "Should not exist.",
		"price":       -1,
	}, nil)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var fields map[string]string
	require.NoError(t, jsonUnmarshal(env.Data, &fields))
	assert.Contains(t, fields, "price")
}

func TestCourseListFilters(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "instructor")

	courses := []models.Course{
		{OwnerID: owner.ID, Title: "Go basics", Description: "Introduction to Go", Level: "beginner", Language: "en"},
		{OwnerID: owner.ID, Title: "Go avanzado", Description: "Go en profundidad", Level: "advanced", Language: "es"},
		{OwnerID: owner.ID, Title: "Cocina", Description: "Recetas", Level: "beginner", Language: "es"},
	}
	for i := range courses {
		require.NoError(t, db.Create(&courses[i]).Error)
	}

	type listData struct {
		Courses []models.Course `json:"courses"`
	}

	cases := []struct {
		query  string
		titles []string
	}{
		{"level=beginner", []string{"Go basics", "Cocina"}},
		{"language=es", []string{"Go avanzado", "Cocina"}},
		{"search=Go", []string{"Go basics", "Go avanzado"}},
		{"level=beginner&language=es", []string{"Cocina"}},
	}

	for _, tc := range cases {
		resp, env := doJSON(t, app, "GET", "/api/courses?"+tc.query, "", nil, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, tc.query)

		var data listData
		require.NoError(t, jsonUnmarshal(env.Data, &data))

		var titles []string
		for _, course := range data.Courses {
			titles = append(titles, course.Title)
		}
		assert.ElementsMatch(t, tc.titles, titles, tc.query)
	}
}

func TestUpdateCourseOwnerOnly(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "owner")
	other := createTestUser(t, db, "other")
	course := createTestCourse(t, db, owner.ID, "Go for beginners")

	path := fmt.Sprintf("/api/courses/%d", course.ID)

	resp, _ := doJSON(t, app, "PUT", path, authToken(t, other), fiber.Map{"title": "Stolen course"}, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "PUT", path, authToken(t, owner), fiber.Map{"title": "Renamed course"}, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Course
	require.NoError(t, db.First(&updated, course.ID).Error)
	assert.Equal(t, "Renamed course", updated.Title)
	// Ownership never moves
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestDeleteCourseCascadesLessonsCommentsEnrollments(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "owner")
	student := createTestUser(t, db, "student")
	course := createTestCourse(t, db, owner.ID, "Doomed course")
	kept := createTestCourse(t, db, owner.ID, "Kept course")

	require.NoError(t, db.Create(&models.Lesson{CourseID: course.ID, Title: "Lesson 1"}).Error)
	require.NoError(t, db.Create(&models.Lesson{CourseID: kept.ID, Title: "Kept lesson"}).Error)
	require.NoError(t, db.Create(&models.Comment{CourseID: course.ID, UserID: student.ID, Body: "bye"}).Error)
	require.NoError(t, db.Create(&models.Enrollment{UserID: student.ID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/courses/%d", course.ID), authToken(t, owner), nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Unscoped().Model(&models.Lesson{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Unscoped().Model(&models.Comment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Unscoped().Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(0), count)
	db.Unscoped().Model(&models.Course{}).Where("id = ?", course.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Sibling course untouched
	db.Model(&models.Lesson{}).Where("course_id = ?", kept.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAjaxCourseList(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "owner")
	createTestCourse(t, db, owner.ID, "Visible course")

	resp, env := doJSON(t, app, "GET", "/ajax/courses", "", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Courses []struct {
			ID       uint   `json:"id"`
			Title    string `json:"title"`
			Level    string `json:"level"`
			Language string `json:"language"`
		} `json:"courses"`
	}
	require.NoError(t, jsonUnmarshal(env.Data, &data))
	require.Len(t, data.Courses, 1)
	assert.Equal(t, "Visible course", data.Courses[0].Title)
	assert.Equal(t, "es", data.Courses[0].Language)
}

func TestLessonWriteRequiresExistingCourse(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	user := createTestUser(t, db, "writer")

	resp, _ := doJSON(t, app, "POST", "/api/lessons", authToken(t, user), fiber.Map{
		"course_id": 9999,
		"title":     "Orphan lesson",
	}, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	course := createTestCourse(t, db, user.ID, "Parent course")

	resp, _ = doJSON(t, app, "POST", "/api/lessons", authToken(t, user), fiber.Map{
		"course_id": course.ID,
		"title":     "First lesson",
		"position":  1,
	}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Unauthenticated write is refused
	resp, _ = doJSON(t, app, "POST", "/api/lessons", "", fiber.Map{
		"course_id": course.ID,
		"title":     "Anonymous lesson",
	}, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLessonListFilteredByCourse(t *testing.T) {
	db := setupCourseTestDB(t)
	app := newCourseApp()

	owner := createTestUser(t, db, "owner")
	courseA := createTestCourse(t, db, owner.ID, "Course A")
	courseB := createTestCourse(t, db, owner.ID, "Course B")

	require.NoError(t, db.Create(&models.Lesson{CourseID: courseA.ID, Title: "A1", Position: 2}).Error)
	require.NoError(t, db.Create(&models.Lesson{CourseID: courseA.ID, Title: "A0", Position: 1}).Error)
	require.NoError(t, db.Create(&models.Lesson{CourseID: courseB.ID, Title: "B1", Position: 1}).Error)

	resp, env := doJSON(t, app, "GET", fmt.Sprintf("/api/lessons?course=%d", courseA.ID), "", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Lessons []models.Lesson `json:"lessons"`
	}
	require.NoError(t, jsonUnmarshal(env.Data, &data))
	require.Len(t, data.Lessons, 2)
	// Ordered by position
	assert.Equal(t, "A0", data.Lessons[0].Title)
	assert.Equal(t, "A1", data.Lessons[1].Title)
}
