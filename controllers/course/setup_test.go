package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/validators"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCourseTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Profile{}, &models.Course{}, &models.Lesson{}, &models.Enrollment{}, &models.Comment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	database.Database = database.DbInstance{Db: db}
	return db
}

// newCourseApp registers the resource routes the way the course router does
func newCourseApp() *fiber.App {
	app := fiber.New()

	app.Get("/api/courses", GetAllCourses)
	app.Get("/api/courses/:id", validators.IDParam("id", "courseID"), GetCourseDetails)
	app.Post("/api/courses", middleware.JWTMiddleware, courseValidator.CreateCourse(), CreateCourse)
	app.Put("/api/courses/:id", middleware.JWTMiddleware, validators.IDParam("id", "courseID"), courseValidator.UpdateCourse(), UpdateCourse)
	app.Delete("/api/courses/:id", middleware.JWTMiddleware, validators.IDParam("id", "courseID"), DeleteCourse)

	app.Get("/api/lessons", GetLessons)
	app.Get("/api/lessons/:id", validators.IDParam("id", "lessonID"), GetLessonDetails)
	app.Post("/api/lessons", middleware.JWTMiddleware, courseValidator.CreateLesson(), CreateLesson)
	app.Put("/api/lessons/:id", middleware.JWTMiddleware, validators.IDParam("id", "lessonID"), courseValidator.UpdateLesson(), UpdateLesson)
	app.Delete("/api/lessons/:id", middleware.JWTMiddleware, validators.IDParam("id", "lessonID"), DeleteLesson)

	app.Get("/api/comments", GetComments)
	app.Post("/api/comments", middleware.JWTMiddleware, courseValidator.CreateComment(), CreateComment)
	app.Put("/api/comments/:id", middleware.JWTMiddleware, validators.IDParam("id", "commentID"), courseValidator.UpdateComment(), UpdateComment)
	app.Delete("/api/comments/:id", middleware.JWTMiddleware, validators.IDParam("id", "commentID"), DeleteComment)

	app.Get("/api/enrollments", middleware.JWTMiddleware, GetEnrollments)
	app.Get("/api/enrollments/:id", middleware.JWTMiddleware, validators.IDParam("id", "enrollmentID"), GetEnrollmentDetails)
	app.Post("/api/enrollments", middleware.JWTMiddleware, courseValidator.Enroll(), EnrollInCourse)
	app.Put("/api/enrollments/:id", middleware.JWTMiddleware, validators.IDParam("id", "enrollmentID"), courseValidator.UpdateEnrollment(), UpdateEnrollment)
	app.Delete("/api/enrollments/:id", middleware.JWTMiddleware, validators.IDParam("id", "enrollmentID"), DeleteEnrollment)

	app.Get("/ajax/courses", ListCoursesAjax)
	app.Post("/ajax/enroll", middleware.JWTMiddleware, courseValidator.RequireAjaxHeader(), courseValidator.Enroll(), EnrollAjax)

	return app
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	user := models.User{
		Username: username,
		Email:    username + "@test.local",
		Password: string(hash),
		Role:     models.RoleUser,
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestCourse(t *testing.T, db *gorm.DB, ownerID uint, title string) models.Course {
	t.Helper()

	course := models.Course{
		OwnerID:     ownerID,
		Title:       title,
		Description: "A course used in tests",
		Level:       "beginner",
		Language:    "es",
	}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("create course: %v", err)
	}
	return course
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func jsonUnmarshal(raw json.RawMessage, v interface{}) error {
	return json.Unmarshal(raw, v)
}

func enrollmentPath(id uint) string {
	return fmt.Sprintf("/api/enrollments/%d", id)
}

// apiEnvelope mirrors middleware.JsonResponse's body shape
type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, headers map[string]string) (*http.Response, apiEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}

	var envelope apiEnvelope
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &envelope); err != nil {
			t.Fatalf("decode body %q: %v", string(raw), err)
		}
	}
	return resp, envelope
}
