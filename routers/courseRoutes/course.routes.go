package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/validators"
	courseValidators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes wires the course, lesson, comment and enrollment resources
// plus the ajax endpoints.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Public reads, owner-scoped writes
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.IDParam("id", "courseID"), controllers.GetCourseDetails)
	courseGroup.Post("/", middleware.JWTMiddleware, courseValidators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.IDParam("id", "courseID"), courseValidators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.IDParam("id", "courseID"), controllers.DeleteCourse)

	lessonGroup := app.Group("/api/lessons")

	lessonGroup.Get("/", controllers.GetLessons)
	lessonGroup.Get("/:id", validators.IDParam("id", "lessonID"), controllers.GetLessonDetails)
	lessonGroup.Post("/", middleware.JWTMiddleware, courseValidators.CreateLesson(), controllers.CreateLesson)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, validators.IDParam("id", "lessonID"), courseValidators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, validators.IDParam("id", "lessonID"), controllers.DeleteLesson)

	commentGroup := app.Group("/api/comments")

	commentGroup.Get("/", controllers.GetComments)
	commentGroup.Post("/", middleware.JWTMiddleware, courseValidators.CreateComment(), controllers.CreateComment)
	commentGroup.Put("/:id", middleware.JWTMiddleware, validators.IDParam("id", "commentID"), courseValidators.UpdateComment(), controllers.UpdateComment)
	commentGroup.Delete("/:id", middleware.JWTMiddleware, validators.IDParam("id", "commentID"), controllers.DeleteComment)

	enrollmentGroup := app.Group("/api/enrollments")

	enrollmentGroup.Get("/", middleware.JWTMiddleware, controllers.GetEnrollments)
	enrollmentGroup.Get("/:id", middleware.JWTMiddleware, validators.IDParam("id", "enrollmentID"), controllers.GetEnrollmentDetails)
	enrollmentGroup.Post("/", middleware.JWTMiddleware, courseValidators.Enroll(), controllers.EnrollInCourse)
	enrollmentGroup.Put("/:id", middleware.JWTMiddleware, validators.IDParam("id", "enrollmentID"), courseValidators.UpdateEnrollment(), controllers.UpdateEnrollment)
	enrollmentGroup.Delete("/:id", middleware.JWTMiddleware, validators.IDParam("id", "enrollmentID"), controllers.DeleteEnrollment)

	// Endpoints for client-side page rendering
	ajaxGroup := app.Group("/ajax")

	ajaxGroup.Get("/courses", controllers.ListCoursesAjax)
	ajaxGroup.Post("/enroll", middleware.JWTMiddleware, courseValidators.RequireAjaxHeader(), courseValidators.Enroll(), controllers.EnrollAjax)
}
