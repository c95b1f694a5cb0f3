package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/atikurshafi/cse327/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	sectionController *controllers.SectionController,
	instructorController *controllers.InstructorController,
	roomController *controllers.RoomController,
	timeslotController *controllers.TimeslotController,
	scheduleController *controllers.ScheduleController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Section routes
	sections := v1.Group("/sections")
	{
		sections.GET("", sectionController.GetAllSections)
		sections.GET("/course/:courseId", sectionController.GetSectionsByCourseID)
		sections.GET("/:id", sectionController.GetSectionByID)
		sections.POST("", sectionController.CreateSection)
		sections.PUT("/:id", sectionController.UpdateSection)
		sections.DELETE("/:id", sectionController.DeleteSection)
	}

	// Instructor routes
	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.GetAllInstructors)
		instructors.GET("/:id", instructorController.GetInstructorByID)
		instructors.POST("", instructorController.CreateInstructor)
		instructors.PUT("/:id", instructorController.UpdateInstructor)
		instructors.DELETE("/:id", instructorController.DeleteInstructor)
	}

	// Room routes
	rooms := v1.Group("/rooms")
	{
		rooms.GET("", roomController.GetAllRooms)
		rooms.GET("/:id", roomController.GetRoomByID)
		rooms.POST("", roomController.CreateRoom)
		rooms.PUT("/:id", roomController.UpdateRoom)
		rooms.DELETE("/:id", roomController.DeleteRoom)
	}

	// Timeslot routes
	timeslots := v1.Group("/timeslots")
	{
		timeslots.GET("", timeslotController.GetAllTimeslots)
		timeslots.GET("/code/:code", timeslotController.GetTimeslotByCode)
		timeslots.GET("/:id", timeslotController.GetTimeslotByID)
		timeslots.POST("", timeslotController.CreateTimeslot)
		timeslots.PUT("/:id", timeslotController.UpdateTimeslot)
		timeslots.DELETE("/:id", timeslotController.DeleteTimeslot)
	}

	// Schedule routes
	schedules := v1.Group("/schedules")
	{
		schedules.GET("", scheduleController.GetAllSchedules)
		schedules.GET("/by-instructor/:id", scheduleController.GetSchedulesByInstructor)
		schedules.GET("/by-room/:id", scheduleController.GetSchedulesByRoom)
		schedules.GET("/by-timeslot/:code", scheduleController.GetSchedulesByTimeslot)
		schedules.GET("/:id", scheduleController.GetScheduleByID)
		schedules.POST("", scheduleController.CreateSchedule)
		schedules.POST("/check-conflicts", scheduleController.CheckConflicts)
		schedules.PUT("/:id", scheduleController.UpdateSchedule)
		schedules.DELETE("/:id", scheduleController.DeleteSchedule)
	}
}
