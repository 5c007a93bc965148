package connection

import (
	"doctrack/controller/activity"
	"doctrack/controller/auth"
	"doctrack/controller/checklist"
	"doctrack/controller/criterion"
	"doctrack/controller/project"
	"doctrack/controller/task"
	"doctrack/controller/template"
	"doctrack/controller/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func StartServer() {
	router := gin.Default()

	DB, err := DBConnection()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	router.Use(cors.Default())

	auth.AuthController(router, DB)
	auth.RefreshTokenController(router, DB)

	user.UserController(router, DB)

	project.ProjectController(router, DB)

	criterion.CriterionController(router, DB)
	template.TemplateController(router, DB)

	task.CreateTaskController(router, DB)
	task.GetTaskController(router, DB)
	task.AllTasksController(router, DB)
	task.UpdateTaskController(router, DB)
	task.DeleteTaskController(router, DB)

	checklist.GetChecklistController(router, DB)
	checklist.UpdateChecklistController(router, DB)
	checklist.CreateChecklistController(router, DB)
	checklist.DeleteChecklistController(router, DB)

	activity.CloneWeekController(router, DB)
	activity.WeekController(router, DB)
	activity.ActivityItemController(router, DB)

	log.Info().Msg("Server starting")
	router.Run()
}
