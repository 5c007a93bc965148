package main

import (
	"os"

	"doctrack/connection"
	"doctrack/scheduler"

	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	if len(os.Args) > 1 && os.Args[1] == "scheduler" {
		scheduler.StartScheduler()
		return
	}
	connection.StartServer()
}
