package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"nature-gallery/config"
	"nature-gallery/middleware"
	"nature-gallery/models"
	"nature-gallery/routes"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		models.InitDB()
		models.InitRedis()

		router = gin.New()
		router.Use(middleware.Logger())
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
