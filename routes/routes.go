package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nature-gallery/config"
	"nature-gallery/controllers"
	"nature-gallery/models"
	"nature-gallery/repositories"
	"nature-gallery/utils"
)

func SetupRoutes(router *gin.Engine) {
	var uploads utils.Uploader = utils.NewLocalUploader(config.AppConfig.UploadDir)
	if config.AppConfig.UseCloudinary {
		cld, err := models.NewCloudinaryService()
		if err != nil {
			log.Warn().Err(err).Msg("Cloudinary not available, storing uploads locally")
		} else {
			uploads = cld
			log.Info().Msg("Storing uploads in Cloudinary")
		}
	}

	mail, err := models.NewEmailService()
	if err != nil {
		log.Warn().Err(err).Msg("SMTP not configured, contact notifications disabled")
		mail = nil
	}

	galleryCtrl := controllers.NewGalleryController(repositories.NewGalleryRepository(), uploads)
	contactCtrl := controllers.NewContactController(repositories.NewContactRepository(), mail)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/upload", galleryCtrl.UploadImage)
	router.GET("/images", galleryCtrl.GetImages)
	router.POST("/images/:id/like", galleryCtrl.LikeImage)
	router.POST("/images/:id/comment", galleryCtrl.CommentImage)

	router.POST("/contact", contactCtrl.SubmitMessage)

	router.Static("/uploads", config.AppConfig.UploadDir)
}
