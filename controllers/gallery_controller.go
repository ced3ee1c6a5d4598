package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"nature-gallery/models"
	"nature-gallery/repositories"
	"nature-gallery/utils"
)

const imagesCacheKey = "images_list"

type GalleryController struct {
	repo    repositories.GalleryRepository
	uploads utils.Uploader
}

func NewGalleryController(repo repositories.GalleryRepository, uploads utils.Uploader) *GalleryController {
	return &GalleryController{repo: repo, uploads: uploads}
}

func (ctrl *GalleryController) invalidateImagesCache() {
	if models.RedisClient == nil {
		return
	}
	models.RedisClient.Del(context.Background(), imagesCacheKey)
}

// @Summary Upload image
// @Description Submit a photo with name, email and description
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Display name"
// @Param email formData string true "Contact email"
// @Param description formData string true "Description"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Image
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /upload [post]
func (ctrl *GalleryController) UploadImage(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	description := strings.TrimSpace(c.PostForm("description"))
	fileHeader, fileErr := c.FormFile("image")

	if name == "" || email == "" || description == "" || fileErr != nil {
		c.JSON(400, models.ErrorResponse{Error: "Please fill all fields and select an image."})
		return
	}

	imageURL, err := ctrl.uploads.Save(c.Request.Context(), fileHeader)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to store uploaded file")
		c.JSON(500, models.ErrorResponse{Error: "Upload failed."})
		return
	}

	image := &models.Image{
		Name:        name,
		Email:       email,
		Description: description,
		ImageURL:    imageURL,
		Comments:    []models.Comment{},
	}

	if err := ctrl.repo.CreateImage(c.Request.Context(), image); err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to create image record")
		c.JSON(500, models.ErrorResponse{Error: "Upload failed."})
		return
	}

	ctrl.invalidateImagesCache()

	c.JSON(200, image)
}

// @Summary List images
// @Description Get all images with their comments, newest first
// @Tags Gallery
// @Produce json
// @Success 200 {array} models.Image
// @Failure 500 {object} models.ErrorResponse
// @Router /images [get]
func (ctrl *GalleryController) GetImages(c *gin.Context) {
	ctx := c.Request.Context()

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, imagesCacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	images, err := ctrl.repo.ListImages(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to fetch images")
		c.JSON(500, models.ErrorResponse{Error: "Failed to fetch images."})
		return
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(images); err == nil {
			models.RedisClient.Set(ctx, imagesCacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, images)
}

// @Summary Like image
// @Description Increment the like counter by one
// @Tags Gallery
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} models.LikesResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /images/{id}/like [post]
func (ctrl *GalleryController) LikeImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	likes, err := ctrl.repo.IncrementLikes(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrImageNotFound) {
		c.JSON(404, models.ErrorResponse{Error: "Image not found"})
		return
	}
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Int("image_id", id).Msg("Failed to like image")
		c.JSON(500, models.ErrorResponse{Error: "Failed to like image."})
		return
	}

	ctrl.invalidateImagesCache()

	c.JSON(200, models.LikesResponse{Likes: likes})
}

// @Summary Comment on image
// @Description Add a comment and return the full comment list for the image
// @Tags Gallery
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param body body object true "Comment text"
// @Success 200 {array} models.Comment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /images/{id}/comment [post]
func (ctrl *GalleryController) CommentImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(400, models.ErrorResponse{Error: "Comment text is required."})
		return
	}

	err := ctrl.repo.CreateComment(c.Request.Context(), id, req.Text)
	if errors.Is(err, repositories.ErrImageNotFound) {
		c.JSON(404, models.ErrorResponse{Error: "Image not found"})
		return
	}
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Int("image_id", id).Msg("Failed to create comment")
		c.JSON(500, models.ErrorResponse{Error: "Failed to comment."})
		return
	}

	comments, err := ctrl.repo.ListComments(c.Request.Context(), id)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Int("image_id", id).Msg("Failed to list comments")
		c.JSON(500, models.ErrorResponse{Error: "Failed to comment."})
		return
	}

	ctrl.invalidateImagesCache()

	c.JSON(200, comments)
}
