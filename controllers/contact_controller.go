package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"nature-gallery/models"
	"nature-gallery/repositories"
)

type ContactController struct {
	repo repositories.ContactRepository
	mail *models.EmailService
}

// NewContactController wires the contact form endpoint. mail may be nil when
// SMTP is not configured; messages are still stored.
func NewContactController(repo repositories.ContactRepository, mail *models.EmailService) *ContactController {
	return &ContactController{repo: repo, mail: mail}
}

// @Summary Submit contact message
// @Description Store a contact form submission and notify the organization
// @Tags Contact
// @Accept json
// @Produce json
// @Param body body models.ContactMessage true "Contact message"
// @Success 200 {object} models.ContactResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) SubmitMessage(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(400, models.ErrorResponse{Error: "Please fill in all fields"})
		return
	}

	if err := msg.Validate(); err != nil {
		c.JSON(400, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.repo.CreateMessage(c.Request.Context(), &msg); err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to store contact message")
		c.JSON(500, models.ErrorResponse{Error: "Failed to send message."})
		return
	}

	if ctrl.mail != nil {
		if err := ctrl.mail.SendContactNotification(&msg); err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).Msg("Failed to send contact notification")
		}
	}

	c.JSON(200, models.ContactResponse{Message: "Thank you for your message! We'll get back to you soon."})
}
