// Package handlers contains HTTP request handlers for the greeting service.
package handlers

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/sahanas/greet-service/internal/greeting"
)

// maxNameLength is the cap on greeted names, counted in characters.
const maxNameLength = 50

// GreetRequest represents the greeting request body
type GreetRequest struct {
	Name      string        `json:"name" binding:"required"`
	Mood      greeting.Mood `json:"mood" binding:"required,oneof=happy neutral tired excited sad"`
	Language  string        `json:"language"`
	TimeOfDay string        `json:"time_of_day"`
}

// GreetResponse represents the greeting response body
type GreetResponse struct {
	Message string   `json:"message"`
	Tone    string   `json:"tone"`
	Tips    []string `json:"tips"`
}

// GreetHandler handles personalized greeting requests
type GreetHandler struct {
	defaultLanguage string
}

// NewGreetHandler creates a new greeting handler. defaultLanguage is used
// when the request omits the language field.
func NewGreetHandler(defaultLanguage string) *GreetHandler {
	return &GreetHandler{
		defaultLanguage: defaultLanguage,
	}
}

// Greet crafts a personalized greeting for the caller
// POST /greet
func (h *GreetHandler) Greet(c *gin.Context) {
	var req GreetRequest

	// Schema-level validation: malformed JSON, missing fields, unknown mood
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Invalid request body: " + err.Error(),
		})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": "Name must be between 1 and 50 characters after trimming.",
		})
		return
	}

	language := req.Language
	if language == "" {
		language = h.defaultLanguage
	}

	// Business rules: unsupported language, all-digit name
	if err := greeting.ValidateLanguage(language); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
		return
	}
	if err := greeting.ValidateName(name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
		return
	}

	message, tone, tips := greeting.Craft(name, req.Mood, strings.ToLower(language), req.TimeOfDay)

	c.JSON(http.StatusOK, GreetResponse{
		Message: message,
		Tone:    tone,
		Tips:    tips,
	})
}
