package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"smarthome/services/user"
	"smarthome/utils"
)

// UserHandler exposes the user endpoints.
type UserHandler struct {
	UserService user.UserService
	Logger      *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserService: svc, Logger: logger}
}

// UpsertUserHandler handles POST /users. The payload is freeform; email is the
// upsert key and the only required field.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	var payload bson.M
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	usr, err := h.UserService.UpsertUser(payload)
	if err != nil {
		var missing user.MissingEmailError
		if errors.As(err, &missing) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.Error("Failed to upsert user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save user", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User saved successfully",
		"userId":  usr.ID,
	})
}
