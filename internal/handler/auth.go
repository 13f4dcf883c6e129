package handler

import (
	"net/http"

	"github.com/P0n40/Shiftdailyreportapp/internal/logger"
	"github.com/P0n40/Shiftdailyreportapp/internal/middleware"
	"github.com/P0n40/Shiftdailyreportapp/internal/model"
	"github.com/P0n40/Shiftdailyreportapp/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth   *service.AuthService
	secret []byte
}

func NewAuthHandler(auth *service.AuthService, secret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, secret: secret}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	a, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.Warn("login.failed", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	logger.Info("login.ok", "username", a.Username, "name", a.Name)

	token, err := middleware.NewToken(h.secret, a.Username, a.Name, a.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	c.JSON(http.StatusOK, model.LoginResponse{
		Token: token,
		User:  model.User{Username: a.Username, Name: a.Name, Role: a.Role},
	})
}
