package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/models"
	"clinic-backend/internal/workflow"
	"clinic-backend/pkg/utils"
)

type AuthHandler struct {
	auth *workflow.Auth
}

func NewAuthHandler(auth *workflow.Auth) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// REGISTER
func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	if err := h.auth.Register(c.Request.Context(), input.Name, input.Email, input.Password); err != nil {
		respondError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusCreated, true, "Registration successful", nil)
}

// LOGIN (pakai email atau username)
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), input.Login, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Login successful", gin.H{
		"token": result.Token,
		"doctor": gin.H{
			"id":    result.Doctor.ID,
			"name":  result.Doctor.Name,
			"email": result.Doctor.Email,
		},
	})
}

// RESET PASSWORD
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input models.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", nil)
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), input.Email); err != nil {
		respondError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Password reset email sent", nil)
}

// LOGOUT
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "User logged out successfully", nil)
}
