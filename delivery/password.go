package delivery

import (
	"net/http"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/amit-3245/Secure-Notes-API/middleware"
	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/gin-gonic/gin"
)

type PasswordHandler struct {
	authUC domain.AuthUseCase
}

func NewPasswordHandler(r *gin.Engine, authUC domain.AuthUseCase) {
	handler := &PasswordHandler{authUC: authUC}

	password := r.Group("/password")
	{
		password.POST("/forgot", handler.Forgot)
		password.POST("/reset", handler.Reset)
		password.POST("/reset-link", handler.ResetWithToken)
	}

	protected := r.Group("/password")
	protected.Use(middleware.Authorize(authUC.GetAccessTokenManager()))
	{
		protected.POST("/change", handler.Change)
	}
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (h *PasswordHandler) Forgot(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "ForgotPassword", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	email := utils.NormalizeEmail(req.Email)
	if err := h.authUC.ForgotPassword(c.Request.Context(), email); err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(&email, status, "ForgotPassword", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to process request",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(&email, http.StatusOK, "ForgotPassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent to your email for password reset",
	})
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required,len=6,numeric"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

func (h *PasswordHandler) Reset(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "ResetPassword", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	email := utils.NormalizeEmail(req.Email)
	if err := h.authUC.ResetPassword(c.Request.Context(), email, req.OTP, req.NewPassword); err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(&email, status, "ResetPassword", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to reset password",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(&email, http.StatusOK, "ResetPassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password reset successfully",
	})
}

type ResetWithTokenRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

// ResetWithToken is the link-based variant delivered in the reset email.
func (h *PasswordHandler) ResetWithToken(c *gin.Context) {
	var req ResetWithTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "ResetPasswordWithToken", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	if err := h.authUC.ResetPasswordWithToken(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(nil, status, "ResetPasswordWithToken", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to reset password",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(nil, http.StatusOK, "ResetPasswordWithToken", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password reset successfully",
	})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required,min=8,max=64"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=64"`
}

func (h *PasswordHandler) Change(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.PrintLogInfo(nil, http.StatusUnauthorized, "ChangePassword", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "unauthorized",
		})
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "ChangePassword", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	if err := h.authUC.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(nil, status, "ChangePassword", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to change password",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(nil, http.StatusOK, "ChangePassword", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "password changed successfully",
	})
}
