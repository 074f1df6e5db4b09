package delivery

import (
	"net/http"

	"github.com/amit-3245/Secure-Notes-API/domain"
	"github.com/amit-3245/Secure-Notes-API/middleware"
	"github.com/amit-3245/Secure-Notes-API/utils"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUseCase
}

func NewAuthHandler(r *gin.Engine, authUC domain.AuthUseCase) {
	handler := &AuthHandler{authUC: authUC}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	register := r.Group("/register")
	{
		register.POST("/send-otp", handler.SendOTP)
		register.POST("/verify-otp", handler.VerifyOTP)
	}

	r.POST("/login", handler.Login)

	account := r.Group("/account")
	account.Use(middleware.Authorize(authUC.GetAccessTokenManager()))
	{
		account.DELETE("", handler.DeleteAccount)
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=64"`
}

// SendOTP is registration step 1. The response confirms the challenge was
// issued; the code itself travels only by email.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "SendOTP", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	email := utils.NormalizeEmail(req.Email)
	if err := h.authUC.Register(c.Request.Context(), req.Name, email, req.Password); err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(&email, status, "SendOTP", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to register",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(&email, http.StatusOK, "SendOTP", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent to your email",
	})
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

// VerifyOTP is registration step 2: consume the code and create the account.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "VerifyOTP", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	email := utils.NormalizeEmail(req.Email)
	user, err := h.authUC.VerifyRegistration(c.Request.Context(), email, req.OTP)
	if err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(&email, status, "VerifyOTP", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to verify OTP",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(&email, http.StatusCreated, "VerifyOTP", nil)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "account created successfully",
		"data":    user,
	})
}

// LoginRequest binds the OAuth2-style password form: the username field
// carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.PrintLogInfo(nil, http.StatusBadRequest, "Login", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
			"error":   utils.TranslateValidationError(err),
		})
		return
	}

	email := utils.NormalizeEmail(req.Username)
	token, err := h.authUC.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(&email, status, "Login", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "login failed",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(&email, http.StatusOK, "Login", nil)
	c.JSON(http.StatusOK, token)
}

// DeleteAccount removes the authenticated user and everything they own.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		utils.PrintLogInfo(nil, http.StatusUnauthorized, "DeleteAccount", nil)
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "unauthorized",
		})
		return
	}

	if err := h.authUC.DeleteAccount(c.Request.Context(), userID); err != nil {
		status := statusForError(err)
		utils.PrintLogInfo(nil, status, "DeleteAccount", err)
		c.JSON(status, gin.H{
			"success": false,
			"message": "failed to delete account",
			"error":   messageForError(err, status),
		})
		return
	}

	utils.PrintLogInfo(nil, http.StatusOK, "DeleteAccount", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "account deleted",
	})
}
