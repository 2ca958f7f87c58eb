package handlers

import (
	"errors"

	"tagalong/internal/middleware"
	"tagalong/internal/services"
	"tagalong/internal/store"
	"tagalong/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignIn exchanges email/password for an access token.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var request services.SignInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	response, err := h.authService.SignIn(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.ErrorResponse(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			utils.ValidationErrorResponse(c, utils.ValidationErrors(err))
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Signed in successfully", response)
}

// SignUp registers a new account and signs it in.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var request services.SignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	response, err := h.authService.SignUp(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.ErrorResponse(c, 409, "EMAIL_TAKEN", "Email already registered")
			return
		}
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			utils.ValidationErrorResponse(c, utils.ValidationErrors(err))
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.CreatedResponse(c, "Account created successfully", response)
}

// Me returns the signed-in user's own record.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.CurrentUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			utils.UnauthorizedResponse(c)
			return
		}
		utils.NotFoundResponse(c, "User")
		return
	}

	utils.SuccessResponse(c, "User retrieved", user)
}

// GetUser returns a public profile.
func (h *AuthHandler) GetUser(c *gin.Context) {
	profile, err := h.authService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.NotFoundResponse(c, "User")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "User retrieved", profile)
}
