package v1

import (
	"errors"
	"net/http"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := public.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/login", handler.Login)
	}
	// Original mobile clients call these at the top level
	public.POST("/register", handler.Register)
	public.POST("/login", handler.Login)
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=jobseeker recruiter"`

	// Role-specific, all optional at registration
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years"`
	Bio             string   `json:"bio"`
	CompanyName     string   `json:"company_name"`
	PositionTitle   string   `json:"position_title"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new user with a jobseeker or recruiter profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
	}
	profile := &domain.Profile{
		Role:            domain.Role(req.Role),
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
		CompanyName:     req.CompanyName,
		PositionTitle:   req.PositionTitle,
	}

	if err := h.authUC.Register(c, user, profile, req.Password); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registered", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     profile.Role,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Exchange email and password for an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	token, expiresAt, err := h.authUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Logged in", gin.H{
		"access_token": token,
		"expires_at":   expiresAt,
	})
}

// bindError maps binding failures to a validation error with field-level
// details when the failure came from struct validation.
func bindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apperror.Validation("Validation failed", validation.Format(err))
	}
	return apperror.BadRequest("Malformed request body")
}
