package v1

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"
	"go-jobswipe-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MeHandler struct {
	profileUC domain.ProfileUsecase
	images    *storage.ImageStore
}

func NewMeHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase, images *storage.ImageStore) {
	handler := &MeHandler{profileUC: profileUC, images: images}

	protected.GET("/me", handler.Get)
	protected.PATCH("/me", handler.Update)
}

// Get godoc
// @Summary      Current user
// @Description  Identity and profile of the authenticated user
// @Tags         me
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /me [get]
// @Security     BearerAuth
func (h *MeHandler) Get(c *gin.Context) {
	me, err := h.profileUC.GetMe(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", me)
}

// Update godoc
// @Summary      Update current user
// @Description  Partial update of identity and profile fields. Accepts JSON
// @Description  or multipart form; the multipart form may carry an avatar
// @Description  image which is validated, downscaled, and stored.
// @Tags         me
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /me [patch]
// @Security     BearerAuth
func (h *MeHandler) Update(c *gin.Context) {
	var upd *domain.ProfileUpdate
	var err error

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		upd, err = h.updateFromForm(c)
	} else {
		upd, err = updateFromJSON(c)
	}
	if err != nil {
		c.Error(err)
		return
	}

	me, err := h.profileUC.UpdateMe(c, upd)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", me)
}

type updateMeRequest struct {
	Username        *string  `json:"username" binding:"omitempty,min=3,max=50"`
	Email           *string  `json:"email" binding:"omitempty,email"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experience_years" binding:"omitempty,gte=0"`
	Bio             *string  `json:"bio"`
	CompanyName     *string  `json:"company_name"`
	PositionTitle   *string  `json:"position_title"`
}

func updateFromJSON(c *gin.Context) (*domain.ProfileUpdate, error) {
	var req updateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, bindError(err)
	}
	return &domain.ProfileUpdate{
		Username:        req.Username,
		Email:           req.Email,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
		CompanyName:     req.CompanyName,
		PositionTitle:   req.PositionTitle,
	}, nil
}

// updateFromForm reads profile fields from the multipart form and uploads
// the avatar image when one is attached.
func (h *MeHandler) updateFromForm(c *gin.Context) (*domain.ProfileUpdate, error) {
	upd := &domain.ProfileUpdate{}

	formStr := func(name string) *string {
		if vals, ok := c.GetPostFormArray(name); ok && len(vals) > 0 {
			return &vals[0]
		}
		return nil
	}

	upd.Username = formStr("username")
	upd.Email = formStr("email")
	upd.Bio = formStr("bio")
	upd.CompanyName = formStr("company_name")
	upd.PositionTitle = formStr("position_title")

	if s := formStr("skills"); s != nil {
		skills := []string{}
		for _, part := range strings.Split(*s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				skills = append(skills, part)
			}
		}
		upd.Skills = skills
	}
	if s := formStr("experience_years"); s != nil {
		years, err := strconv.Atoi(*s)
		if err != nil || years < 0 {
			return nil, apperror.BadRequest("experience_years must be a non-negative integer")
		}
		upd.ExperienceYears = &years
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return upd, nil // no avatar in the form
	}

	if h.images == nil {
		return nil, apperror.BadRequest("Image uploads are not available")
	}
	if file.Size > storage.MaxImageBytes {
		return nil, apperror.BadRequest("Avatar image exceeds the 5MB limit")
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, storage.MaxImageBytes+1))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	processed, err := storage.ProcessImage(data)
	if err != nil {
		return nil, apperror.BadRequest("Avatar must be a valid JPEG or PNG image")
	}

	key := "avatars/" + uuid.NewString() + ".jpg"
	url, err := h.images.Put(c.Request.Context(), key, processed, "image/jpeg")
	if err != nil {
		return nil, apperror.Internal(err)
	}
	upd.AvatarURL = &url

	return upd, nil
}
