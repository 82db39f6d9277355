package v1

import (
	"net/http"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(protected *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	matches := protected.Group("/matches")
	{
		matches.GET("", handler.List)
		matches.PATCH("/:id", handler.Decide)
	}
}

type DecideRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// List godoc
// @Summary      List matches
// @Description  Jobseekers see accepted active matches; recruiters see all active matches on their jobs
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /matches [get]
// @Security     BearerAuth
func (h *MatchHandler) List(c *gin.Context) {
	matches, err := h.matchUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Match list", gin.H{"matches": matches})
}

// Decide godoc
// @Summary      Accept or reject a match
// @Description  Recruiter decision on a pending match for one of their own jobs
// @Tags         matches
// @Accept       json
// @Produce      json
// @Param        id        path      int            true  "Match ID"
// @Param        decision  body      DecideRequest  true  "Decision"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /matches/{id} [patch]
// @Security     BearerAuth
func (h *MatchHandler) Decide(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	match, err := h.matchUC.Decide(c, id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Match updated", match)
}
