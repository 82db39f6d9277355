package v1

import (
	"net/http"
	"strconv"

	"go-jobswipe-backend/internal/delivery/http/response"
	"go-jobswipe-backend/internal/domain"
	"go-jobswipe-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC   domain.JobUsecase
	swipeUC domain.SwipeUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, swipeUC domain.SwipeUsecase) {
	handler := &JobHandler{jobUC: jobUC, swipeUC: swipeUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", handler.Create)
		jobs.GET("/:id", handler.GetDetails)
		jobs.PATCH("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.POST("/:id/like", handler.Swipe)
	}

	// Recruiter alias for listing/creating own postings
	myJobs := protected.Group("/my-jobs")
	{
		myJobs.GET("", handler.ListOwn)
		myJobs.POST("", handler.Create)
	}
}

type JobRequest struct {
	Title              string   `json:"title" binding:"required"`
	CompanyName        string   `json:"company_name" binding:"required"`
	Category           string   `json:"category" binding:"required"`
	Governorate        string   `json:"governorate" binding:"required"`
	Location           string   `json:"location"`
	SalaryRange        string   `json:"salary_range"`
	MinExperienceYears *int     `json:"min_experience_years" binding:"omitempty,gte=0"`
	MaxExperienceYears *int     `json:"max_experience_years" binding:"omitempty,gte=0"`
	Skills             []string `json:"skills"`
	ShortDescription   string   `json:"short_description" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Tags               string   `json:"tags"`
	ImageURL           *string  `json:"image_url"`
}

type SwipeRequest struct {
	Action string `json:"action" binding:"required,oneof=like dislike"`
}

func (r *JobRequest) toDomain() *domain.Job {
	return &domain.Job{
		Title:              r.Title,
		CompanyName:        r.CompanyName,
		Category:           r.Category,
		Governorate:        r.Governorate,
		Location:           r.Location,
		SalaryRange:        r.SalaryRange,
		MinExperienceYears: r.MinExperienceYears,
		MaxExperienceYears: r.MaxExperienceYears,
		Skills:             r.Skills,
		ShortDescription:   r.ShortDescription,
		Description:        r.Description,
		Tags:               r.Tags,
		ImageURL:           r.ImageURL,
	}
}

// List godoc
// @Summary      List jobs
// @Description  Jobseekers get the swipe feed minus their dislikes; recruiters get their own postings
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListFeed(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", gin.H{"jobs": jobs})
}

// ListOwn godoc
// @Summary      List own jobs
// @Description  Postings owned by the logged-in recruiter
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /my-jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListOwn(c *gin.Context) {
	jobs, err := h.jobUC.ListOwn(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "My jobs", gin.H{"jobs": jobs})
}

// Create godoc
// @Summary      Create a job
// @Description  Create a job posting (recruiter only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	job := req.toDomain()
	if err := h.jobUC.CreateJob(c, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobUC.GetJobDetails(c, id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job details", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Update a job posting (owning recruiter only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	job := req.toDomain()
	job.ID = id
	if err := h.jobUC.UpdateJob(c, job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Delete a job posting (owning recruiter only)
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.DeleteJob(c, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted", nil)
}

// Swipe godoc
// @Summary      Like or dislike a job
// @Description  Record the jobseeker's decision; a like creates or reuses a match
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id     path      int           true  "Job ID"
// @Param        swipe  body      SwipeRequest  true  "Swipe action"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id}/like [post]
// @Security     BearerAuth
func (h *JobHandler) Swipe(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.swipeUC.SetPreference(c, id, req.Action)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "ok", gin.H{
		"status":   "ok",
		"action":   result.Action,
		"match_id": result.MatchID,
	})
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}
