package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tidyrota/cleaning-app/models"
	"github.com/tidyrota/cleaning-app/utils"
)

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

type jobRequest struct {
	Title           string   `json:"title" binding:"required"`
	ClientName      *string  `json:"client_name"`
	Location        *string  `json:"location"`
	Description     *string  `json:"description"`
	DurationMinutes int      `json:"duration_minutes" binding:"required,gt=0"`
	Rate            *float64 `json:"rate"`
}

// GetAllJobs -> list semua job, terbaru dulu
func (jc *JobController) GetAllJobs(c *gin.Context) {
	var jobs []models.Job
	if err := jc.DB.Order("created_at DESC").Find(&jobs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All jobs", jobs)
}

// GetJobByID
func (jc *JobController) GetJobByID(c *gin.Context) {
	idStr := c.Param("job_id")
	id, _ := strconv.Atoi(idStr)

	var job models.Job
	if err := jc.DB.First(&job, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Job detail", job)
}

// CreateJob
func (jc *JobController) CreateJob(c *gin.Context) {
	var body jobRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	job := models.Job{
		Title:           body.Title,
		ClientName:      body.ClientName,
		Location:        body.Location,
		Description:     body.Description,
		DurationMinutes: body.DurationMinutes,
		Rate:            body.Rate,
	}

	if err := jc.DB.Create(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Job created", job)
}

// UpdateJob -> mengubah duration tidak menghitung ulang interval assignment
// yang sudah ada; interval selalu diturunkan saat dibaca.
func (jc *JobController) UpdateJob(c *gin.Context) {
	idStr := c.Param("job_id")
	id, _ := strconv.Atoi(idStr)

	var body jobRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var job models.Job
	if err := jc.DB.First(&job, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	job.Title = body.Title
	job.ClientName = body.ClientName
	job.Location = body.Location
	job.Description = body.Description
	job.DurationMinutes = body.DurationMinutes
	job.Rate = body.Rate

	if err := jc.DB.Save(&job).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Job updated", job)
}

// DeleteJob
func (jc *JobController) DeleteJob(c *gin.Context) {
	idStr := c.Param("job_id")
	id, _ := strconv.Atoi(idStr)

	if err := jc.DB.Where("job_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := jc.DB.Delete(&models.Job{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Job deleted", gin.H{"job_id": id})
}
