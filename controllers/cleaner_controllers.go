package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tidyrota/cleaning-app/models"
	"github.com/tidyrota/cleaning-app/utils"
)

type CleanerController struct {
	DB *gorm.DB
}

func NewCleanerController(db *gorm.DB) *CleanerController {
	return &CleanerController{DB: db}
}

type cleanerRequest struct {
	Name       string   `json:"name" binding:"required"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	HourlyRate *float64 `json:"hourly_rate"`
	Notes      *string  `json:"notes"`
}

// GetAllCleaners -> list semua cleaner, urut nama
func (cc *CleanerController) GetAllCleaners(c *gin.Context) {
	var cleaners []models.Cleaner
	if err := cc.DB.Order("name ASC").Find(&cleaners).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All cleaners", cleaners)
}

// GetCleanerByID
func (cc *CleanerController) GetCleanerByID(c *gin.Context) {
	idStr := c.Param("cleaner_id")
	id, _ := strconv.Atoi(idStr)

	var cleaner models.Cleaner
	if err := cc.DB.First(&cleaner, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cleaner detail", cleaner)
}

// CreateCleaner
func (cc *CleanerController) CreateCleaner(c *gin.Context) {
	var body cleanerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cleaner := models.Cleaner{
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		HourlyRate: body.HourlyRate,
		Notes:      body.Notes,
	}

	if err := cc.DB.Create(&cleaner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Cleaner created", cleaner)
}

// UpdateCleaner
func (cc *CleanerController) UpdateCleaner(c *gin.Context) {
	idStr := c.Param("cleaner_id")
	id, _ := strconv.Atoi(idStr)

	var body cleanerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var cleaner models.Cleaner
	if err := cc.DB.First(&cleaner, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	cleaner.Name = body.Name
	cleaner.Email = body.Email
	cleaner.Phone = body.Phone
	cleaner.HourlyRate = body.HourlyRate
	cleaner.Notes = body.Notes

	if err := cc.DB.Save(&cleaner).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cleaner updated", cleaner)
}

// DeleteCleaner -> assignment milik cleaner ikut terhapus (cascade)
func (cc *CleanerController) DeleteCleaner(c *gin.Context) {
	idStr := c.Param("cleaner_id")
	id, _ := strconv.Atoi(idStr)

	if err := cc.DB.Where("cleaner_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := cc.DB.Delete(&models.Cleaner{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cleaner deleted", gin.H{"cleaner_id": id})
}
