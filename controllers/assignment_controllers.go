package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tidyrota/cleaning-app/hub"
	"github.com/tidyrota/cleaning-app/models"
	"github.com/tidyrota/cleaning-app/services"
	"github.com/tidyrota/cleaning-app/utils"
)

type AssignmentController struct {
	DB        *gorm.DB
	store     services.ScheduleStore
	scheduler *services.SchedulerService
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	store := services.NewGormScheduleStore(db)
	return &AssignmentController{
		DB:        db,
		store:     store,
		scheduler: services.NewSchedulerService(store, services.DefaultConflictWindow),
	}
}

// GetAllAssignments -> listing lengkap dengan nama cleaner dan detail job
func (ac *AssignmentController) GetAllAssignments(c *gin.Context) {
	details, err := ac.store.ListAssignmentsWithDetails()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All assignments", details)
}

// ScheduleAssignment -> satu-satunya jalur pembuatan assignment.
// service_date dan service_time digabung menjadi satu instant sebelum
// masuk ke scheduler.
func (ac *AssignmentController) ScheduleAssignment(c *gin.Context) {
	type reqBody struct {
		JobID       uint   `json:"job_id" binding:"required"`
		CleanerID   uint   `json:"cleaner_id" binding:"required"`
		ServiceDate string `json:"service_date" binding:"required"`
		ServiceTime string `json:"service_time" binding:"required"`
		Notes       string `json:"notes"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	result, err := ac.scheduler.ScheduleAssignment(services.ScheduleInput{
		JobID:     body.JobID,
		CleanerID: body.CleanerID,
		StartISO:  body.ServiceDate + "T" + body.ServiceTime,
		Notes:     body.Notes,
	})
	if err != nil {
		utils.RespondError(c, scheduleErrorStatus(err), err)
		return
	}

	hub.BroadcastAssignmentCreate(result)

	utils.RespondJSON(c, http.StatusCreated, "Assignment scheduled", result)
}

// UpdateAssignment -> edit field biasa (status, notes); bukan state machine
func (ac *AssignmentController) UpdateAssignment(c *gin.Context) {
	idStr := c.Param("assignment_id")
	id, _ := strconv.Atoi(idStr)

	type reqBody struct {
		Status string  `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
		Notes  *string `json:"notes"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var assignment models.Assignment
	if err := ac.DB.First(&assignment, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if body.Status != "" {
		assignment.Status = body.Status
	}
	if body.Notes != nil {
		assignment.Notes = body.Notes
	}

	if err := ac.DB.Save(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastAssignmentUpdate(assignment)

	utils.RespondJSON(c, http.StatusOK, "Assignment updated", assignment)
}

// DeleteAssignment
func (ac *AssignmentController) DeleteAssignment(c *gin.Context) {
	idStr := c.Param("assignment_id")
	id, _ := strconv.Atoi(idStr)

	if err := ac.DB.Delete(&models.Assignment{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	hub.BroadcastAssignmentDelete(gin.H{"assignment_id": id})

	utils.RespondJSON(c, http.StatusOK, "Assignment deleted", gin.H{"assignment_id": id})
}

// scheduleErrorStatus memetakan error scheduler ke kode HTTP.
func scheduleErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidStartTime),
		errors.Is(err, services.ErrStartInPast):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrCleanerNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrNearbyAssignment),
		errors.Is(err, services.ErrSlotTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
