package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tidyrota/cleaning-app/services"
	"github.com/tidyrota/cleaning-app/utils"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		dashboard: services.NewDashboardService(services.NewGormScheduleStore(db)),
	}
}

// GetSummary -> ringkasan dashboard: jumlah record + 5 assignment terdekat
func (dc *DashboardController) GetSummary(c *gin.Context) {
	summary, err := dc.dashboard.GetSummary()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard summary", summary)
}
