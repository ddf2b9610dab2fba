package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"staynest/response"
	"staynest/services"
)

type AdminController struct {
	analyticsService *services.AnalyticsService
}

func NewAdminController(analyticsService *services.AnalyticsService) *AdminController {
	return &AdminController{analyticsService: analyticsService}
}

// Dashboard godoc
// @Summary Số liệu dashboard: doanh thu theo tháng, phân bố trạng thái và hạng phòng
// @Tags admin-analytics
// @Security BearerAuth
// @Produce json
// @Param year query int false "Năm (mặc định năm hiện tại)"
// @Success 200 {object} response.Response
// @Router /admin/analytics/dashboard [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	summary, err := ctrl.analyticsService.GetDashboard(year)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, summary)
}
