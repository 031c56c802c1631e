package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"theralert/internal/models/request_models"
	"theralert/internal/services"
	"theralert/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// LogActivity godoc
// @Summary Log an activity or goal against a group
// @Description Inserts the entry, then notifies the group's patient and family members by email
// @Tags Activities
// @Accept json
// @Produce json
// @Param request body request_models.LogActivityRequest true "Activity payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities [post]
func (a *ActivityController) LogActivity(c *gin.Context) {
	var req request_models.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.LogActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"activity": activity}, "Activity logged successfully")
}

// ListActivities godoc
// @Summary List a group's activities, newest first
// @Tags Activities
// @Produce json
// @Param groupId query string true "Group ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /activities [get]
func (a *ActivityController) ListActivities(c *gin.Context) {
	groupID := c.Query("groupId")
	if groupID == "" {
		utils.RespondError(c, http.StatusBadRequest, "groupId query parameter is required")
		return
	}

	activities, err := a.activityService.ListActivities(c.Request.Context(), groupID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}
