package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"theralert/internal/models/request_models"
	"theralert/internal/services"
	"theralert/pkg/utils"
)

type GroupController struct {
	groupService services.GroupServiceInterface
}

func NewGroupController(groupService services.GroupServiceInterface) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// CreateGroup godoc
// @Summary Create a care group
// @Description Resolves the patient, provisions missing family accounts and links memberships
// @Tags Groups
// @Accept json
// @Produce json
// @Param request body request_models.CreateGroupRequest true "Group payload"
// @Success 201 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups [post]
func (g *GroupController) CreateGroup(c *gin.Context) {
	var req request_models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	staffID := c.GetString("user_id")
	groupID, err := g.groupService.CreateGroup(c.Request.Context(), staffID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{"groupId": groupID.String()}, "Group created successfully")
}

// ListGroups godoc
// @Summary List groups visible to the caller
// @Description Staff see groups they own; patients and family members see groups they belong to
// @Tags Groups
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups [get]
func (g *GroupController) ListGroups(c *gin.Context) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	groups, err := g.groupService.ListGroups(c.Request.Context(), userID, role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, groups, "Groups fetched successfully")
}

// DeleteGroup godoc
// @Summary Delete a group and everything scoped to it
// @Tags Groups
// @Accept json
// @Produce json
// @Param request body request_models.DeleteGroupRequest true "Deletion payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /groups/delete [delete]
func (g *GroupController) DeleteGroup(c *gin.Context) {
	var req request_models.DeleteGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Group ID is required for deletion")
		return
	}

	if err := g.groupService.DeleteGroup(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Group deleted successfully")
}
