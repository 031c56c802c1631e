package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"theralert/internal/models/request_models"
	"theralert/internal/models/response_models"
	"theralert/internal/services"
	"theralert/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new user
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := a.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c,
		response_models.RegisterResponse{UserID: userID.String()},
		"User registered successfully")
}

// Login godoc
// @Summary Authenticate and obtain a session token
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, role, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.LoginResponse{Token: token, Role: role},
		"Login successful")
}

// ChangePassword godoc
// @Summary Change the current password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.ChangePasswordRequest true "Password change payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/password [put]
func (a *AccountController) ChangePassword(c *gin.Context) {
	var req request_models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := a.accountService.ChangePassword(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}

// DeleteAccount godoc
// @Summary Delete the authenticated account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.DeleteAccountRequest true "Confirmation payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profile/delete [delete]
func (a *AccountController) DeleteAccount(c *gin.Context) {
	var req request_models.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Password is required to confirm deletion")
		return
	}

	userID := c.GetString("user_id")
	if err := a.accountService.DeleteAccount(c.Request.Context(), userID, req.Password); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account deleted successfully")
}
