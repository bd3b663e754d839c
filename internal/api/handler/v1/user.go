package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslife/campus-api/internal/api/handler/v1/request"
	"github.com/campuslife/campus-api/internal/api/handler/v1/response"
	"github.com/campuslife/campus-api/internal/domain"
)

type UserService interface {
	GetUserFor(ctx context.Context, actor domain.User, id uint) (domain.User, error)
	GetProfile(ctx context.Context, id uint) (domain.Profile, error)
	UpdateProfile(ctx context.Context, id uint, update domain.ProfileUpdate) (domain.Profile, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, domain.UserStats, error)
	SetBlocked(ctx context.Context, actor domain.User, id uint, blocked bool) (domain.User, error)
	SetRole(ctx context.Context, actor domain.User, id uint, role domain.Role) (domain.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

// HandleGetMe godoc
// @Summary      Get the current user
// @Description  Returns the authenticated user with the ids of the clubs they joined and the activities they registered for.
// @Tags         users
// @Produce      json
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /me [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	profile, err := h.svc.GetProfile(ctx.Request.Context(), user.ID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetMe -> h.svc.GetProfile", err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// HandleUpdateMe godoc
// @Summary      Update the current user's profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateProfileRequest  true  "fields to change"
// @Success      200      {object}  domain.Profile
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /me [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateMe(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	profile, err := h.svc.UpdateProfile(ctx.Request.Context(), user.ID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateMe -> h.svc.UpdateProfile", err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// HandleListUsers godoc
// @Summary      List users
// @Description  Admin only. Search matches first name, last name or email.
// @Tags         users
// @Produce      json
// @Param        q       query     string  false  "search"
// @Param        status  query     string  false  "all, active or blocked"
// @Param        role    query     string  false  "student, club_manager or admin"
// @Success      200     {object}  response.UserList
// @Failure      400     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users [get]
// @Security BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	var query request.UserListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	users, stats, err := h.svc.ListUsers(ctx.Request.Context(), query.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListUsers -> h.svc.ListUsers", err)
		return
	}

	ctx.JSON(http.StatusOK, response.UserList{
		Users: users,
		Stats: stats,
	})
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Description  Admins can read any user, other users only themselves.
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {object}  domain.User
// @Failure      400     {object}  response.Err
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /users/{userID} [get]
// @Security BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	actor, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := getIDParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUserFor(ctx.Request.Context(), actor, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetUser -> h.svc.GetUserFor", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleBlockUser godoc
// @Summary      Block a user
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {object}  domain.User
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Router       /users/{userID}/block [post]
// @Security BearerAuth
func (h *UserHandler) HandleBlockUser(ctx *gin.Context) {
	h.setBlocked(ctx, true)
}

// HandleUnblockUser godoc
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {object}  domain.User
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /users/{userID}/unblock [post]
// @Security BearerAuth
func (h *UserHandler) HandleUnblockUser(ctx *gin.Context) {
	h.setBlocked(ctx, false)
}

func (h *UserHandler) setBlocked(ctx *gin.Context, blocked bool) {
	actor, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := getIDParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.SetBlocked(ctx.Request.Context(), actor, id, blocked)
	if err != nil {
		renderServiceErr(ctx, "v1.setBlocked -> h.svc.SetBlocked", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateRole godoc
// @Summary      Change the role of a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        userID   path      int                        true  "user ID"
// @Param        request  body      request.UpdateRoleRequest  true  "new role"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /users/{userID}/role [patch]
// @Security BearerAuth
func (h *UserHandler) HandleUpdateRole(ctx *gin.Context) {
	actor, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, respErr := getIDParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.UpdateRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.SetRole(ctx.Request.Context(), actor, id, domain.Role(req.Role))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateRole -> h.svc.SetRole", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
