package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslife/campus-api/internal/api/handler/v1/request"
	"github.com/campuslife/campus-api/internal/api/handler/v1/response"
	"github.com/campuslife/campus-api/internal/domain"
)

type ClubService interface {
	List(ctx context.Context, viewer domain.User, filter domain.ClubFilter) ([]domain.Club, error)
	Pending(ctx context.Context) ([]domain.Club, error)
	Get(ctx context.Context, viewer domain.User, id uint) (domain.Club, error)
	Create(ctx context.Context, actor domain.User, club domain.Club) (domain.Club, error)
	Update(ctx context.Context, actor domain.User, club domain.Club) (domain.Club, error)
	Validate(ctx context.Context, id uint) (domain.Club, error)
	Delete(ctx context.Context, id uint) error
	Members(ctx context.Context, viewer domain.User, id uint) ([]domain.ClubMember, error)
	Join(ctx context.Context, user domain.User, id uint) (domain.Club, error)
	Leave(ctx context.Context, user domain.User, id uint) (domain.Club, error)
}

type ClubHandler struct {
	svc ClubService
}

func NewClubHandler(svc ClubService) *ClubHandler {
	return &ClubHandler{
		svc: svc,
	}
}

// HandleListClubs godoc
// @Summary      List clubs
// @Description  Validated clubs, plus the pending clubs the caller manages. Admins see every club.
// @Tags         clubs
// @Produce      json
// @Param        q         query     string  false  "name search"
// @Param        status    query     string  false  "all, validated or pending"
// @Param        category  query     string  false  "category"
// @Success      200       {array}   domain.Club
// @Failure      400       {object}  response.Err
// @Failure      401       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /clubs [get]
// @Security BearerAuth
func (h *ClubHandler) HandleListClubs(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var query request.ClubListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	clubs, err := h.svc.List(ctx.Request.Context(), user, query.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListClubs -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, clubs)
}

// HandleListPendingClubs godoc
// @Summary      List clubs waiting for validation
// @Tags         clubs
// @Produce      json
// @Success      200  {array}   domain.Club
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /clubs/pending [get]
// @Security BearerAuth
func (h *ClubHandler) HandleListPendingClubs(ctx *gin.Context) {
	clubs, err := h.svc.Pending(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListPendingClubs -> h.svc.Pending", err)
		return
	}

	ctx.JSON(http.StatusOK, clubs)
}

// HandleGetClub godoc
// @Summary      Get a club
// @Tags         clubs
// @Produce      json
// @Param        clubID  path      int  true  "club ID"
// @Success      200     {object}  domain.Club
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /clubs/{clubID} [get]
// @Security BearerAuth
func (h *ClubHandler) HandleGetClub(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "clubID")
	if !ok {
		return
	}

	club, err := h.svc.Get(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetClub -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, club)
}

// HandleCreateClub godoc
// @Summary      Create a club
// @Description  The creator becomes the club's manager. Clubs created by an admin are validated immediately.
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        request  body      request.ClubRequest  true  "club details"
// @Success      201      {object}  domain.Club
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /clubs [post]
// @Security BearerAuth
func (h *ClubHandler) HandleCreateClub(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	club, err := h.svc.Create(ctx.Request.Context(), user, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateClub -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusCreated, club)
}

// HandleUpdateClub godoc
// @Summary      Update a club
// @Tags         clubs
// @Accept       json
// @Produce      json
// @Param        clubID   path      int                  true  "club ID"
// @Param        request  body      request.ClubRequest  true  "club details"
// @Success      200      {object}  domain.Club
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /clubs/{clubID} [put]
// @Security BearerAuth
func (h *ClubHandler) HandleUpdateClub(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "clubID")
	if !ok {
		return
	}

	var req request.ClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	club := req.ToDomain()
	club.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), user, club)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateClub -> h.svc.Update", err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleValidateClub godoc
// @Summary      Validate a pending club
// @Tags         clubs
// @Produce      json
// @Param        clubID  path      int  true  "club ID"
// @Success      200     {object}  domain.Club
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /clubs/{clubID}/validate [post]
// @Security BearerAuth
func (h *ClubHandler) HandleValidateClub(ctx *gin.Context) {
	id, respErr := getIDParam(ctx, "clubID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	club, err := h.svc.Validate(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleValidateClub -> h.svc.Validate", err)
		return
	}

	ctx.JSON(http.StatusOK, club)
}

// HandleDeleteClub godoc
// @Summary      Delete a club
// @Description  Removes the club with its memberships, activities and registrations.
// @Tags         clubs
// @Param        clubID  path      int  true  "club ID"
// @Success      204
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /clubs/{clubID} [delete]
// @Security BearerAuth
func (h *ClubHandler) HandleDeleteClub(ctx *gin.Context) {
	id, respErr := getIDParam(ctx, "clubID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteClub -> h.svc.Delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListMembers godoc
// @Summary      List the members of a club
// @Tags         clubs
// @Produce      json
// @Param        clubID  path      int  true  "club ID"
// @Success      200     {array}   domain.ClubMember
// @Failure      404     {object}  response.Err
// @Router       /clubs/{clubID}/members [get]
// @Security BearerAuth
func (h *ClubHandler) HandleListMembers(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "clubID")
	if !ok {
		return
	}

	members, err := h.svc.Members(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListMembers -> h.svc.Members", err)
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleJoinClub godoc
// @Summary      Join a club
// @Tags         clubs
// @Produce      json
// @Param        clubID  path      int  true  "club ID"
// @Success      200     {object}  domain.Club
// @Failure      403     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Router       /clubs/{clubID}/join [post]
// @Security BearerAuth
func (h *ClubHandler) HandleJoinClub(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "clubID")
	if !ok {
		return
	}

	club, err := h.svc.Join(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleJoinClub -> h.svc.Join", err)
		return
	}

	ctx.JSON(http.StatusOK, club)
}

// HandleLeaveClub godoc
// @Summary      Leave a club
// @Tags         clubs
// @Produce      json
// @Param        clubID  path      int  true  "club ID"
// @Success      200     {object}  domain.Club
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Router       /clubs/{clubID}/leave [post]
// @Security BearerAuth
func (h *ClubHandler) HandleLeaveClub(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "clubID")
	if !ok {
		return
	}

	club, err := h.svc.Leave(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleLeaveClub -> h.svc.Leave", err)
		return
	}

	ctx.JSON(http.StatusOK, club)
}
