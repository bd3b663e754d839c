package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuslife/campus-api/internal/api/handler/v1/response"
	"github.com/campuslife/campus-api/internal/api/middleware"
	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/service"
)

var errNoUserInContext = errors.New("no authenticated user in context")

func getUserFromContext(ctx *gin.Context) (domain.User, *response.Err) {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		return domain.User{}, response.ErrUnauthorized(errNoUserInContext)
	}

	return user, nil
}

func getIDParam(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s %q", name, ctx.Param(name)))
	}

	return uint(id), nil
}

var conflictErrs = []error{
	service.ErrUserEmailExists,
	service.ErrClubNameExists,
	service.ErrAlreadyMember,
	service.ErrNotMember,
	service.ErrClubNotValidated,
	service.ErrManagerCannotLeave,
	service.ErrAlreadyRegistered,
	service.ErrNotRegistered,
	service.ErrActivityFull,
	service.ErrActivityPast,
	service.ErrCannotBlockSelf,
	service.ErrCannotChangeOwnRole,
}

// renderServiceErr maps the sentinel errors of the service layer to HTTP
// errors. Anything unknown becomes a 500 logged under caller.
func renderServiceErr(ctx *gin.Context, caller string, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.RenderErr(ctx, response.ErrNotFound("user", "id", ctx.Param("userID")))
		return
	case errors.Is(err, service.ErrClubNotFound):
		response.RenderErr(ctx, response.ErrNotFound("club", "id", ctx.Param("clubID")))
		return
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound("activity", "id", ctx.Param("activityID")))
		return
	case errors.Is(err, service.ErrPermissionDenied):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrPermissionDenied))
		return
	case errors.Is(err, service.ErrInvalidRole):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRole))
		return
	case errors.Is(err, service.ErrCapacityBelowParticipants):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrCapacityBelowParticipants))
		return
	}

	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrConflict(target))
			return
		}
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", caller, err)))
}

// userAndID reads the authenticated user and the id path parameter name.
// On failure the error is already rendered.
func userAndID(ctx *gin.Context, name string) (domain.User, uint, bool) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return domain.User{}, 0, false
	}

	id, respErr := getIDParam(ctx, name)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return domain.User{}, 0, false
	}

	return user, id, true
}
