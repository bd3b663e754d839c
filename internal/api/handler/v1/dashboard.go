package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuslife/campus-api/internal/api/handler/v1/response"
	"github.com/campuslife/campus-api/internal/domain"
)

type DashboardService interface {
	Get(ctx context.Context, user domain.User) (domain.Dashboard, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
	}
}

// HandleGetDashboard godoc
// @Summary      Get the dashboard of the current user
// @Description  Contains the statistics block of the caller's role, upcoming activities and popular clubs.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Dashboard
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /dashboard [get]
// @Security BearerAuth
func (h *DashboardHandler) HandleGetDashboard(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	dashboard, err := h.svc.Get(ctx.Request.Context(), user)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetDashboard -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, dashboard)
}
