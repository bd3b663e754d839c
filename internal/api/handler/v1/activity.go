package v1

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/campuslife/campus-api/internal/api/handler/v1/request"
	"github.com/campuslife/campus-api/internal/api/handler/v1/response"
	"github.com/campuslife/campus-api/internal/domain"
)

type ActivityService interface {
	List(ctx context.Context, viewer domain.User, filter domain.ActivityFilter) ([]domain.Activity, error)
	ListByClub(ctx context.Context, viewer domain.User, clubID uint) ([]domain.Activity, error)
	Get(ctx context.Context, viewer domain.User, id uint) (domain.Activity, bool, error)
	Create(ctx context.Context, actor domain.User, activity domain.Activity) (domain.Activity, error)
	Update(ctx context.Context, actor domain.User, activity domain.Activity) (domain.Activity, error)
	Delete(ctx context.Context, actor domain.User, id uint) error
	Register(ctx context.Context, user domain.User, id uint) (domain.Activity, error)
	Unregister(ctx context.Context, user domain.User, id uint) (domain.Activity, error)
	Participants(ctx context.Context, actor domain.User, id uint) (domain.Activity, []domain.Participant, error)
	ExportParticipants(ctx context.Context, actor domain.User, id uint, w io.Writer) (domain.Activity, error)
	Ticket(ctx context.Context, user domain.User, id uint) ([]byte, error)
}

// SeatFeed streams seat updates of one activity over a WebSocket.
type SeatFeed interface {
	Serve(conn *websocket.Conn, current domain.SeatUpdate)
}

type ActivityHandler struct {
	svc      ActivityService
	feed     SeatFeed
	location *time.Location
	upgrader websocket.Upgrader
}

// NewActivityHandler builds the handler. Activity dates sent by clients are
// read in loc; allowOrigin vets the Origin of WebSocket handshakes.
func NewActivityHandler(svc ActivityService, feed SeatFeed, loc *time.Location, allowOrigin func(origin string) bool) *ActivityHandler {
	return &ActivityHandler{
		svc:      svc,
		feed:     feed,
		location: loc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowOrigin(origin)
			},
		},
	}
}

// HandleListActivities godoc
// @Summary      List activities
// @Description  "upcoming" keeps activities taking place today or later.
// @Tags         activities
// @Produce      json
// @Param        q         query     string  false  "name search"
// @Param        status    query     string  false  "all, upcoming or past"
// @Param        category  query     string  false  "category"
// @Param        club_id   query     int     false  "club ID"
// @Success      200       {array}   response.Activity
// @Failure      400       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /activities [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var query request.ActivityListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := query.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activities, err := h.svc.List(ctx.Request.Context(), user, query.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListActivities -> h.svc.List", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivities(activities))
}

// HandleListClubActivities godoc
// @Summary      List the activities of a club
// @Tags         clubs
// @Produce      json
// @Param        clubID  path      int  true  "club ID"
// @Success      200     {array}   response.Activity
// @Failure      404     {object}  response.Err
// @Router       /clubs/{clubID}/activities [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleListClubActivities(ctx *gin.Context) {
	user, clubID, ok := userAndID(ctx, "clubID")
	if !ok {
		return
	}

	activities, err := h.svc.ListByClub(ctx.Request.Context(), user, clubID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListClubActivities -> h.svc.ListByClub", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivities(activities))
}

// HandleGetActivity godoc
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {object}  response.ActivityDetail
// @Failure      404         {object}  response.Err
// @Router       /activities/{activityID} [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	activity, registered, err := h.svc.Get(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetActivity -> h.svc.Get", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ActivityDetail{
		Activity:     response.NewActivity(activity),
		IsRegistered: registered,
	})
}

// HandleCreateActivity godoc
// @Summary      Create an activity in a club
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        clubID   path      int                      true  "club ID"
// @Param        request  body      request.ActivityRequest  true  "activity details"
// @Success      201      {object}  response.Activity
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Router       /clubs/{clubID}/activities [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	user, clubID, ok := userAndID(ctx, "clubID")
	if !ok {
		return
	}

	var req request.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity := req.ToDomain(h.location)
	activity.ClubID = clubID

	created, err := h.svc.Create(ctx.Request.Context(), user, activity)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateActivity -> h.svc.Create", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewActivity(created))
}

// HandleUpdateActivity godoc
// @Summary      Update an activity
// @Description  max_participants cannot drop below the current number of participants.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityID  path      int                      true  "activity ID"
// @Param        request     body      request.ActivityRequest  true  "activity details"
// @Success      200         {object}  response.Activity
// @Failure      400         {object}  response.Err
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /activities/{activityID} [put]
// @Security BearerAuth
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	var req request.ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	activity := req.ToDomain(h.location)
	activity.ID = id

	updated, err := h.svc.Update(ctx.Request.Context(), user, activity)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateActivity -> h.svc.Update", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivity(updated))
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Tags         activities
// @Param        activityID  path  int  true  "activity ID"
// @Success      204
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Router       /activities/{activityID} [delete]
// @Security BearerAuth
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), user, id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteActivity -> h.svc.Delete", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleRegister godoc
// @Summary      Register for an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {object}  response.Activity
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Router       /activities/{activityID}/register [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleRegister(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	activity, err := h.svc.Register(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleRegister -> h.svc.Register", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivity(activity))
}

// HandleUnregister godoc
// @Summary      Cancel a registration
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {object}  response.Activity
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Router       /activities/{activityID}/unregister [post]
// @Security BearerAuth
func (h *ActivityHandler) HandleUnregister(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	activity, err := h.svc.Unregister(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUnregister -> h.svc.Unregister", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewActivity(activity))
}

// HandleListParticipants godoc
// @Summary      List the participants of an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {object}  response.ParticipantList
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /activities/{activityID}/participants [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleListParticipants(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	activity, participants, err := h.svc.Participants(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListParticipants -> h.svc.Participants", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ParticipantList{
		ActivityID:   activity.ID,
		Participants: participants,
	})
}

// HandleExportParticipants godoc
// @Summary      Export the participants of an activity as CSV
// @Tags         activities
// @Produce      text/csv
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {file}    file
// @Failure      403         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Router       /activities/{activityID}/participants/export [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleExportParticipants(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	var buf bytes.Buffer
	activity, err := h.svc.ExportParticipants(ctx.Request.Context(), user, id, &buf)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleExportParticipants -> h.svc.ExportParticipants", err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{
		"filename": activity.Name + "-participants.csv",
	})
	ctx.Header("Content-Disposition", disposition)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// HandleGetTicket godoc
// @Summary      Get the check-in QR code of a registration
// @Tags         activities
// @Produce      png
// @Param        activityID  path      int  true  "activity ID"
// @Success      200         {file}    file
// @Failure      404         {object}  response.Err
// @Failure      409         {object}  response.Err
// @Router       /activities/{activityID}/ticket [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleGetTicket(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	png, err := h.svc.Ticket(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetTicket -> h.svc.Ticket", err)
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

// HandleLiveSeats godoc
// @Summary      Stream seat updates of an activity
// @Description  WebSocket. The first message is the current state, then one message per change. Browsers pass the JWT in the token query parameter.
// @Tags         activities
// @Param        activityID  path   int     true   "activity ID"
// @Param        token       query  string  false  "JWT when the Authorization header cannot be set"
// @Success      101
// @Failure      404  {object}  response.Err
// @Router       /activities/{activityID}/live [get]
// @Security BearerAuth
func (h *ActivityHandler) HandleLiveSeats(ctx *gin.Context) {
	user, id, ok := userAndID(ctx, "activityID")
	if !ok {
		return
	}

	activity, _, err := h.svc.Get(ctx.Request.Context(), user, id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleLiveSeats -> h.svc.Get", err)
		return
	}

	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		zap.L().Debug("websocket upgrade failed", zap.Uint("activity_id", id), zap.Error(err))
		return
	}

	h.feed.Serve(conn, domain.NewSeatUpdate(activity))
}
