package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/campuslife/campus-api/docs"
	v1 "github.com/campuslife/campus-api/internal/api/handler/v1"
	"github.com/campuslife/campus-api/internal/api/middleware"
	"github.com/campuslife/campus-api/internal/config"
	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/realtime"
	"github.com/campuslife/campus-api/internal/repository"
	"github.com/campuslife/campus-api/internal/repository/dao"
	"github.com/campuslife/campus-api/internal/service"
)

const basePath = "/api/v1"

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	// CORS and LoginLimiter can be reconfigured while the server runs.
	CORS         *middleware.CORSOrigins
	LoginLimiter *middleware.LoginRateLimiter
}

type services struct {
	auth       *service.AuthService
	users      *service.UserService
	clubs      *service.ClubService
	activities *service.ActivityService
	dashboard  *service.DashboardService
}

func NewServer(conf *config.AppConfig, db *gorm.DB, hub *realtime.Hub) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	// ClientIP keys the login throttle, so forwarding headers are only
	// honoured when they come from a configured proxy.
	if err := engine.SetTrustedProxies(conf.API.TrustedProxies); err != nil {
		zap.L().Error("invalid trusted proxies, trusting none", zap.Strings("trusted_proxies", conf.API.TrustedProxies), zap.Error(err))
		_ = engine.SetTrustedProxies(nil)
	}

	s := &Server{
		Config:       conf,
		Router:       engine,
		CORS:         middleware.NewCORSOrigins(conf.API.AllowedCORSDomains),
		LoginLimiter: middleware.NewLoginRateLimiter(conf.RateLimit.LoginPerMinute, conf.RateLimit.Burst),
	}

	s.MountMiddlewares()

	svcs := s.initServices(db, hub)
	s.MountHandlers(svcs, hub)

	return s
}

func (s *Server) initServices(db *gorm.DB, hub *realtime.Hub) services {
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	clubRepo := repository.NewClubRepository(dao.NewClubDAO(db))
	activityRepo := repository.NewActivityRepository(dao.NewActivityDAO(db))

	return services{
		auth:       service.NewAuthService(userRepo),
		users:      service.NewUserService(userRepo),
		clubs:      service.NewClubService(clubRepo, hub),
		activities: service.NewActivityService(activityRepo, clubRepo, hub, s.Config.API.PublicURL),
		dashboard:  service.NewDashboardService(userRepo, clubRepo, activityRepo),
	}
}

func (s *Server) MountMiddlewares() {
	s.Router.Use(middleware.RequestLogger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.CORS))
}

func (s *Server) MountHandlers(svcs services, hub *realtime.Hub) {
	authHandler := v1.NewAuthHandler(s.Config.API, svcs.auth)
	userHandler := v1.NewUserHandler(svcs.users)
	clubHandler := v1.NewClubHandler(svcs.clubs)
	activityHandler := v1.NewActivityHandler(svcs.activities, hub, time.Local, s.CORS.Allowed)
	dashboardHandler := v1.NewDashboardHandler(svcs.dashboard)

	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	managers := middleware.RequireRoles(domain.RoleClubManager, domain.RoleAdmin)
	students := middleware.RequireRoles(domain.RoleStudent)

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", s.LoginLimiter.Middleware(), authHandler.HandleLogin)
	}

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, svcs.users)

	authed := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		authed.GET("/me", userHandler.HandleGetMe)
		authed.PATCH("/me", userHandler.HandleUpdateMe)
		authed.GET("/dashboard", dashboardHandler.HandleGetDashboard)
	}

	users := authed.Group("/users")
	{
		users.GET("", adminOnly, userHandler.HandleListUsers)
		users.GET("/:userID", userHandler.HandleGetUser)
		users.POST("/:userID/block", adminOnly, userHandler.HandleBlockUser)
		users.POST("/:userID/unblock", adminOnly, userHandler.HandleUnblockUser)
		users.PATCH("/:userID/role", adminOnly, userHandler.HandleUpdateRole)
	}

	clubs := authed.Group("/clubs")
	{
		clubs.GET("", clubHandler.HandleListClubs)
		clubs.POST("", managers, clubHandler.HandleCreateClub)
		clubs.GET("/pending", adminOnly, clubHandler.HandleListPendingClubs)
		clubs.GET("/:clubID", clubHandler.HandleGetClub)
		clubs.PUT("/:clubID", managers, clubHandler.HandleUpdateClub)
		clubs.DELETE("/:clubID", adminOnly, clubHandler.HandleDeleteClub)
		clubs.POST("/:clubID/validate", adminOnly, clubHandler.HandleValidateClub)
		clubs.GET("/:clubID/members", clubHandler.HandleListMembers)
		clubs.POST("/:clubID/join", students, clubHandler.HandleJoinClub)
		clubs.POST("/:clubID/leave", clubHandler.HandleLeaveClub)
		clubs.GET("/:clubID/activities", activityHandler.HandleListClubActivities)
		clubs.POST("/:clubID/activities", managers, activityHandler.HandleCreateActivity)
	}

	activities := authed.Group("/activities")
	{
		activities.GET("", activityHandler.HandleListActivities)
		activities.GET("/:activityID", activityHandler.HandleGetActivity)
		activities.PUT("/:activityID", managers, activityHandler.HandleUpdateActivity)
		activities.DELETE("/:activityID", managers, activityHandler.HandleDeleteActivity)
		activities.POST("/:activityID/register", students, activityHandler.HandleRegister)
		activities.POST("/:activityID/unregister", students, activityHandler.HandleUnregister)
		activities.GET("/:activityID/participants", managers, activityHandler.HandleListParticipants)
		activities.GET("/:activityID/participants/export", managers, activityHandler.HandleExportParticipants)
		activities.GET("/:activityID/ticket", students, activityHandler.HandleGetTicket)
	}

	live := s.Router.Group(basePath, authenticator.VerifyWebSocketJWT())
	{
		live.GET("/activities/:activityID/live", activityHandler.HandleLiveSeats)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Campus Life API"
	docs.SwaggerInfo.Description = "Clubs, activities and registrations of the campus."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
