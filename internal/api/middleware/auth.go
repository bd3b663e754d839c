package middleware

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuslife/campus-api/internal/api/handler/v1/response"
	"github.com/campuslife/campus-api/internal/domain"
	"github.com/campuslife/campus-api/internal/pkg/jwthelper"
	"github.com/campuslife/campus-api/internal/service"
)

const contextKeyUser = "user"

var (
	errMissingToken      = errors.New("missing bearer token")
	errUserAgentMismatch = errors.New("token was issued to another client")
)

type UserLoader interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type Authenticator struct {
	signingKey []byte
	users      UserLoader
}

func NewAuthenticator(signingKey string, users UserLoader) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
		users:      users,
	}
}

// VerifyJWT authenticates the request with the bearer token of the
// Authorization header. The user is reloaded on every request so that
// blocking and role changes apply immediately.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return a.verify(false)
}

// VerifyWebSocketJWT is VerifyJWT for WebSocket upgrades: browsers cannot
// set headers there, so the token query parameter is accepted too.
func (a *Authenticator) VerifyWebSocketJWT() gin.HandlerFunc {
	return a.verify(true)
}

func (a *Authenticator) verify(allowQuery bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx, allowQuery)
		if tokenString == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, tokenString)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		if claims.UserAgent != ctx.Request.UserAgent() {
			response.RenderErr(ctx, response.ErrUnauthorized(errUserAgentMismatch))
			return
		}

		user, err := a.users.GetUser(ctx.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
				return
			}

			err = fmt.Errorf("VerifyJWT -> a.users.GetUser -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
			return
		}

		if user.IsBlocked {
			response.RenderErr(ctx, response.ErrAccountBlocked())
			return
		}

		ctx.Set(contextKeyUser, user)
		ctx.Next()
	}
}

func bearerToken(ctx *gin.Context, allowQuery bool) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		if allowQuery {
			return ctx.Query("token")
		}

		return ""
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// UserFromContext returns the user stored by VerifyJWT.
func UserFromContext(ctx *gin.Context) (domain.User, bool) {
	value, ok := ctx.Get(contextKeyUser)
	if !ok {
		return domain.User{}, false
	}

	user, ok := value.(domain.User)
	return user, ok
}

// RequireRoles lets the request through only when the authenticated user
// has one of roles. It must run after VerifyJWT.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := UserFromContext(ctx)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		for _, role := range roles {
			if user.Role == role {
				ctx.Next()
				return
			}
		}

		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("role %s is not allowed", user.Role)))
	}
}
