package http

import (
	"net/http"

	"ezwash/internal/core/domain/model/actor"
	"ezwash/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity arrives from the upstream gateway as headers; authentication
// itself happens there. The middleware only parses and enforces roles.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"

	actorContextKey = "actor"
)

// ActorMiddleware parses the identity headers into an actor.Actor and
// stores it on the request context. Requests without a parseable identity
// are rejected before any handler runs.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid " + headerUserID + " header",
				})
			}

			role, err := actor.RoleFromString(ctx.Request().Header.Get(headerUserRole))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid " + headerUserRole + " header",
				})
			}

			requester, err := actor.NewActor(id, role)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid identity",
				})
			}

			ctx.Set(actorContextKey, requester)
			return next(ctx)
		}
	}
}

// RequireRole refuses requests whose actor does not hold the given role.
func RequireRole(role actor.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requester, ok := actorFrom(ctx)
			if !ok || !requester.Is(role) {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "role " + role.String() + " required",
				})
			}
			return next(ctx)
		}
	}
}

// actorFrom reads the actor placed on the context by ActorMiddleware.
func actorFrom(ctx echo.Context) (actor.Actor, bool) {
	requester, ok := ctx.Get(actorContextKey).(actor.Actor)
	return requester, ok
}
