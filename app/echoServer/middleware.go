// app/echoServer/middleware.go
package echoServer

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/perpetual-pelican/vidly-backend/util/jwt"
)

func RegisterMiddlewares(e *echo.Echo) {
	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return err
		}
	}
}

// JWTAuth verifies the bearer credential and stores identity claims on
// the context. A missing credential and an invalid one are different
// failures with different status codes.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := jwt.ParseAuth(c.Request().Header.Get("Authorization"), secret)
			if errors.Is(err, jwt.ErrMissing) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Access denied. No token provided."})
			}
			if err != nil {
				return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid token."})
			}
			c.Set("user_id", claims.UserID)
			c.Set("is_admin", claims.IsAdmin)
			return next(c)
		}
	}
}

// Admin gates destructive operations. Runs after JWTAuth.
func Admin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isAdmin, _ := c.Get("is_admin").(bool); !isAdmin {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Access denied."})
			}
			return next(c)
		}
	}
}

// ValidateID rejects malformed path identifiers with 404 rather than
// 400, so the response does not reveal whether a well-formed id exists.
func ValidateID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := uuid.Parse(c.Param("id"))
			if err != nil {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "Invalid ID."})
			}
			c.Set("id", id.String())
			return next(c)
		}
	}
}
