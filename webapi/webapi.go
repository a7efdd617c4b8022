// Package webapi provides the HTTP surface of the salary predictor.
// It is organized into sub-packages for different concerns:
// - predict: form page and prediction endpoints
// - currency: conversion rate table endpoints
package webapi

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/gofiber/template/html/v2"

	"github.com/salarycast/salarycast/pkg/app"
	"github.com/salarycast/salarycast/webapi/common"
	currencyweb "github.com/salarycast/salarycast/webapi/currency"
	predictweb "github.com/salarycast/salarycast/webapi/predict"
)

//go:embed views/*.html
var viewsFS embed.FS

// SetupApp initializes Fiber with the custom configuration and registers
// every route.
func SetupApp(a *app.App) *fiber.App {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	fiberApp := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return common.ProblemDetailsJSON(c, fiberErr.Message, err, fiberErr.Code)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	// Uses X-Forwarded-For when behind a proxy, falling back to X-Real-IP
	// and then the direct peer address.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("Salary predictor is running! 🚀")
	})

	predictweb.Routes(fiberApp, a.PredictionService, a.Deps.Rates, a.Config)
	currencyweb.Routes(fiberApp, a.Deps.Rates, a.Config)
	return fiberApp
}
