// Package router đăng ký các route thuộc domain Broadcast:
// notification CRUD, render card, redirect, tracking pixel, bot events.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	broadcasthdl "broadcast_hub/internal/api/broadcast/handler"
)

// CRUDHandler định nghĩa interface cho các handler CRUD
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	Find(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
	CountDocuments(c fiber.Ctx) error
}

// registerRouteWithMiddleware đăng ký route qua group + .Use() — Fiber v3
// không gọi middleware khi truyền trực tiếp vào router.Get/Post.
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// registerCRUDRoutes đăng ký các route CRUD cho một collection
func registerCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler) {
	registerRouteWithMiddleware(router, prefix, "POST", "/insert-one", nil, h.InsertOne)
	registerRouteWithMiddleware(router, prefix, "GET", "/find", nil, h.Find)
	registerRouteWithMiddleware(router, prefix, "GET", "/find-by-id/:id", nil, h.FindOneById)
	registerRouteWithMiddleware(router, prefix, "GET", "/paginate", nil, h.FindWithPagination)
	registerRouteWithMiddleware(router, prefix, "PUT", "/update-by-id/:id", nil, h.UpdateById)
	registerRouteWithMiddleware(router, prefix, "DELETE", "/delete-by-id/:id", nil, h.DeleteById)
	registerRouteWithMiddleware(router, prefix, "GET", "/count", nil, h.CountDocuments)
}

// Register đăng ký tất cả route broadcast lên v1.
func Register(v1 fiber.Router) error {
	notificationHandler, err := broadcasthdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("create broadcast notification handler: %w", err)
	}
	registerCRUDRoutes(v1, "/broadcast/notifications", notificationHandler)
	registerRouteWithMiddleware(v1, "/broadcast/notifications", "GET", "/:id/card", nil, notificationHandler.HandleRenderCard)

	redirectHandler, err := broadcasthdl.NewRedirectHandler()
	if err != nil {
		return fmt.Errorf("create broadcast redirect handler: %w", err)
	}
	registerRouteWithMiddleware(v1, "/broadcast", "GET", "/redirect", nil, redirectHandler.HandleRedirect)

	trackingHandler, err := broadcasthdl.NewTrackingHandler()
	if err != nil {
		return fmt.Errorf("create broadcast tracking handler: %w", err)
	}
	registerRouteWithMiddleware(v1, "/broadcast", "GET", "/track", nil, trackingHandler.HandleTrackingPixel)

	eventHandler, err := broadcasthdl.NewEventHandler()
	if err != nil {
		return fmt.Errorf("create broadcast event handler: %w", err)
	}
	registerRouteWithMiddleware(v1, "/broadcast", "POST", "/events", nil, eventHandler.HandleBotEvent)

	return nil
}
