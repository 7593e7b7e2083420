// Package router wires the API handlers onto echo routes.
package router

import (
	"dropzone/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers registered by the router, injected by Fx.
type RouterParams struct {
	fx.In

	AssignmentHandler *handler.AssignmentHandler
	DropPointHandler  *handler.DropPointHandler
	PickupPassHandler *handler.PickupPassHandler
}

type router struct {
	assignmentHandler *handler.AssignmentHandler
	dropPointHandler  *handler.DropPointHandler
	pickupPassHandler *handler.PickupPassHandler
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		assignmentHandler: params.AssignmentHandler,
		dropPointHandler:  params.DropPointHandler,
		pickupPassHandler: params.PickupPassHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	assignmentsGroup := apiV1.Group("/assignments")
	{
		assignmentsGroup.POST("", r.assignmentHandler.Assign)
		assignmentsGroup.GET("/:listingId", r.assignmentHandler.GetAssignment)
		assignmentsGroup.PUT("/:listingId/reassign", r.assignmentHandler.Reassign)
		assignmentsGroup.GET("/:listingId/pass", r.pickupPassHandler.IssuePickupPass)
		assignmentsGroup.GET("/:listingId/pass.png", r.pickupPassHandler.RenderPickupPassQR)
	}

	apiV1.GET("/suppliers/:supplierId/deliveries", r.assignmentHandler.GetUpcomingDeliveries)

	// "nearby" is a static segment, so it wins over /:id.
	dropPointsGroup := apiV1.Group("/drop-points")
	{
		dropPointsGroup.GET("/nearby", r.dropPointHandler.GetNearbyDropPoints)
		dropPointsGroup.GET("/:id", r.dropPointHandler.GetDropPoint)
		dropPointsGroup.GET("/:id/slots", r.dropPointHandler.GetSlot)
	}

	apiV1.POST("/pickup-passes/verify", r.pickupPassHandler.VerifyPickupPass)
}
