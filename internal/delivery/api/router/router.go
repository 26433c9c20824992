// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"addressbook/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIV1Prefix is the versioned mount point that mirrors the root routes.
const APIV1Prefix = "/api/v1"

type RouterParams struct {
	fx.In

	PersonHandler *handler.PersonHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	personHandler *handler.PersonHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		personHandler: params.PersonHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	r.registerPeopleRoutes(e.Group("/people"))
	r.registerPeopleRoutes(e.Group(APIV1Prefix + "/people"))
}

func (r *router) registerPeopleRoutes(people *echo.Group) {
	people.GET("", r.personHandler.ListPeople)
	people.POST("", r.personHandler.CreatePerson)
	people.GET("/:id", r.personHandler.GetPerson)
	people.PUT("/:id", r.personHandler.UpdatePerson)
	people.DELETE("/:id", r.personHandler.DeletePerson)

	people.PUT("/:id/primary-address/:addressId", r.personHandler.SetPrimaryAddress)

	addresses := people.Group("/:id/addresses")
	{
		addresses.GET("", r.personHandler.ListAddresses)
		addresses.POST("", r.personHandler.AddAddress)
		addresses.GET("/:addressId", r.personHandler.GetAddress)
		addresses.PUT("/:addressId", r.personHandler.UpdateAddress)
		addresses.DELETE("/:addressId", r.personHandler.RemoveAddress)
	}
}
