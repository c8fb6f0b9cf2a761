package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SubmitReservation(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	ListReservations(c *ginext.Context)
	SetReservationStatus(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
}

// InitRouter wires the public booking surface and the session-guarded staff
// surface. staffGuard is applied only to staff routes.
func InitRouter(mode string, h Handler, staffGuard ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public
		api.POST("/reservations", h.SubmitReservation)
		api.GET("/availability", h.GetAvailability)

		// Session
		api.POST("/login", h.Login)
		api.POST("/logout", h.Logout)

		// Staff
		staff := api.Group("")
		staff.Use(staffGuard)
		staff.GET("/reservations", h.ListReservations)
		staff.POST("/reservations/:id/status", h.SetReservationStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
