package router

import (
	"park_manager/handler"
	"park_manager/middleware"
	"park_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	profile := v1.Group("/profile", logger.New())
	profile.Get("/me", middleware.Protected(), handler.Me)
	profile.Put("/", middleware.Protected(), validate.UpdateProfile(), handler.UpdateProfile)
	profile.Post("/image", middleware.Protected(), handler.UploadProfileImage)

	ticketType := v1.Group("/ticket-types", logger.New())
	ticketType.Get("/", middleware.OptionalJWT(), handler.GetTicketTypes)
	ticketType.Get("/:ticketTypeId", middleware.OptionalJWT(), validate.GetById("ticketTypeId"), handler.GetTicketTypeById)
	ticketType.Post("/", middleware.Protected(), validate.CreateTicketType(), handler.CreateTicketType)
	ticketType.Put("/:ticketTypeId", middleware.Protected(), validate.GetById("ticketTypeId"), validate.UpdateTicketType(), handler.UpdateTicketType)
	ticketType.Delete("/:ticketTypeId", middleware.Protected(), validate.GetById("ticketTypeId"), handler.DeleteTicketType)

	ticketType.Get("/:ticketTypeId/attractions", validate.GetById("ticketTypeId"), handler.GetTicketTypeAttractions)
	ticketType.Get("/:ticketTypeId/shows", validate.GetById("ticketTypeId"), handler.GetTicketTypeShows)
	ticketType.Get("/:ticketTypeId/services", validate.GetById("ticketTypeId"), handler.GetTicketTypeServices)

	association := v1.Group("/ticket-type-associations", logger.New())
	association.Post("/attractions", middleware.Protected(), validate.TicketTypeAssociation(), handler.AddTicketTypeAttraction)
	association.Delete("/attractions", middleware.Protected(), validate.TicketTypeAssociation(), handler.RemoveTicketTypeAttraction)
	association.Post("/shows", middleware.Protected(), validate.TicketTypeAssociation(), handler.AddTicketTypeShow)
	association.Delete("/shows", middleware.Protected(), validate.TicketTypeAssociation(), handler.RemoveTicketTypeShow)
	association.Post("/services", middleware.Protected(), validate.TicketTypeAssociation(), handler.AddTicketTypeService)
	association.Delete("/services", middleware.Protected(), validate.TicketTypeAssociation(), handler.RemoveTicketTypeService)

	// Reads pass through the lazy status sweep so stale ACTIVE rows are
	// never served.
	ticket := v1.Group("/tickets", logger.New())
	ticket.Get("/", middleware.Protected(), middleware.TicketStatus(), handler.GetTickets)
	ticket.Post("/", middleware.Protected(), validate.CreateTicket(), handler.CreateTicket)
	ticket.Post("/validate", middleware.Protected(), validate.ValidateTicket(), handler.ValidateTicket)
	ticket.Get("/code/:rawCode", middleware.Protected(), middleware.TicketStatus(), handler.GetTicketByCode)
	ticket.Get("/:ticketId", middleware.Protected(), middleware.TicketStatus(), validate.GetById("ticketId"), handler.GetTicketById)
	ticket.Put("/:ticketId", middleware.Protected(), validate.GetById("ticketId"), validate.UpdateTicket(), handler.UpdateTicket)
	ticket.Delete("/:ticketId", middleware.Protected(), validate.GetById("ticketId"), handler.DeleteTicket)

	discount := v1.Group("/discounts", logger.New())
	discount.Get("/", middleware.OptionalJWT(), handler.GetDiscounts)
	discount.Post("/", middleware.Protected(), validate.CreateDiscount(), handler.CreateDiscount)
	discount.Delete("/:discountId", middleware.Protected(), validate.GetById("discountId"), handler.DeleteDiscount)

	attraction := v1.Group("/attractions", logger.New())
	attraction.Get("/", middleware.OptionalJWT(), handler.GetAttractions)
	attraction.Get("/:slug", middleware.OptionalJWT(), handler.GetAttractionBySlug)
	attraction.Post("/", middleware.Protected(), validate.CreateAttraction(), handler.CreateAttraction)
	attraction.Put("/:attractionId", middleware.Protected(), validate.GetById("attractionId"), validate.UpdateAttraction(), handler.UpdateAttraction)
	attraction.Patch("/:attractionId/wait-time", middleware.Protected(), validate.GetById("attractionId"), validate.UpdateWaitTime(), handler.UpdateWaitTime)
	attraction.Get("/:attractionId/wait-times", validate.GetById("attractionId"), handler.GetWaitTimeHistory)
	attraction.Delete("/:attractionId", middleware.Protected(), validate.GetById("attractionId"), handler.DeleteAttraction)

	v1.Get("/ws/attractions/:id", websocket.New(handler.WaitTimeSocket))

	show := v1.Group("/shows", logger.New())
	show.Get("/", middleware.OptionalJWT(), handler.GetShows)
	show.Get("/:slug", middleware.OptionalJWT(), handler.GetShowBySlug)
	show.Post("/", middleware.Protected(), validate.CreateShow(), handler.CreateShow)
	show.Put("/:showId", middleware.Protected(), validate.GetById("showId"), validate.UpdateShow(), handler.UpdateShow)
	show.Delete("/:showId", middleware.Protected(), validate.GetById("showId"), handler.DeleteShow)

	service := v1.Group("/services", logger.New())
	service.Get("/", middleware.OptionalJWT(), handler.GetServices)
	service.Get("/:serviceId", middleware.OptionalJWT(), validate.GetById("serviceId"), handler.GetServiceById)
	service.Post("/", middleware.Protected(), validate.CreateService(), handler.CreateService)
	service.Put("/:serviceId", middleware.Protected(), validate.GetById("serviceId"), validate.UpdateService(), handler.UpdateService)
	service.Delete("/:serviceId", middleware.Protected(), validate.GetById("serviceId"), handler.DeleteService)

	planner := v1.Group("/planners", logger.New())
	planner.Get("/", middleware.Protected(), handler.GetPlanners)
	planner.Get("/:plannerId", middleware.Protected(), validate.GetById("plannerId"), handler.GetPlannerById)
	planner.Post("/", middleware.Protected(), validate.CreatePlanner(), handler.CreatePlanner)
	planner.Put("/:plannerId", middleware.Protected(), validate.GetById("plannerId"), validate.UpdatePlanner(), handler.UpdatePlanner)
	planner.Patch("/:plannerId/add-attraction", middleware.Protected(), validate.GetById("plannerId"), validate.AttachToPlanner(), handler.AddPlannerAttraction)
	planner.Patch("/:plannerId/add-show", middleware.Protected(), validate.GetById("plannerId"), validate.AttachToPlanner(), handler.AddPlannerShow)
	planner.Patch("/:plannerId/add-service", middleware.Protected(), validate.GetById("plannerId"), validate.AttachToPlanner(), handler.AddPlannerService)
	planner.Delete("/:plannerId", middleware.Protected(), validate.GetById("plannerId"), handler.DeletePlanner)

	booking := v1.Group("/bookings", logger.New())
	booking.Get("/", middleware.Protected(), handler.GetServiceBookings)
	booking.Get("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.GetServiceBookingById)
	booking.Post("/", middleware.Protected(), validate.CreateServiceBooking(), handler.CreateServiceBooking)
	booking.Put("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), validate.UpdateServiceBooking(), handler.UpdateServiceBooking)
	booking.Delete("/:bookingId", middleware.Protected(), validate.GetById("bookingId"), handler.DeleteServiceBooking)

	notification := v1.Group("/notifications", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetNotifications)
	notification.Patch("/toggle", middleware.Protected(), validate.ToggleNotifications(), handler.ToggleNotifications)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)
	notification.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteNotifications)
	notification.Delete("/:notificationId", middleware.Protected(), validate.GetById("notificationId"), handler.DeleteNotification)
}
