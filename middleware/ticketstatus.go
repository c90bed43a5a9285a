package middleware

import (
	"log"
	"park_manager/helper"
	"time"

	"github.com/gofiber/fiber/v2"
)

// TicketStatus lazily expires stale tickets before ticket reads, so a row the
// sweep has not reached yet is never served as ACTIVE. Failures never block
// the request.
func TicketStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helper.ExpireDueTickets(time.Now().UTC()); err != nil {
			log.Printf("lazy ticket expiration failed: %v", err)
		}
		return c.Next()
	}
}
