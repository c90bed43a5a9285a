package helper

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var ticketScheduler *cron.Cron

// StartTicketScheduler runs the expiration sweep every minute. A failed run
// only logs; the next tick retries on its own.
func StartTicketScheduler() {
	ticketScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := ticketScheduler.AddFunc("* * * * *", runTicketSweep)
	if err != nil {
		log.Printf("failed to start ticket scheduler: %v", err)
		return
	}

	ticketScheduler.Start()
	log.Println("ticket expiration scheduler started (every minute)")
}

func runTicketSweep() {
	count, err := ExpireDueTickets(time.Now().UTC())
	if err != nil {
		log.Printf("ticket sweep failed: %v", err)
		return
	}
	if count > 0 {
		log.Printf("expired %d tickets", count)
	}
}

func StopTicketScheduler() {
	if ticketScheduler != nil {
		ticketScheduler.Stop()
		log.Println("ticket expiration scheduler stopped")
	}
}
