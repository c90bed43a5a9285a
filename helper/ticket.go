package helper

import (
	"errors"
	"park_manager/constants"
	"park_manager/database"
	"park_manager/model"
	"park_manager/utils"
	"time"

	"gorm.io/gorm"
)

// Redemption failures are distinct so the endpoint can report each one.
var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrAlreadyUsed    = errors.New("ticket already used")
	ErrInvalidStatus  = errors.New("ticket is not active")
	ErrWrongDay       = errors.New("ticket not valid today")
)

// RedeemTicket marks the ticket behind rawCode as USED. The final transition
// is a conditional update keyed on status = ACTIVE, so of two concurrent
// redemptions exactly one wins; the loser sees ErrAlreadyUsed.
func RedeemTicket(rawCode string, now time.Time) (*model.Ticket, error) {
	db := database.DB

	var ticket model.Ticket
	if err := db.Where("raw_code = ?", rawCode).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	if ticket.Status == constants.TICKET_USED {
		return nil, ErrAlreadyUsed
	}
	if ticket.Status != constants.TICKET_ACTIVE {
		return nil, ErrInvalidStatus
	}

	// Lazy transition: an ACTIVE row whose window has elapsed counts as
	// EXPIRED even if the sweep has not caught it yet.
	if utils.StatusFor(ticket.ValidFor.Time, now) == constants.TICKET_EXPIRED {
		db.Model(&model.Ticket{}).
			Where("raw_code = ? AND status = ?", rawCode, constants.TICKET_ACTIVE).
			Update("status", constants.TICKET_EXPIRED)
		return nil, ErrInvalidStatus
	}

	// Redeemable only on the designated calendar day, not merely unexpired.
	if !utils.SameCalendarDay(ticket.ValidFor.Time, now) {
		return nil, ErrWrongDay
	}

	result := db.Model(&model.Ticket{}).
		Where("raw_code = ? AND status = ?", rawCode, constants.TICKET_ACTIVE).
		Update("status", constants.TICKET_USED)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Lost the race against another redemption.
		return nil, ErrAlreadyUsed
	}

	if err := db.Preload("TicketType").Where("raw_code = ?", rawCode).First(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ExpireDueTickets transitions every ticket whose validity day has fully
// elapsed at now to EXPIRED. A single conditional update keeps it idempotent;
// running it twice in the same day changes nothing the second time.
func ExpireDueTickets(now time.Time) (int64, error) {
	result := database.DB.Model(&model.Ticket{}).
		Where("status IN ? AND valid_for < ?",
			[]string{constants.TICKET_ACTIVE, constants.TICKET_USED},
			utils.StartOfDay(now).Format("2006-01-02")).
		Update("status", constants.TICKET_EXPIRED)

	return result.RowsAffected, result.Error
}
