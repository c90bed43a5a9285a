package helper

import (
	"park_manager/constants"
	"park_manager/database"
	"park_manager/model"
	"park_manager/utils"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTicketDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Every :memory: connection is its own database; a single-connection
	// pool keeps all goroutines on the same one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.TicketType{}, &model.Ticket{}))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	require.NoError(t, db.Create(&model.User{
		FirstName: "Test", LastName: "Visitor",
		Email: "visitor@park.local", Password: "x",
	}).Error)
	require.NoError(t, db.Create(&model.TicketType{
		Name: "Standard", Price: 49.90,
	}).Error)

	return db
}

func makeTicket(t *testing.T, db *gorm.DB, rawCode, status string, validFor time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.Ticket{
		RawCode:      rawCode,
		QRCode:       "data:image/png;base64,",
		ValidFor:     utils.DateOnly(validFor),
		Status:       status,
		UserId:       1,
		TicketTypeId: 1,
	}).Error)
}

func TestRedeemTicketOnValidDay(t *testing.T) {
	db := setupTicketDB(t)
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)
	makeTicket(t, db, "TICKET-1-1-aaaa0001", constants.TICKET_ACTIVE, now)

	ticket, err := RedeemTicket("TICKET-1-1-aaaa0001", now)
	require.NoError(t, err)
	assert.Equal(t, constants.TICKET_USED, ticket.Status)
	assert.Equal(t, "Standard", ticket.TicketType.Name)
}

func TestRedeemTicketNotFound(t *testing.T) {
	setupTicketDB(t)

	_, err := RedeemTicket("TICKET-0-0-missing0", time.Now().UTC())
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestRedeemTicketTwice(t *testing.T) {
	db := setupTicketDB(t)
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)
	makeTicket(t, db, "TICKET-1-1-aaaa0002", constants.TICKET_ACTIVE, now)

	_, err := RedeemTicket("TICKET-1-1-aaaa0002", now)
	require.NoError(t, err)

	_, err = RedeemTicket("TICKET-1-1-aaaa0002", now)
	assert.ErrorIs(t, err, ErrAlreadyUsed)
}

func TestRedeemTicketConcurrent(t *testing.T) {
	db := setupTicketDB(t)
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)
	makeTicket(t, db, "TICKET-1-1-aaaa0006", constants.TICKET_ACTIVE, now)

	const attempts = 8
	errs := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := RedeemTicket("TICKET-1-1-aaaa0006", now)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	// Exactly one redemption wins; every other attempt loses the
	// conditional update and reports the ticket as already used.
	wins := 0
	for err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyUsed)
	}
	assert.Equal(t, 1, wins)

	var ticket model.Ticket
	require.NoError(t, db.Where("raw_code = ?", "TICKET-1-1-aaaa0006").First(&ticket).Error)
	assert.Equal(t, constants.TICKET_USED, ticket.Status)
}

func TestRedeemExpiredTicket(t *testing.T) {
	db := setupTicketDB(t)
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)
	makeTicket(t, db, "TICKET-1-1-aaaa0003", constants.TICKET_EXPIRED, now)

	_, err := RedeemTicket("TICKET-1-1-aaaa0003", now)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRedeemLazilyExpiresStaleActiveTicket(t *testing.T) {
	db := setupTicketDB(t)
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)
	// Still ACTIVE in the database although its day has passed.
	makeTicket(t, db, "TICKET-1-1-aaaa0004", constants.TICKET_ACTIVE, now.AddDate(0, 0, -3))

	_, err := RedeemTicket("TICKET-1-1-aaaa0004", now)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// The stale row was corrected on the way out.
	var ticket model.Ticket
	require.NoError(t, db.Where("raw_code = ?", "TICKET-1-1-aaaa0004").First(&ticket).Error)
	assert.Equal(t, constants.TICKET_EXPIRED, ticket.Status)
}

func TestRedeemTicketWrongDay(t *testing.T) {
	db := setupTicketDB(t)
	now := time.Date(2026, 7, 15, 10, 30, 0, 0, time.UTC)
	// Valid tomorrow, presented today.
	makeTicket(t, db, "TICKET-1-1-aaaa0005", constants.TICKET_ACTIVE, now.AddDate(0, 0, 1))

	_, err := RedeemTicket("TICKET-1-1-aaaa0005", now)
	assert.ErrorIs(t, err, ErrWrongDay)

	// A wrong-day attempt must not consume the ticket.
	var ticket model.Ticket
	require.NoError(t, db.Where("raw_code = ?", "TICKET-1-1-aaaa0005").First(&ticket).Error)
	assert.Equal(t, constants.TICKET_ACTIVE, ticket.Status)
}

func TestExpireDueTickets(t *testing.T) {
	db := setupTicketDB(t)
	now := time.Date(2026, 7, 15, 3, 0, 0, 0, time.UTC)

	makeTicket(t, db, "TICKET-1-1-bbbb0001", constants.TICKET_ACTIVE, now.AddDate(0, 0, -1))
	makeTicket(t, db, "TICKET-1-1-bbbb0002", constants.TICKET_USED, now.AddDate(0, 0, -2))
	makeTicket(t, db, "TICKET-1-1-bbbb0003", constants.TICKET_ACTIVE, now)
	makeTicket(t, db, "TICKET-1-1-bbbb0004", constants.TICKET_ACTIVE, now.AddDate(0, 0, 5))
	makeTicket(t, db, "TICKET-1-1-bbbb0005", constants.TICKET_EXPIRED, now.AddDate(0, 0, -4))

	count, err := ExpireDueTickets(now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var statuses []string
	require.NoError(t, db.Model(&model.Ticket{}).Order("raw_code").Pluck("status", &statuses).Error)
	assert.Equal(t, []string{
		constants.TICKET_EXPIRED,
		constants.TICKET_EXPIRED,
		constants.TICKET_ACTIVE,
		constants.TICKET_ACTIVE,
		constants.TICKET_EXPIRED,
	}, statuses)

	// Idempotent: a second sweep at the same instant touches nothing.
	count, err = ExpireDueTickets(now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
