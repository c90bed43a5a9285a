package database

import (
	"log"
	"park_manager/constants"
	"park_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	users := []model.User{
		{FirstName: "Park", LastName: "Admin", Email: "admin@park.local", Password: hashPassword, Role: constants.ROLE_ADMIN},
		{FirstName: "Gate", LastName: "Staff", Email: "staff@park.local", Password: hashPassword, Role: constants.ROLE_STAFF},
	}
	for _, user := range users {
		if err := db.Where(model.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed user:", user.Email, "error:", err)
		}
	}

	attractions := []model.Attraction{
		{Name: "Dragon Coaster", Slug: "dragon-coaster", Category: "THRILL", Location: "North Zone", Description: "Inverted coaster with five loops", WaitTime: 25},
		{Name: "Splash River", Slug: "splash-river", Category: "WATER", Location: "West Zone", Description: "Log flume through the rapids", WaitTime: 15},
		{Name: "Haunted Manor", Slug: "haunted-manor", Category: "DARK_RIDE", Location: "East Zone", Description: "Slow dark ride", WaitTime: 10},
	}
	for _, a := range attractions {
		if err := db.Where(model.Attraction{Slug: a.Slug}).FirstOrCreate(&a).Error; err != nil {
			log.Println("failed to seed attraction:", a.Name, "error:", err)
		}
	}

	services := []model.Service{
		{Name: "Panorama Restaurant", Type: "RESTAURANT", Location: "Central Plaza", Description: "Table service with park view"},
		{Name: "Locker Rental", Type: "FACILITY", Location: "Main Gate", Description: "Day lockers"},
	}
	for _, s := range services {
		if err := db.Where(model.Service{Name: s.Name}).FirstOrCreate(&s).Error; err != nil {
			log.Println("failed to seed service:", s.Name, "error:", err)
		}
	}

	ticketTypes := []model.TicketType{
		{Name: "Standard", Price: 39.90, Description: "Access to all base attractions"},
		{Name: "Premium", Price: 69.90, Description: "All attractions, shows and services"},
	}
	for i := range ticketTypes {
		if err := db.Where(model.TicketType{Name: ticketTypes[i].Name}).FirstOrCreate(&ticketTypes[i]).Error; err != nil {
			log.Println("failed to seed ticket type:", ticketTypes[i].Name, "error:", err)
		}
	}

	// Whitelists: Standard gets the base attractions, Premium gets everything.
	var allAttractions []model.Attraction
	db.Find(&allAttractions)
	var allServices []model.Service
	db.Find(&allServices)

	for i, a := range allAttractions {
		if i < 2 {
			join := model.TicketTypeAttraction{TicketTypeId: ticketTypes[0].ID, AttractionId: a.ID}
			db.Where(join).FirstOrCreate(&join)
		}
		join := model.TicketTypeAttraction{TicketTypeId: ticketTypes[1].ID, AttractionId: a.ID}
		db.Where(join).FirstOrCreate(&join)
	}
	for _, s := range allServices {
		join := model.TicketTypeService{TicketTypeId: ticketTypes[1].ID, ServiceId: s.ID}
		db.Where(join).FirstOrCreate(&join)
	}
}
