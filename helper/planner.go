package helper

import (
	"park_manager/database"
	"park_manager/model"
)

// FilterEligible intersects candidates with the whitelist, preserving the
// first-occurrence order of candidates. Duplicates are dropped.
func FilterEligible(candidates []uint, whitelist []uint) []uint {
	allowed := make(map[uint]bool, len(whitelist))
	for _, id := range whitelist {
		allowed[id] = true
	}

	filtered := make([]uint, 0, len(candidates))
	seen := make(map[uint]bool, len(candidates))
	for _, id := range candidates {
		if allowed[id] && !seen[id] {
			filtered = append(filtered, id)
			seen[id] = true
		}
	}
	return filtered
}

// MergeIds unions current and requested, current first, without duplicates.
// Planner updates merge instead of replacing so attached items the caller
// did not resubmit are never silently dropped.
func MergeIds(current []uint, requested []uint) []uint {
	merged := make([]uint, 0, len(current)+len(requested))
	seen := make(map[uint]bool, len(current)+len(requested))
	for _, id := range current {
		if !seen[id] {
			merged = append(merged, id)
			seen[id] = true
		}
	}
	for _, id := range requested {
		if !seen[id] {
			merged = append(merged, id)
			seen[id] = true
		}
	}
	return merged
}

func EligibleAttractionIds(ticketTypeId uint) ([]uint, error) {
	var ids []uint
	err := database.DB.Model(&model.TicketTypeAttraction{}).
		Where("ticket_type_id = ?", ticketTypeId).
		Pluck("attraction_id", &ids).Error
	return ids, err
}

func EligibleShowIds(ticketTypeId uint) ([]uint, error) {
	var ids []uint
	err := database.DB.Model(&model.TicketTypeShow{}).
		Where("ticket_type_id = ?", ticketTypeId).
		Pluck("show_id", &ids).Error
	return ids, err
}

func EligibleServiceIds(ticketTypeId uint) ([]uint, error) {
	var ids []uint
	err := database.DB.Model(&model.TicketTypeService{}).
		Where("ticket_type_id = ?", ticketTypeId).
		Pluck("service_id", &ids).Error
	return ids, err
}

// FilterPlannerSelection applies the eligibility whitelist of the given
// ticket type to all three candidate lists.
func FilterPlannerSelection(ticketTypeId uint, attractionIds, showIds, serviceIds []uint) (attractions, shows, services []uint, err error) {
	validAttractions, err := EligibleAttractionIds(ticketTypeId)
	if err != nil {
		return nil, nil, nil, err
	}
	validShows, err := EligibleShowIds(ticketTypeId)
	if err != nil {
		return nil, nil, nil, err
	}
	validServices, err := EligibleServiceIds(ticketTypeId)
	if err != nil {
		return nil, nil, nil, err
	}

	return FilterEligible(attractionIds, validAttractions),
		FilterEligible(showIds, validShows),
		FilterEligible(serviceIds, validServices),
		nil
}
