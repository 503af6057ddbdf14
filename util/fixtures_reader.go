package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rneedle3/play-now/models"
	"github.com/rneedle3/play-now/models/venue"
)

// ReadLocationResponseFromJSON loads a rec.us LocationResponse from disk.
func ReadLocationResponseFromJSON(filePath string) (*models.LocationResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.LocationResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal LocationResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenuesFromJSON loads a slice of venues from JSON on disk.
func ReadVenuesFromJSON(filePath string) ([]venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var venues []venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venues: %w", err)
	}
	return venues, nil
}

// ReadSlotsFromJSON loads a slice of slots from JSON on disk.
func ReadSlotsFromJSON(filePath string) ([]models.Slot, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var slots []models.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal slots: %w", err)
	}
	return slots, nil
}

// PrintLocationResponsePartially prints key fields of a LocationResponse.
func PrintLocationResponsePartially(resp *models.LocationResponse) {
	loc := resp.Location
	fmt.Printf("Location ID: %s\n", loc.ID)
	fmt.Printf("Name: %s\n", loc.Name)
	fmt.Printf("Address: %s\n", loc.FormattedAddress)
	fmt.Printf("Courts: %d\n", len(loc.Courts))
	total := 0
	for _, c := range loc.Courts {
		total += len(c.AvailableSlots)
	}
	fmt.Printf("Available slots: %d\n", total)
}
