package recus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/util"
)

func TestGetLocation_Success(t *testing.T) {
	// Resources live at the repo root, two levels up from this package.
	t.Setenv("PROJECT_ROOT", "../..")

	// Arrange
	client := NewRecUsApiClientMock()

	expected_response, err := util.ReadLocationResponseFromJSON(
		config.GetResourcePath(config.REC_US_LOCATION_RESPONSE_RESOURCE))
	if err != nil {
		t.Fatalf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.GetLocation("95745483-6b38-4e99-8ba2-a3e23cda8587")

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	assert.Equal(t, expected_response, response, "Responses dont match")
}

func TestGetLocation_FixtureShape(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "../..")

	client := NewRecUsApiClientMock()
	response, err := client.GetLocation("any-id")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	loc := response.Location
	assert.NotEmpty(t, loc.ID)
	assert.NotEmpty(t, loc.Name)
	assert.NotEmpty(t, loc.Courts)

	slots := loc.ToSlots()
	assert.NotEmpty(t, slots)
	for _, s := range slots {
		assert.Equal(t, loc.ID, s.VenueID)
		assert.True(t, s.Available)
	}
}
