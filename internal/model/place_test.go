package model

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func testOwner(t *testing.T) *User {
	t.Helper()
	u, err := NewUser("Alice", "Smith", "alice.smith@example.com", false)
	require.NoError(t, err)
	return u
}

func TestNewPlace(t *testing.T) {
	owner := testOwner(t)

	p, err := NewPlace("Cozy Apartment", "A nice place to stay", 100.0, 37.7749, -122.4194, owner)
	require.NoError(t, err)

	assert.Equal(t, "Cozy Apartment", p.Title())
	assert.Equal(t, "A nice place to stay", p.Description())
	assert.Equal(t, 100.0, p.Price())
	assert.Equal(t, 37.7749, p.Latitude())
	assert.Equal(t, -122.4194, p.Longitude())
	assert.Same(t, owner, p.Owner())
	assert.Empty(t, p.Reviews())
	assert.Empty(t, p.Amenities())
}

func TestNewPlaceBoundaries(t *testing.T) {
	owner := testOwner(t)

	for _, c := range []struct{ lat, lon float64 }{{-90, -180}, {90, 180}, {0, 0}} {
		_, err := NewPlace("Edge", "", 0, c.lat, c.lon, owner)
		assert.NoError(t, err, "lat=%v lon=%v", c.lat, c.lon)
	}

	_, err := NewPlace(strings.Repeat("t", 50), strings.Repeat("d", 1000), 0, 0, 0, owner)
	assert.NoError(t, err)
}

func TestNewPlaceValidation(t *testing.T) {
	owner := testOwner(t)

	tests := []struct {
		name      string
		title     string
		desc      string
		price     float64
		lat       float64
		lon       float64
		owner     *User
		wantInMsg string
	}{
		{"empty title", "", "", 1, 0, 0, owner, "Title"},
		{"long title", strings.Repeat("t", 51), "", 1, 0, 0, owner, "Title"},
		{"long description", "Loft", strings.Repeat("d", 1001), 1, 0, 0, owner, "Description"},
		{"negative price", "Loft", "", -0.01, 0, 0, owner, "Price"},
		{"nan price", "Loft", "", math.NaN(), 0, 0, owner, "Price"},
		{"latitude too low", "Loft", "", 1, -90.1, 0, owner, "Latitude"},
		{"latitude too high", "Loft", "", 1, 90.1, 0, owner, "Latitude"},
		{"nan latitude", "Loft", "", 1, math.NaN(), 0, owner, "Latitude"},
		{"longitude too low", "Loft", "", 1, 0, -180.5, owner, "Longitude"},
		{"longitude too high", "Loft", "", 1, 0, 181, owner, "Longitude"},
		{"missing owner", "Loft", "", 1, 0, 0, nil, "Owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPlace(tt.title, tt.desc, tt.price, tt.lat, tt.lon, tt.owner)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, IsKind(err, KindValidation))
			assert.Contains(t, Message(err), tt.wantInMsg)
		})
	}
}

func TestPlaceSetters(t *testing.T) {
	p, err := NewPlace("Loft", "", 10, 0, 0, testOwner(t))
	require.NoError(t, err)

	require.NoError(t, p.SetTitle("Big Loft"))
	require.NoError(t, p.SetDescription("Roomy"))
	require.NoError(t, p.SetPrice(20))
	require.NoError(t, p.SetLatitude(45))
	require.NoError(t, p.SetLongitude(-45))

	assert.Error(t, p.SetPrice(-1))
	assert.Error(t, p.SetLatitude(91))
	assert.Error(t, p.SetLongitude(-181))
	assert.Error(t, p.SetTitle(""))

	assert.Equal(t, "Big Loft", p.Title())
	assert.Equal(t, "Roomy", p.Description())
	assert.Equal(t, 20.0, p.Price())
	assert.Equal(t, 45.0, p.Latitude())
	assert.Equal(t, -45.0, p.Longitude())
}

func TestPlaceApplyIsAtomic(t *testing.T) {
	p, err := NewPlace("Loft", "", 10, 0, 0, testOwner(t))
	require.NoError(t, err)

	err = p.Apply(PlaceUpdate{Title: strPtr("Renamed"), Latitude: floatPtr(120)})
	require.Error(t, err)
	assert.Equal(t, "Loft", p.Title())
	assert.Equal(t, 0.0, p.Latitude())

	require.NoError(t, p.Apply(PlaceUpdate{Title: strPtr("Renamed"), Price: floatPtr(99.5)}))
	assert.Equal(t, "Renamed", p.Title())
	assert.Equal(t, 99.5, p.Price())
}

func TestPlaceAmenitiesKeepDuplicates(t *testing.T) {
	p, err := NewPlace("Loft", "", 10, 0, 0, testOwner(t))
	require.NoError(t, err)
	wifi, err := NewAmenity("wifi")
	require.NoError(t, err)

	p.AddAmenity(wifi)
	p.AddAmenity(wifi)

	assert.Len(t, p.Amenities(), 2)
}

func TestPlaceWithReview(t *testing.T) {
	owner := testOwner(t)
	p, err := NewPlace("Cozy Apartment", "A nice place to stay", 100, 37.7749, -122.4194, owner)
	require.NoError(t, err)

	r, err := NewReview("Great stay!", 5, p, owner)
	require.NoError(t, err)
	p.AddReview(r)

	require.Len(t, p.Reviews(), 1)
	assert.Equal(t, "Great stay!", p.Reviews()[0].Text())
}
