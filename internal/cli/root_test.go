package cli

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcraddock/hbnb/internal/facade"
	"github.com/evcraddock/hbnb/internal/web"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// seededServer starts an API server with one place, amenity and review and
// points the CLI at it.
func seededServer(t *testing.T) string {
	t.Helper()
	f := facade.NewInMemory()
	owner, err := f.CreateUser(facade.CreateUserInput{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"})
	require.NoError(t, err)
	wifi, err := f.CreateAmenity(facade.CreateAmenityInput{Name: "wifi"})
	require.NoError(t, err)
	place, err := f.CreatePlace(facade.CreatePlaceInput{
		Title:      "Cozy Apartment",
		Price:      100,
		Latitude:   37.7749,
		Longitude:  -122.4194,
		OwnerID:    owner.ID(),
		AmenityIDs: []string{wifi.ID()},
	})
	require.NoError(t, err)
	_, err = f.CreateReview(facade.CreateReviewInput{Text: "Great!", Rating: 5, UserID: owner.ID(), PlaceID: place.ID()})
	require.NoError(t, err)

	srv := httptest.NewServer(web.NewServer(f, web.Options{}))
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Setenv("HBNB_SERVER_URL", srv.URL)
	return place.ID()
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	assert.NoError(t, err)
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("env-file"))
}

func TestVersion(t *testing.T) {
	out, err := executeCommand("version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "hbnb "+Version+" ("), out)

	out, err = executeCommand("version", "--format", "json")
	require.NoError(t, err)
	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info["version"])
}

func TestArgsValidation(t *testing.T) {
	_, err := executeCommand("place")
	assert.Error(t, err)

	_, err = executeCommand("reviews", "a", "b")
	assert.Error(t, err)

	_, err = executeCommand("places", "extra")
	assert.Error(t, err)
}

func TestPlacesCommand(t *testing.T) {
	placeID := seededServer(t)

	out, err := executeCommand("places")
	require.NoError(t, err)
	assert.Contains(t, out, placeID)
	assert.Contains(t, out, "Cozy Apartment")
	assert.Contains(t, out, "Total: 1 places")
}

func TestPlacesCommandJSON(t *testing.T) {
	placeID := seededServer(t)

	out, err := executeCommand("places", "--format", "json")
	require.NoError(t, err)
	var places []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &places))
	require.Len(t, places, 1)
	assert.Equal(t, placeID, places[0]["id"])
}

func TestPlaceCommand(t *testing.T) {
	placeID := seededServer(t)

	out, err := executeCommand("place", placeID, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Cozy Apartment")
	assert.Contains(t, out, "Jane Doe <jane.doe@example.com>")
	assert.Contains(t, out, "Amenities: wifi")
	assert.Contains(t, out, "$100.00")
	assert.Contains(t, out, "Great!")
}

func TestPlaceCommandUnknown(t *testing.T) {
	seededServer(t)

	_, err := executeCommand("place", "missing", "--format", "text")
	assert.ErrorContains(t, err, "Place not found")
}

func TestAmenitiesCommand(t *testing.T) {
	seededServer(t)

	out, err := executeCommand("amenities", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "wifi")
}

func TestReviewsCommand(t *testing.T) {
	placeID := seededServer(t)

	out, err := executeCommand("reviews", placeID, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "★★★★★")
	assert.Contains(t, out, "Great!")
}

func TestServeRejectsBadPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := executeCommand("serve", "--port", "0")
	assert.ErrorContains(t, err, "out of range")
}
