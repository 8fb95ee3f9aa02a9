package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"

	"github.com/evcraddock/hbnb/internal/api"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPlaceTable prints a list of places as a formatted table.
func printPlaceTable(out io.Writer, places []api.PlaceSummary) error {
	if len(places) == 0 {
		fmt.Fprintln(out, "No places found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTITLE\tLATITUDE\tLONGITUDE"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t-----\t--------\t---------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range places {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\n",
			p.ID, truncate(p.Title, 40), p.Latitude, p.Longitude); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Fprintf(out, "\nTotal: %d places\n", len(places))
	return nil
}

// printPlaceDetail prints a single place in text format.
func printPlaceDetail(w io.Writer, p *api.PlaceDetail) {
	fmt.Fprintf(w, "%s\n", p.Title)
	fmt.Fprintf(w, "  ID:        %s\n", p.ID)
	if p.Description != "" {
		fmt.Fprintf(w, "  About:     %s\n", p.Description)
	}
	fmt.Fprintf(w, "  Price:     %s\n", formatPrice(p.Price))
	fmt.Fprintf(w, "  Location:  %.4f, %.4f\n", p.Latitude, p.Longitude)
	fmt.Fprintf(w, "  Owner:     %s %s <%s>\n", p.Owner.FirstName, p.Owner.LastName, p.Owner.Email)
	if len(p.Amenities) > 0 {
		names := make([]string, 0, len(p.Amenities))
		for _, a := range p.Amenities {
			names = append(names, a.Name)
		}
		fmt.Fprintf(w, "  Amenities: %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintln(w)
}

// printAmenityTable prints amenities as a formatted table.
func printAmenityTable(out io.Writer, amenities []api.AmenityResponse) error {
	if len(amenities) == 0 {
		fmt.Fprintln(out, "No amenities found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, a := range amenities {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", a.ID, a.Name); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}
	return nil
}

// printReviewList prints reviews in text format.
func printReviewList(w io.Writer, reviews []api.ReviewSummary) {
	if len(reviews) == 0 {
		fmt.Fprintln(w, "No reviews.")
		return
	}

	for _, r := range reviews {
		fmt.Fprintf(w, "%s (%s)\n  %s\n\n", formatRating(r.Rating), r.ID, r.Text)
	}
}

// formatPrice formats a nightly price with two decimals.
func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// formatRating returns a star representation of a rating (1-5).
func formatRating(rating int) string {
	rating = min(max(rating, 1), 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
