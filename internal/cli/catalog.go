package cli

import (
	"github.com/spf13/cobra"
)

func newPlacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "places",
		Short: "List all places",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}
			places, err := c.ListPlaces()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), places)
			}
			return printPlaceTable(cmd.OutOrStdout(), places)
		},
	}
}

func newPlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <id>",
		Short: "Show a place with its owner, amenities and reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}
			place, err := c.GetPlace(args[0])
			if err != nil {
				return err
			}
			reviews, err := c.ListPlaceReviews(args[0])
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{
					"place":   place,
					"reviews": reviews,
				})
			}
			w := cmd.OutOrStdout()
			printPlaceDetail(w, place)
			printReviewList(w, reviews)
			return nil
		},
	}
}

func newAmenitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "amenities",
		Short: "List all amenities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}
			amenities, err := c.ListAmenities()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), amenities)
			}
			return printAmenityTable(cmd.OutOrStdout(), amenities)
		},
	}
}

func newReviewsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reviews <place-id>",
		Short: "List the reviews of a place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newAPIClient()
			if err != nil {
				return err
			}
			reviews, err := c.ListPlaceReviews(args[0])
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), reviews)
			}
			printReviewList(cmd.OutOrStdout(), reviews)
			return nil
		},
	}
}
