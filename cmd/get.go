package main

import (
	"fmt"
	"io"
	"time"

	"apod"
	"apod/pkg/client"
	"apod/pkg/consts"

	"github.com/spf13/cobra"
)

var (
	dateFlag string
	hdFlag   bool
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the metadata of a picture",
	Long:  `Print the metadata of today's picture, or of the picture published on --date.`,
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVarP(&dateFlag, "date", "d", "", "picture date (yyyy-mm-dd), today when empty")
	getCmd.Flags().BoolVar(&hdFlag, "hd", false, "ask for the high definition link")
}

func runGet(cmd *cobra.Command, args []string) error {

	date, err := parseDate(dateFlag)
	if err != nil {
		return err
	}

	md, limits, err := apodClient.GetPicture(cmd.Context(), date, hdFlag)
	if err != nil {
		return err
	}

	printMetadata(cmd.OutOrStdout(), md, limits)
	return nil
}

func parseDate(s string) (apod.Date, error) {
	if s == "" {
		return apod.Today(), nil
	}

	t, err := time.Parse(consts.TimeFormat, s)
	if err != nil {
		return apod.Date{}, fmt.Errorf("date is not in the correct format, use yyyy-mm-dd: %w", err)
	}

	return apod.FromTime(t), nil
}

func printMetadata(w io.Writer, md *apod.Metadata, limits client.RateLimitInfo) {
	fmt.Fprintf(w, "Title: %s\n", md.Title)
	if md.Copyright != nil {
		fmt.Fprintf(w, "Copyright: %s\n", *md.Copyright)
	}
	fmt.Fprintf(w, "Media: %s\n", md.MediaType)
	fmt.Fprintf(w, "URL: %s\n", md.URL)
	if md.HDURL != nil {
		fmt.Fprintf(w, "HD URL: %s\n", *md.HDURL)
	}
	fmt.Fprintf(w, "\n%s\n", md.Explanation)

	if limits.Known() {
		fmt.Fprintf(w, "\nRate limit: %d/%d requests left\n", limits.Remaining, limits.Limit)
	}
}
