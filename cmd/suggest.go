package cmd

import (
	"fmt"
	"strings"

	"dootrec/internal/autotag"
	"dootrec/pkg/utils"

	"github.com/spf13/cobra"
)

var (
	suggestTitle string
	suggestLink  string
)

var suggestCmd = &cobra.Command{
	Use:     "suggest",
	Short:   "Suggest genres for a title using the configured model",
	Example: `  dootrec suggest --title "Arrival" --link "https://www.netflix.com/title/80117799"`,
	RunE:    runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestTitle, "title", "t", "", "Movie or show title")
	suggestCmd.Flags().StringVarP(&suggestLink, "link", "l", "", "OTT link for the title")
	_ = suggestCmd.MarkFlagRequired("title")
	_ = suggestCmd.MarkFlagRequired("link")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	in := autotag.Input{Title: suggestTitle, OTTLink: suggestLink}
	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		return fmt.Errorf("invalid input: %s", utils.FormatValidationErrors(errs))
	}

	tagger, err := autotag.New(cmd.Context(), taggerConfig(config), logger)
	if err != nil {
		return fmt.Errorf("failed to create genre tagger: %w", err)
	}

	out, err := tagger.Suggest(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("suggest genres: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out.Genres, ", "))
	return nil
}
