package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/familysoo/studio-web/internal/domain/concept"
	"github.com/familysoo/studio-web/internal/domain/portfolio"
)

var (
	portfolioType   string
	portfolioMobile bool

	conceptService string
	conceptGrouped bool
)

// portfolioCmd prints transformed gallery items
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Print transformed portfolio items as JSON",
	Long: `Fetches portfolio entries and prints one item per (entry, image) pair.

Without --type all three service lines are merged in display order.`,
	Example: `  studioctl portfolio --type baby
  studioctl portfolio --mobile`,
	RunE: runPortfolio,
}

// conceptsCmd prints concepts
var conceptsCmd = &cobra.Command{
	Use:     "concepts",
	Short:   "Print concepts as JSON",
	Example: `  studioctl concepts --service 베이비 --grouped`,
	RunE:    runConcepts,
}

func init() {
	portfolioCmd.Flags().StringVarP(&portfolioType, "type", "t", "", "Service line: family, baby or remindWedding")
	portfolioCmd.Flags().BoolVar(&portfolioMobile, "mobile", false, "Use mobile thumbnail sizes")

	conceptsCmd.Flags().StringVarP(&conceptService, "service", "s", "", "Service label, e.g. 베이비")
	conceptsCmd.Flags().BoolVar(&conceptGrouped, "grouped", false, "Group by category")
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	ct := portfolio.ContentType(portfolioType)
	if portfolioType != "" && !ct.Valid() {
		return fmt.Errorf("unknown type %q (family, baby, remindWedding)", portfolioType)
	}

	client, err := newContentClient()
	if err != nil {
		return err
	}
	svc := portfolio.NewService(client)
	opts := portfolio.Options{Mobile: portfolioMobile}

	var items []portfolio.Item
	if portfolioType == "" {
		items, err = svc.LoadAll(cmd.Context(), opts)
	} else {
		items, err = svc.Load(cmd.Context(), ct, opts)
	}
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), items)
}

func runConcepts(cmd *cobra.Command, args []string) error {
	client, err := newContentClient()
	if err != nil {
		return err
	}

	groups, err := concept.NewService(client).Load(cmd.Context(), conceptService)
	if err != nil {
		return err
	}
	if conceptGrouped {
		return printJSON(cmd.OutOrStdout(), groups)
	}

	var flat []concept.Concept
	for _, g := range groups {
		flat = append(flat, g.Concepts...)
	}
	return printJSON(cmd.OutOrStdout(), flat)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
