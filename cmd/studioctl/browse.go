package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/gallery"
	"github.com/familysoo/studio-web/internal/pkg/logger"
)

var (
	browseType    string
	browseLogFile string
)

// browseCmd opens the terminal gallery
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio in the terminal",
	Long: `Opens an interactive gallery over the portfolio items.

Keys:
  tab / shift+tab  cycle categories
  ↑ ↓ (k j)        move
  enter            open the lightbox
  ← →              previous / next image
  esc              close the lightbox
  q                quit

Full images are downloaded over HTTP; the neighbours of the open image are
prefetched the way the website does.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseType, "type", "t", "", "Service line: family, baby or remindWedding (default: all)")
	browseCmd.Flags().StringVar(&browseLogFile, "log-file", "", "Write logs here; the terminal is taken by the UI")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ct := portfolio.ContentType(browseType)
	if browseType != "" && !ct.Valid() {
		return fmt.Errorf("unknown type %q (family, baby, remindWedding)", browseType)
	}

	// Logs would tear the alternate screen
	if err := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Environment: "production",
		Output:      io.Discard,
		LogFile:     browseLogFile,
	}); err != nil {
		return err
	}

	client, err := newContentClient()
	if err != nil {
		return err
	}
	svc := portfolio.NewService(client)
	load := func(ctx context.Context) ([]portfolio.Item, error) {
		if browseType == "" {
			return svc.LoadAll(ctx, portfolio.Options{})
		}
		return svc.Load(ctx, ct, portfolio.Options{})
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	prefetcher := gallery.NewPrefetcher(gallery.NewHTTPLoader(nil, gallery.LoaderConfig{}), gallery.DefaultPrefetchConfig())
	model := newBrowseModel(ctx, load, prefetcher)

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	cancel()
	prefetcher.Wait()
	return err
}
