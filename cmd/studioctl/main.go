// Command studioctl inspects the studio's Contentful content, publishes hero
// images and browses the portfolio in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/familysoo/studio-web/internal/config"
	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/logger"
)

var (
	logLevel string
	cfg      *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "studioctl",
	Short: "Family Soo studio content tool",
	Long: `studioctl reads the same environment as the web server
(CONTENTFUL_SPACE_ID, CONTENTFUL_ACCESS_TOKEN, R2_*, STATIC_DIR, DATABASE_URL).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return logger.Init(logger.Config{
			Level:       cfg.LogLevel,
			Environment: cfg.Env,
			Output:      os.Stderr,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(heroesCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(inquiriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newContentClient builds the Contentful client from the loaded config.
func newContentClient() (*contentful.Client, error) {
	if !cfg.ContentfulConfigured() {
		return nil, contentful.ErrNotConfigured
	}
	return contentful.NewClient(contentful.Config{
		BaseURL:     cfg.ContentfulBaseURL,
		SpaceID:     cfg.ContentfulSpaceID,
		AccessToken: cfg.ContentfulAccessToken,
		Environment: cfg.ContentfulEnvironment,
		Timeout:     cfg.ContentfulTimeout,
		UserAgent:   "studioctl",
	}), nil
}
