package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/familysoo/studio-web/internal/pkg/imaging"
	"github.com/familysoo/studio-web/internal/pkg/storage"
)

var (
	heroPrefix       string
	heroLocal        bool
	heroDryRun       bool
	heroSkipExisting bool
	heroConcurrency  int
)

// heroesCmd is the parent command for hero image management
var heroesCmd = &cobra.Command{
	Use:   "heroes",
	Short: "Manage hero slideshow images",
}

// heroesPublishCmd resizes and uploads hero images
var heroesPublishCmd = &cobra.Command{
	Use:   "publish <dir>",
	Short: "Resize hero images and upload them",
	Long: `Resizes every .jpg, .jpeg, .png and .webp file in <dir> to at most
2000px, writes JPEG q85 renditions 400, 800 and 1200px wide, and uploads
them to R2. Without R2 credentials (or with --local) the files are written
below STATIC_DIR instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runHeroesPublish,
}

func init() {
	heroesPublishCmd.Flags().StringVar(&heroPrefix, "prefix", "images/hero", "Storage key prefix")
	heroesPublishCmd.Flags().BoolVar(&heroLocal, "local", false, "Write to STATIC_DIR even when R2 is configured")
	heroesPublishCmd.Flags().BoolVar(&heroDryRun, "dry-run", false, "Process images but do not store them")
	heroesPublishCmd.Flags().BoolVar(&heroSkipExisting, "skip-existing", false, "Leave images whose original is already stored untouched")
	heroesPublishCmd.Flags().IntVarP(&heroConcurrency, "concurrency", "j", 4, "Images processed in parallel")

	heroesCmd.AddCommand(heroesPublishCmd)
}

// publishedHero is one line of the publish report.
type publishedHero struct {
	Source     string         `json:"source"`
	URL        string         `json:"url"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Renditions map[int]string `json:"renditions"`
	Skipped    bool           `json:"skipped,omitempty"`
}

// publishOptions controls a publish run.
type publishOptions struct {
	Prefix       string
	Concurrency  int
	SkipExisting bool
}

func runHeroesPublish(cmd *cobra.Command, args []string) error {
	files, err := heroSources(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no images found in %s", args[0])
	}

	var store storage.Storage
	if !heroDryRun {
		store, err = heroStorage(cmd.Context())
		if err != nil {
			return err
		}
	}

	report, err := publishHeroes(cmd.Context(), store, imaging.NewProcessor(imaging.DefaultConfig()), files, publishOptions{
		Prefix:       heroPrefix,
		Concurrency:  heroConcurrency,
		SkipExisting: heroSkipExisting,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), report)
}

func heroStorage(ctx context.Context) (storage.Storage, error) {
	if cfg.R2Configured() && !heroLocal {
		log.Info().Str("bucket", cfg.R2BucketName).Msg("Publishing to R2")
		return storage.NewR2Storage(ctx, storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			BucketName:      cfg.R2BucketName,
			PublicURL:       cfg.R2PublicURL,
		})
	}
	log.Info().Str("dir", cfg.StaticDir).Msg("Publishing to local static directory")
	return storage.NewLocalStorage(cfg.StaticDir, "/static")
}

// heroSources lists the image files directly inside dir, sorted by name.
func heroSources(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !imaging.ValidateType(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// publishHeroes processes files concurrently and stores the results. A nil
// store only processes. The report keeps the order of files.
func publishHeroes(ctx context.Context, store storage.Storage, proc *imaging.Processor, files []string, opts publishOptions) ([]publishedHero, error) {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	report := make([]publishedHero, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	done := 0
	for i, file := range files {
		g.Go(func() error {
			hero, err := publishHero(ctx, store, proc, file, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(file), err)
			}
			report[i] = *hero

			mu.Lock()
			done++
			log.Info().Str("file", filepath.Base(file)).Int("done", done).Int("total", len(files)).Msg("Hero published")
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

func publishHero(ctx context.Context, store storage.Storage, proc *imaging.Processor, file string, opts publishOptions) (*publishedHero, error) {
	if store != nil && opts.SkipExisting {
		originalKey, _ := imaging.GeneratePaths(opts.Prefix, file, nil)
		exists, err := store.Exists(ctx, originalKey)
		if err != nil {
			return nil, err
		}
		if exists {
			return &publishedHero{Source: file, URL: store.GetURL(originalKey), Skipped: true}, nil
		}
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, _, err := storage.ValidateAndBuffer(f, storage.CategoryHero)
	if err != nil {
		return nil, err
	}
	img, err := proc.Process(buf)
	if err != nil {
		return nil, err
	}

	widths := make([]int, 0, len(img.Renditions))
	for _, r := range img.Renditions {
		widths = append(widths, r.Width)
	}
	originalKey, keys := imaging.GeneratePaths(opts.Prefix, file, widths)

	hero := &publishedHero{
		Source:     file,
		Width:      img.Width,
		Height:     img.Height,
		Renditions: make(map[int]string, len(keys)),
	}
	if store == nil {
		hero.URL = originalKey
		for w, key := range keys {
			hero.Renditions[w] = key
		}
		return hero, nil
	}

	if err := save(ctx, store, originalKey, img.Original, img.ContentType); err != nil {
		return nil, err
	}
	hero.URL = store.GetURL(originalKey)

	for _, r := range img.Renditions {
		key := keys[r.Width]
		if err := save(ctx, store, key, r.Data, img.ContentType); err != nil {
			return nil, err
		}
		hero.Renditions[r.Width] = store.GetURL(key)
	}
	return hero, nil
}

func save(ctx context.Context, store storage.Storage, key string, data []byte, contentType string) error {
	if err := store.Save(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
