package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/familysoo/studio-web/internal/config"
	"github.com/familysoo/studio-web/internal/domain/concept"
	"github.com/familysoo/studio-web/internal/domain/content"
	"github.com/familysoo/studio-web/internal/domain/inquiry"
	"github.com/familysoo/studio-web/internal/domain/portfolio"
	"github.com/familysoo/studio-web/internal/domain/services"
	"github.com/familysoo/studio-web/internal/middleware"
	"github.com/familysoo/studio-web/internal/pkg/contentful"
	"github.com/familysoo/studio-web/internal/pkg/database"
	"github.com/familysoo/studio-web/internal/pkg/email"
	"github.com/familysoo/studio-web/internal/pkg/logger"
	pkgresponse "github.com/familysoo/studio-web/internal/pkg/response"
	"github.com/familysoo/studio-web/internal/site"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()
	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("version", version).
		Bool("contentful", cfg.ContentfulConfigured()).
		Msg("Starting Family Soo studio site")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	rdb, err := database.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(rdb)

	client := contentful.NewClient(contentful.Config{
		BaseURL:     cfg.ContentfulBaseURL,
		SpaceID:     cfg.ContentfulSpaceID,
		AccessToken: cfg.ContentfulAccessToken,
		Environment: cfg.ContentfulEnvironment,
		Timeout:     cfg.ContentfulTimeout,
		UserAgent:   "familysoo-studio/" + version,
	})
	if rdb != nil && cfg.ContentCacheEnabled {
		client = client.WithCache(contentful.NewRedisCache(rdb))
		log.Info().Msg("Content cache enabled")
	}

	repo := inquiry.NewLogRepository()
	if db != nil {
		if err := inquiry.EnsureSchema(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply inquiry schema")
		}
		repo = inquiry.NewRepository(db)
	}

	var notifier inquiry.Notifier
	if cfg.EmailConfigured() {
		mailer := email.NewService(email.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		})
		defer mailer.Close()
		notifier = inquiry.NewMailNotifier(mailer, cfg.InquiryNotifyEmail)
		log.Info().Str("to", cfg.InquiryNotifyEmail).Msg("Inquiry email notifications enabled")
	}

	limiter := middleware.NewIPRateLimiter(cfg.InquiryRatePerMinute, cfg.InquiryRatePerMinute)
	go limiter.Run(ctx)

	handler, err := newRouter(app{
		cfg:       cfg,
		client:    client,
		inquiries: repo,
		notifier:  notifier,
		limiter:   limiter,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited properly")
}

// app is everything the router needs; main wires the real backends.
type app struct {
	cfg       *config.Config
	client    *contentful.Client
	inquiries inquiry.Repository
	notifier  inquiry.Notifier
	limiter   *middleware.IPRateLimiter
}

func newRouter(a app) (http.Handler, error) {
	trusted, err := middleware.ParseTrustedProxies(a.cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	siteCopy, err := site.LoadCopy()
	if err != nil {
		return nil, err
	}
	tmpl, err := site.ParseTemplates(site.NewRenderer())
	if err != nil {
		return nil, err
	}

	portfolioSvc := portfolio.NewService(a.client)
	conceptSvc := concept.NewService(a.client)
	inquirySvc := inquiry.NewService(a.inquiries)
	if a.notifier != nil {
		inquirySvc.WithNotifier(a.notifier)
	}

	servicesHandler := services.NewHandler(services.NewService(a.client))
	conceptHandler := concept.NewHandler(conceptSvc)
	inquiryHandler := inquiry.NewHandler(inquirySvc)
	faqHandler := content.NewFAQHandler(content.NewStaticFAQ(faqItems(siteCopy.FAQ)))
	siteHandler := site.NewHandler(siteCopy, tmpl, portfolioSvc, conceptSvc, inquirySvc)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(middleware.RealIP(trusted))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(chimw.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.CORSHandler(a.cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/services", servicesHandler.Routes())
		r.Mount("/concepts", conceptHandler.Routes())
		r.Mount("/faq", faqHandler.Routes())
		r.Mount("/inquiries", inquiryHandler.Routes(a.limiter.Handler))
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(a.cfg.StaticDir))))
	r.Mount("/", siteHandler.Routes(a.limiter.Handler))

	return r, nil
}

func faqItems(entries []site.FAQEntry) []content.FAQItem {
	items := make([]content.FAQItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, content.FAQItem{
			Category: e.Category,
			Question: e.Question,
			Answer:   e.Answer,
		})
	}
	return items
}
