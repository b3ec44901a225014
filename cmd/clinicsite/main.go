package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mtlprog/clinicsite/internal/config"
	"github.com/mtlprog/clinicsite/internal/domain"
	"github.com/mtlprog/clinicsite/internal/export"
	"github.com/mtlprog/clinicsite/internal/handler"
	"github.com/mtlprog/clinicsite/internal/logger"
	"github.com/mtlprog/clinicsite/internal/metrics"
	"github.com/mtlprog/clinicsite/internal/render"
	"github.com/mtlprog/clinicsite/internal/service"
)

const metricsNamespace = "clinicsite"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("application error")
		os.Exit(1)
	}
}

// layoutFlag is declared on the app and on every command that renders, so
// it is accepted before or after the command name.
func layoutFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "layout",
		Value:   config.DefaultLayout,
		Usage:   "Page layout (multi, single)",
		EnvVars: []string{"SITE_LAYOUT"},
	}
}

// serveFlags are shared by the serve command and the default action.
func serveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Value:   config.DefaultPort,
			Usage:   "HTTP server port",
			EnvVars: []string{"PORT"},
		},
		&cli.IntFlag{
			Name:    "rate-limit",
			Value:   config.DefaultRateLimit,
			Usage:   "Requests per minute allowed per client IP (0 disables)",
			EnvVars: []string{"RATE_LIMIT"},
		},
		layoutFlag(),
	}
}

func newApp() *cli.App {
	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"e"},
			Usage:   "Load clinic settings from a .env file",
			EnvVars: []string{"ENV_FILE"},
		},
	}

	return &cli.App{
		Name:  "clinicsite",
		Usage: "Marketing website for a healthcare clinic",
		Flags: append(globalFlags, serveFlags()...),
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return config.LoadEnvFile(c.String("env-file"))
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the web server",
				Flags:  serveFlags(),
				Action: runServe,
			},
			{
				Name:  "export",
				Usage: "Write the rendered site to a directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Value:   config.DefaultExportDir,
						Usage:   "Output directory",
						EnvVars: []string{"EXPORT_DIR"},
					},
					layoutFlag(),
				},
				Action: runExport,
			},
			{
				Name:   "check-config",
				Usage:  "Validate the clinic settings and print them",
				Action: runCheckConfig,
			},
		},
		Action: runServe,
	}
}

// newSite loads the clinic settings and builds the site service.
// A missing required setting stops the command before anything is served.
func newSite(c *cli.Context, m *metrics.Metrics) (*service.SiteService, error) {
	clinic, err := config.LoadClinic()
	if err != nil {
		return nil, fmt.Errorf("load clinic config: %w", err)
	}

	layoutName := c.String("layout")
	if layoutName == "" {
		layoutName = config.DefaultLayout
	}
	layout, err := domain.ParseLayout(layoutName)
	if err != nil {
		return nil, err
	}

	return service.NewSiteService(clinic, render.Options{
		Layout: layout,
		Year:   time.Now().Year(),
	}, m)
}

func runServe(c *cli.Context) error {
	ctx := log.Logger.WithContext(c.Context)

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}
	rateLimit := c.Int("rate-limit")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry, metricsNamespace)

	site, err := newSite(c, m)
	if err != nil {
		return err
	}

	if err := site.Warm(ctx); err != nil {
		return fmt.Errorf("render pages: %w", err)
	}

	h := handler.New(site, m, registry, handler.Options{
		RateLimit: rateLimit,
	})

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           h.Routes(),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().
			Str("server_addr", "http://localhost:"+port).
			Str("layout", string(site.Layout())).
			Str("clinic", site.Clinic().Name).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		log.Info().Msg("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info().Msg("server stopped")
	return nil
}

func runExport(c *cli.Context) error {
	ctx := log.Logger.WithContext(c.Context)

	site, err := newSite(c, nil)
	if err != nil {
		return err
	}

	res, err := export.Site(ctx, site, c.String("out"))
	if err != nil {
		return fmt.Errorf("export site: %w", err)
	}

	for _, f := range res.Files {
		log.Debug().Str("file", f).Msg("exported")
	}
	return nil
}

func runCheckConfig(c *cli.Context) error {
	clinic, err := config.LoadClinic()
	if err != nil {
		return fmt.Errorf("load clinic config: %w", err)
	}

	log.Info().
		Str("clinic_name", clinic.Name).
		Str("practitioner", clinic.PractitionerName).
		Str("phone", clinic.Phone).
		Str("address", clinic.Address).
		Str("booking_url", clinic.BookingURL).
		Str("email", clinic.Email).
		Msg("clinic configuration is valid")

	return nil
}
