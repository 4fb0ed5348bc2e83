package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/presetly/internal/bootstrap"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
	"github.com/alexisbeaulieu97/presetly/internal/web"
)

type serveOptions struct {
	addr string
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the theme demo application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8799", "Listen address")

	return cmd
}

func runServe(cmd *cobra.Command, rootFlags *rootFlags, opts *serveOptions) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("serve", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	prov, doc := app.newProvider()
	defer prov.Close()

	var fallback *preset.Preset
	if id := app.cfg.Engine.DefaultPreset; id != "" {
		if p, ok := app.registry.Lookup(id); ok {
			fallback = &p
		}
	}

	handler, err := web.NewHandler(prov, app.registry, doc, bootstrap.Options{
		ModeKey:       app.cfg.Engine.ModeKey,
		PresetKey:     app.cfg.Engine.PresetKey,
		DefaultMode:   mode.Mode(app.cfg.Engine.DefaultMode),
		DefaultPreset: fallback,
	}, app.log)
	if err != nil {
		return newCommandError("serve", "building demo handler", err, "This is a bug; please report it.")
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	web.MountRoutes(router, handler)

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	fmt.Fprintf(cmd.OutOrStdout(), "serving on %s\n", opts.addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return newCommandError("serve", "running http server", err, "Check the address is free and you have permission to bind it.")
	}
	return nil
}
