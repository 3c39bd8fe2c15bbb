package main

import (
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/swaggo/swag"

	"github.com/mwhitten/apiforge/internal/config"
	"github.com/mwhitten/apiforge/internal/db"
	"github.com/mwhitten/apiforge/internal/handler"
	"github.com/mwhitten/apiforge/internal/openapi"
	"github.com/mwhitten/apiforge/internal/store"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver); err != nil {
				return err
			}

			generator := openapi.NewGenerator(
				openapi.SourceFunc(func() (string, error) { return swag.ReadDoc() }),
				openapi.GeneratorConfig{
					MainTitle:  cfg.Docs.MainTitle,
					DemoTitle:  cfg.Docs.DemoTitle,
					DemoPrefix: cfg.Docs.DemoPrefix,
					CacheTTL:   cfg.Docs.CacheTTL,
				},
			)

			router := handler.NewRouter(handler.Deps{
				Generator: generator,
				ItemStore: store.NewItemStore(database),
			})

			slog.Info("listening", "addr", cfg.HTTP.Addr)
			return http.ListenAndServe(cfg.HTTP.Addr, router)
		},
	}
}
