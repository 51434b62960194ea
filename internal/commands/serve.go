package commands

import (
	"github.com/spf13/cobra"

	"github.com/quillbooks/statement-parser/internal/api"
	"github.com/quillbooks/statement-parser/internal/classifier"
	"github.com/quillbooks/statement-parser/internal/config"
	"github.com/quillbooks/statement-parser/internal/pipeline"
	"github.com/quillbooks/statement-parser/internal/store"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the statement-parsing HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			h := &api.Handler{
				Config:   cfg,
				Pipeline: pipeline.New(classifier.Default()),
				Store:    store.NewMemory(),
			}
			app := api.NewApp(h)
			return app.Listen(cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config, default :8080)")

	return cmd
}
