package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/ersonp/vgame-horizon/internal/infrastructure/httpapi"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long:  "Serves the release listing, search, detail and history endpoints until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDepsAtLevel(cmd.Context(), zapcore.InfoLevel, func(deps *Deps) error {
				if addr == "" {
					addr = deps.Config.Server.Addr
				}
				srv := httpapi.NewServer(addr, httpapi.Deps{
					Releases: deps.Releases,
					Details:  deps.Details,
					History:  deps.History,
					Services: deps.Services,
				}, deps.Logger.Named("http"))
				return srv.Run(cmd.Context())
			})
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config, :8000)")

	return cmd
}
