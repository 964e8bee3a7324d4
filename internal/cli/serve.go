package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fipath/fi-calculator/internal/api"
	"github.com/fipath/fi-calculator/internal/calculation"
)

func newServeCmd(a *app) *cobra.Command {
	var origins []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics := api.NewMetrics()
			cache := calculation.NewMemoizingProjector(a.newEngine(), a.settings.CacheSize)
			cache.OnLookup = metrics.ObserveCacheLookup

			srv, err := api.NewServer(api.Options{
				Addr:           a.settings.Addr,
				Projector:      cache,
				Metrics:        metrics,
				Logger:         a.logger,
				AllowedOrigins: origins,
				Version:        Version,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			a.logger.Info("starting api", zap.String("addr", a.settings.Addr), zap.Int("cache_size", a.settings.CacheSize))
			return srv.Run(ctx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().Int("cache-size", calculation.DefaultCacheSize, "projection results kept in memory")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "allowed CORS origins (default *)")
	_ = a.v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	_ = a.v.BindPFlag("cache_size", cmd.Flags().Lookup("cache-size"))
	return cmd
}
