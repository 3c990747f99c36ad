package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartframe/internal/server"
	"github.com/matzehuels/chartframe/pkg/buildinfo"
	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

const redisKeyPrefix = appName + ":"

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		timeout  time.Duration
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve layouts and renders over HTTP",
		Long: `Serve starts an HTTP server with the routes

  GET  /healthz
  POST /v1/layout
  POST /v1/render/{format}

Rendered artifacts are cached in Redis when --redis-url (or CHARTFRAME_REDIS_URL)
is set, and in the local file cache otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			var (
				store cache.Cache
				keyer cache.Keyer
				err   error
			)
			switch {
			case noCache:
				store = cache.NewNullCache()
			case redisURL != "":
				store, err = cache.NewRedisCache(ctx, redisURL)
				if err != nil {
					return err
				}
				keyer = cache.NewScopedKeyer(nil, redisKeyPrefix)
				logger.Info("using redis cache", "prefix", redisKeyPrefix)
			default:
				store, err = newCache(false)
				if err != nil {
					return err
				}
			}
			runner := pipeline.NewRunner(store, keyer, logger)
			defer runner.Close()

			logger.Info("starting chartframe server", "version", buildinfo.Short())
			srv := server.New(runner, logger, server.Config{Addr: addr, Timeout: timeout})
			return srv.ListenAndServe(ctx)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	fs.StringVar(&redisURL, "redis-url", os.Getenv("CHARTFRAME_REDIS_URL"), "redis://host:port/db for a shared artifact cache")
	fs.DurationVar(&timeout, "timeout", server.DefaultTimeout, "per-request timeout")
	fs.BoolVar(&noCache, "no-cache", false, "disable artifact caching")
	return cmd
}
