package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/SundayYogurt/social_user_service/internal/api"
	"github.com/spf13/cobra"
)

var (
	grpcAddr string
	httpAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gRPC server, health endpoints and event consumer",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		if grpcAddr != "" {
			cfg.GRPCAddr = grpcAddr
		}
		if httpAddr != "" {
			cfg.HTTPAddr = httpAddr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.StartServer(ctx, cfg, log)
	},
}

func init() {
	serveCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address (overrides GRPC_ADDR)")
	serveCmd.Flags().StringVar(&httpAddr, "http-addr", "", "health endpoint listen address (overrides HTTP_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
