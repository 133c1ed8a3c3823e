package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/murmur-im/groupuser/internal/db/bunx"
	"github.com/murmur-im/groupuser/internal/repository"
	"github.com/murmur-im/groupuser/internal/resolver"
	"github.com/murmur-im/groupuser/internal/server"
	groupsvc "github.com/murmur-im/groupuser/internal/services/group"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GroupUser server",
	Long:  `Starts the HTTP/2 server with the GroupUser Connect RPC endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := bunx.NewDB(cfg.DatabaseURL, cfg.MaxDBConnections)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer bunx.Close(db)

		log.Printf("Connected to database")

		repo := repository.NewBunGroupRepository(db)
		users := resolver.New(cfg.UserServiceURL)
		svc := groupsvc.NewService(repo, users)

		h2cHandler := server.NewH2CHandler(server.RouterOptions{Service: svc})

		srv := &http.Server{
			Addr:         cfg.ServerAddr,
			Handler:      h2cHandler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		serverErrors := make(chan error, 1)
		go func() {
			log.Printf("Starting server on %s", cfg.ServerAddr)
			log.Printf("User service: %s", cfg.UserServiceURL)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			log.Printf("Received signal %v, shutting down gracefully", sig)

			ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("graceful shutdown failed: %w", err)
			}

			log.Printf("Server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
