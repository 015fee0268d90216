package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ganot/landlord/internal/jobs"
	"github.com/ganot/landlord/internal/mcp"
	"github.com/ganot/landlord/internal/transport"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and MCP over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(false)
			if err != nil {
				return err
			}
			defer rt.Close()

			mcpServer := mcp.NewServer(mcp.Config{Service: rt.service, Logger: rt.logger})
			handler := transport.NewServer(rt.service, transport.Options{
				Metrics:     rt.metrics,
				MCP:         mcp.NewHTTPHandler(mcpServer),
				CORSOrigins: rt.cfg.Server.CORSOrigins,
				Logger:      rt.logger,
			})

			scheduler := jobs.NewScheduler(rt.logger)
			if spec := rt.cfg.Jobs.SummarySchedule; spec != "" {
				job := jobs.NewSummaryJob(rt.store, rt.metrics, rt.logger)
				job.Run()
				if err := scheduler.Schedule("dashboard-summary", spec, job); err != nil {
					return err
				}
			}
			scheduler.Start()

			addr := fmt.Sprintf("%s:%d", rt.cfg.Server.Host, rt.cfg.Server.Port)
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				rt.logger.Info("server listening", "addr", addr, "suggestions", rt.service.SuggestionsEnabled())
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					rt.logger.Error("server error", "error", err)
				}
			}()

			waitForShutdown(rt.logger, httpServer, scheduler)
			return nil
		},
	}
}

func mcpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve MCP over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer rt.Close()

			rt.logger.Info("starting stdio transport")
			mcpServer := mcp.NewServer(mcp.Config{Service: rt.service, Logger: rt.logger})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Run blocks until stdin closes or ctx is canceled.
			if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				return fmt.Errorf("stdio server: %w", err)
			}
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard for the configured seed as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, _ := cmd.Flags().GetString("filter")

			rt, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer rt.Close()

			return printJSON(rt.service.Dashboard(filter))
		},
	}
	cmd.Flags().String("filter", "all", "Apartment filter: all, occupied, vacant, overdue, maintenance")
	return cmd
}

func calendarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print a month grid as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetString("month")
			nav, _ := cmd.Flags().GetString("nav")

			rt, err := bootstrap(true)
			if err != nil {
				return err
			}
			defer rt.Close()

			grid, err := rt.service.CalendarMonth(month, nav)
			if err != nil {
				return err
			}
			return printJSON(grid)
		},
	}
	cmd.Flags().String("month", "", "Month as YYYY-MM (default current month)")
	cmd.Flags().String("nav", "", "Move one month: prev or next")
	return cmd
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func waitForShutdown(logger *slog.Logger, server *http.Server, scheduler *jobs.Scheduler) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	if err := scheduler.Stop(ctx); err != nil {
		logger.Error("scheduler stop error", "error", err)
	}
}
