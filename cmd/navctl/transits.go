package main

import (
	"context"
	"fmt"
	"time"

	"github.com/navigation-microservice/internal/config"
	"github.com/navigation-microservice/internal/pkg/logger"
	"github.com/navigation-microservice/internal/repository/postgres"
	"github.com/navigation-microservice/internal/usecase"
	"github.com/navigation-microservice/internal/worker/transit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTransitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transits",
		Short: "Transit maintenance",
	}

	var staleAfter time.Duration
	sweep := &cobra.Command{
		Use:   "sweep",
		Short: "Cancel transits stuck in search once, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if staleAfter <= 0 {
				staleAfter = cfg.Worker.StaleTransitAfter
			}

			log, err := logger.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := postgres.New(&cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			// события не публикуются: разовый запуск оператором
			transitUC := usecase.NewTransitUseCase(
				postgres.NewTransitRepository(db),
				postgres.NewWheelchairRepository(db),
				usecase.NewNoopEventPublisher(),
				log,
			)

			sweeper := transit.NewSweeperWorker(transitUC, cfg.Worker.SweepInterval, staleAfter, log)

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			canceled, err := sweeper.Sweep(ctx)
			if err != nil {
				log.Error("Sweep failed", zap.Error(err))
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "canceled %d stale transits\n", canceled)
			return nil
		},
	}
	sweep.Flags().DurationVar(&staleAfter, "stale-after", 0, "Age after which a transit in search is canceled (default WORKER_STALE_TRANSIT_AFTER)")

	cmd.AddCommand(sweep)
	return cmd
}
