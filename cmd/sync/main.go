package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/database/postgres"
	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/integrator/meta/metaclient"
	"github.com/ScuderiaAirlines/meta-analytics-dash/infrastructure/repository"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/api"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/config"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/scheduler"
	"github.com/ScuderiaAirlines/meta-analytics-dash/internal/usecases/syncing"
)

func main() {
	configureLogger()

	rootCmd := &cobra.Command{
		Use:   "meta-analytics-dash",
		Short: "Sincroniza campanhas e métricas diárias do Meta Ads para o PostgreSQL",
	}

	rootCmd.AddCommand(runCmd(), serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCmd executa uma sincronização única e termina com código de saída
// apropriado para uso em cron externo ou CI.
func runCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Executa uma sincronização única e termina",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			cfg, deps, cleanup, err := bootstrap(ctx)
			if err != nil {
				fmt.Printf("❌ Falha na inicialização: %v\n", err)
				return err
			}
			defer cleanup()

			if days <= 0 {
				days = cfg.Sync.DaysToSync
			}

			result, err := deps.service.RunSync(days)
			if err != nil {
				fmt.Printf("❌ Sincronização falhou: %v\n", err)
				return err
			}

			fmt.Println("✅ Sincronização concluída com sucesso")
			fmt.Printf("   Período:    %s a %s\n", result.StartDate, result.EndDate)
			fmt.Printf("   Campanhas:  %d\n", result.Campaigns)
			fmt.Printf("   AdSets:     %d\n", result.AdSets)
			fmt.Printf("   Anúncios:   %d\n", result.Ads)
			fmt.Printf("   Pulados:    %d\n", len(result.Skipped))
			fmt.Printf("   Duração:    %.2fs\n", result.DurationSeconds)

			startDate, _ := time.Parse(time.DateOnly, result.StartDate)
			endDate, _ := time.Parse(time.DateOnly, result.EndDate)
			if total, err := deps.metricRepo.CountByDateRange(startDate, endDate); err == nil {
				fmt.Printf("   Métricas:   %d linhas na janela\n", total)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "janela retroativa em dias (padrão: DAYS_TO_SYNC)")
	cmd.SilenceUsage = true

	return cmd
}

// serveCmd sobe o agendador cron e a API administrativa
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "serve",
		Short:        "Inicia o agendador de sincronização e a API administrativa",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			cfg, deps, cleanup, err := bootstrap(ctx)
			if err != nil {
				fmt.Printf("❌ Falha na inicialização: %v\n", err)
				return err
			}
			defer cleanup()

			metaSyncService := scheduler.NewMetaSyncService(deps.service, cfg)

			if err := metaSyncService.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização do Meta")
			} else {
				logrus.Info("Agendador de sincronização do Meta iniciado com sucesso")
			}

			server, err := api.New(cfg, metaSyncService)
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}

// dependencies agrupa os serviços montados pelo bootstrap
type dependencies struct {
	service    *syncing.Service
	metricRepo repository.DailyMetricRepository
}

// bootstrap carrega a configuração, abre a conexão com o banco e monta o
// serviço de sincronização com todas as dependências.
func bootstrap(ctx context.Context) (*config.Config, *dependencies, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, err
	}

	pgConn := pgconn(ctx, cfg.Database)
	cleanup := func() {
		if err := pgConn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar conexão com PostgreSQL")
		}
	}

	campaignRepo := repository.NewCampaignRepository(pgConn)
	adSetRepo := repository.NewAdSetRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	metricRepo := repository.NewDailyMetricRepository(pgConn)

	tokenManager := metaclient.NewTokenManager(cfg)
	metaClient := metaclient.NewClient(cfg, tokenManager)

	service := syncing.NewService(cfg, metaClient, campaignRepo, adSetRepo, adRepo, metricRepo)

	return cfg, &dependencies{service: service, metricRepo: metricRepo}, cleanup, nil
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
