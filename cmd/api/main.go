package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/api"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/config"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/scheduler"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/advertising"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/authenticating"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/metering"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/usecases/treasury"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/log"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível e o formato de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	advertiserRepo := repository.NewAdvertiserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	engagementRepo := repository.NewEngagementRepository(pgConn)
	walletRepo := repository.NewWalletRepository(pgConn)
	feePoolRepo := repository.NewFeePoolRepository(pgConn)
	statsRepo := repository.NewStatsRepository(pgConn)
	auditRepo := repository.NewAuditRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	advertisingService := advertising.NewService(
		pgConn,
		advertiserRepo,
		campaignRepo,
		walletRepo,
		feePoolRepo,
		cfg,
	)

	meteringService := metering.NewService(
		pgConn,
		campaignRepo,
		engagementRepo,
		advertiserRepo,
		statsRepo,
	)

	treasuryService := treasury.NewService(pgConn, walletRepo, feePoolRepo)

	// Inicializa os agendadores de rotinas de background
	engagementRollupService := scheduler.NewEngagementRollupService(
		pgConn,
		engagementRepo,
		statsRepo,
		cfg,
	)

	ledgerAuditService := scheduler.NewLedgerAuditService(auditRepo, cfg)

	// Inicia os agendadores em background
	if err := engagementRollupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de engajamentos")
	} else {
		logrus.Info("Agendador de consolidação de engajamentos iniciado com sucesso")
	}

	if err := ledgerAuditService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria do ledger")
	} else {
		logrus.Info("Agendador de auditoria do ledger iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		advertisingService,
		meteringService,
		treasuryService,
		authenticator,
		engagementRollupService,
		ledgerAuditService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

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
