// Package scheduler contém os serviços de agendamento do ledger
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type EngagementRollupConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// EngagementRollupService consolida os eventos imutáveis de engajamento em
// linhas diárias por campanha. A janela retroativa recaptura eventos que
// chegaram depois da última execução; o upsert torna a reexecução idempotente.
type EngagementRollupService struct {
	scheduler           *gocron.Scheduler
	db                  postgres.Conn
	engagementRepo      repository.EngagementRepository
	statsRepo           repository.StatsRepository
	config              EngagementRollupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewEngagementRollupService(
	db postgres.Conn,
	engagementRepo repository.EngagementRepository,
	statsRepo repository.StatsRepository,
	cfg *config.Config,
) *EngagementRollupService {
	rollupConfig := EngagementRollupConfig{
		CronSchedule: cfg.EngagementRollup.CronSchedule, // Default: 3h da manhã todos os dias
		LookbackDays: cfg.EngagementRollup.LookbackDays, // Default: 2 dias
		Enabled:      cfg.EngagementRollup.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": rollupConfig.CronSchedule,
		"lookback_days": rollupConfig.LookbackDays,
	}).Info("Configuração do agendador de consolidação de engajamentos carregada")

	return &EngagementRollupService{
		scheduler:      scheduler,
		db:             db,
		engagementRepo: engagementRepo,
		statsRepo:      statsRepo,
		config:         rollupConfig,
	}
}

func (s *EngagementRollupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de consolidação de engajamentos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de consolidação de engajamentos")

	// Agendar a consolidação diária
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRollup(); err != nil {
			logrus.WithError(err).Error("Erro na consolidação de engajamentos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de engajamentos: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de consolidação de engajamentos")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *EngagementRollupService) RunRollup() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Consolidação de engajamentos já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	return s.rollupWithDate(time.Now())
}

// rollupWithDate consolida a janela retroativa que termina no dia seguinte à
// data informada (o dia corrente entra parcial e é regravado na próxima volta)
func (s *EngagementRollupService) rollupWithDate(processingDate time.Time) error {
	to := truncateToDay(processingDate).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -(s.config.LookbackDays + 1))

	logrus.WithFields(logrus.Fields{
		"from": from.Format(time.DateOnly),
		"to":   to.Format(time.DateOnly),
	}).Info("Iniciando consolidação de engajamentos")

	stats, err := s.engagementRepo.AggregateDaily(from, to)
	if err != nil {
		logrus.WithError(err).Error("Erro ao agregar engajamentos da janela")
		return err
	}

	if len(stats) == 0 {
		logrus.Info("Nenhum engajamento na janela de consolidação")
		return nil
	}

	if err := s.statsRepo.UpsertDailyStats(s.db, stats); err != nil {
		logrus.WithError(err).Error("Erro ao gravar linhas consolidadas")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"rows": len(stats),
	}).Info("Consolidação de engajamentos concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma consolidação de engajamentos
func (s *EngagementRollupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de engajamentos já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de engajamentos")
	go func() {
		if err := s.RunRollup(); err != nil {
			logrus.WithError(err).Error("Erro na consolidação manual de engajamentos")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *EngagementRollupService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"lookback_days":          s.config.LookbackDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

func truncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}
