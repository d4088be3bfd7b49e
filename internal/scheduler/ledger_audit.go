package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/config"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/pkg/utils"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type LedgerAuditConfig struct {
	CronSchedule string
	Enabled      bool
}

// LedgerAuditService recomputa os invariantes do ledger a partir dos eventos
// imutáveis e compara com os valores mantidos incrementalmente. Divergências
// não são corrigidas automaticamente, apenas registradas para investigação.
type LedgerAuditService struct {
	scheduler            *gocron.Scheduler
	auditRepo            repository.AuditRepository
	config               LedgerAuditConfig
	syncRunning          bool
	syncMutex            sync.Mutex
	lastSyncStartedAt    time.Time
	lastSyncCompletedAt  time.Time
	lastDiscrepancyCount int
}

func NewLedgerAuditService(
	auditRepo repository.AuditRepository,
	cfg *config.Config,
) *LedgerAuditService {
	auditConfig := LedgerAuditConfig{
		CronSchedule: cfg.LedgerAudit.CronSchedule, // Default: 4h da manhã todos os dias
		Enabled:      cfg.LedgerAudit.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": auditConfig.CronSchedule,
	}).Info("Configuração do agendador de auditoria do ledger carregada")

	return &LedgerAuditService{
		scheduler: scheduler,
		auditRepo: auditRepo,
		config:    auditConfig,
	}
}

func (s *LedgerAuditService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de auditoria do ledger desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de auditoria do ledger")

	// Agendar a auditoria
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunAudit(); err != nil {
			logrus.WithError(err).Error("Erro na auditoria do ledger")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria do ledger: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de auditoria do ledger")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *LedgerAuditService) RunAudit() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Auditoria do ledger já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando auditoria do ledger")

	campaignDiscrepancies, err := s.auditRepo.FindCampaignDiscrepancies()
	if err != nil {
		logrus.WithError(err).Error("Erro ao auditar campanhas")
		return err
	}

	advertiserDiscrepancies, err := s.auditRepo.FindAdvertiserDiscrepancies()
	if err != nil {
		logrus.WithError(err).Error("Erro ao auditar anunciantes")
		return err
	}

	discrepancies := append(campaignDiscrepancies, advertiserDiscrepancies...)
	s.lastDiscrepancyCount = len(discrepancies)

	if len(discrepancies) == 0 {
		logrus.Info("Auditoria do ledger concluída sem divergências")
		return nil
	}

	s.reportDiscrepancies(discrepancies)

	return nil
}

func (s *LedgerAuditService) reportDiscrepancies(discrepancies []*domain.LedgerDiscrepancy) {
	for _, discrepancy := range discrepancies {
		logrus.WithFields(logrus.Fields{
			"scope":    discrepancy.Scope,
			"ref_id":   discrepancy.RefID,
			"expected": discrepancy.Expected,
			"actual":   discrepancy.Actual,
			"delta":    discrepancy.Actual - discrepancy.Expected,
		}).Error("Divergência encontrada no ledger")
	}

	logrus.WithField("discrepancies", len(discrepancies)).Error("Auditoria do ledger encontrou divergências")
	logrus.Debug(utils.PrettyJson(discrepancies))
}

// TriggerManualSync inicia manualmente uma auditoria do ledger
func (s *LedgerAuditService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditoria do ledger já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando auditoria manual do ledger")
	go func() {
		if err := s.RunAudit(); err != nil {
			logrus.WithError(err).Error("Erro na auditoria manual do ledger")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *LedgerAuditService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_discrepancies":     s.lastDiscrepancyCount,
	}
}
