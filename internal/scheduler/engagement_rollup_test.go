package scheduler

import (
	"testing"
	"time"

	postgresmocks "github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/database/postgres/mocks"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/infrastructure/repository/mocks"
	"github.com/The-Social-Proof-Foundation/mys-social-sub003/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEngagementRollupService_rollupWithDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := postgresmocks.NewMockConn(ctrl)
	mockEngagementRepo := mocks.NewMockEngagementRepository(ctrl)
	mockStatsRepo := mocks.NewMockStatsRepository(ctrl)

	service := &EngagementRollupService{
		db:             mockDB,
		engagementRepo: mockEngagementRepo,
		statsRepo:      mockStatsRepo,
		config: EngagementRollupConfig{
			LookbackDays: 2,
		},
	}

	// Data de referência do teste: 16 de janeiro. A janela retroativa com
	// lookback de 2 dias cobre de 14 de janeiro até o fim do dia 16
	processingDate := time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC)
	windowFrom := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)
	windowTo := time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, err error)
	}{
		{
			name: "Janela retroativa cobre lookback mais o dia corrente parcial",
			setup: func() {
				stats := []*domain.CampaignDailyStat{
					{
						CampaignID:  "CMP001",
						Day:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
						Impressions: 120,
						Clicks:      8,
						Spend:       800,
					},
					{
						CampaignID:  "CMP001",
						Day:         time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
						Impressions: 40,
						Clicks:      3,
						Spend:       300,
					},
				}

				mockEngagementRepo.EXPECT().
					AggregateDaily(windowFrom, windowTo).
					Return(stats, nil)

				mockStatsRepo.EXPECT().
					UpsertDailyStats(gomock.Any(), stats).
					Return(nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Janela sem eventos não grava nada",
			setup: func() {
				mockEngagementRepo.EXPECT().
					AggregateDaily(windowFrom, windowTo).
					Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Falha na agregação é propagada",
			setup: func() {
				mockEngagementRepo.EXPECT().
					AggregateDaily(windowFrom, windowTo).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
		{
			name: "Falha no upsert é propagada",
			setup: func() {
				stats := []*domain.CampaignDailyStat{
					{CampaignID: "CMP001", Day: windowFrom, Impressions: 10},
				}

				mockEngagementRepo.EXPECT().
					AggregateDaily(windowFrom, windowTo).
					Return(stats, nil)

				mockStatsRepo.EXPECT().
					UpsertDailyStats(gomock.Any(), stats).
					Return(assert.AnError)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.rollupWithDate(processingDate)

			tt.validate(t, err)
		})
	}
}

func TestEngagementRollupService_GetStatus(t *testing.T) {
	service := &EngagementRollupService{
		config: EngagementRollupConfig{
			CronSchedule: "0 3 * * *",
			LookbackDays: 2,
			Enabled:      true,
		},
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, 2, status["lookback_days"])
	assert.True(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.True(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestTruncateToDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Horário no meio do dia é zerado",
			input:    time.Date(2024, 1, 15, 14, 30, 45, 123, time.UTC),
			expected: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Meia-noite permanece meia-noite",
			input:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fuso original da data é preservado",
			input:    time.Date(2024, 12, 31, 23, 59, 59, 999, time.Local),
			expected: time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateToDay(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
