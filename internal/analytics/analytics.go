package analytics

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zkortam/tritontory-sub002/internal/models"
	"github.com/zkortam/tritontory-sub002/pkg/config"
	"github.com/zkortam/tritontory-sub002/pkg/logging"
)

// zapWriter adapts zap.Logger to logger.Writer interface
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Printf(format string, args ...interface{}) {
	w.logger.Sugar().Infof(format, args...)
}

// Service records and aggregates page/content events in Postgres.
// All methods are nil-receiver safe; a nil service (analytics disabled)
// silently drops writes and returns empty reads.
type Service struct {
	db *gorm.DB
}

// New opens the analytics database. Returns (nil, nil) when analytics is
// disabled by configuration.
func New(cfg *config.PostgresConfig, logLevel string) (*Service, error) {
	if !cfg.Enabled {
		logging.GetLogger().Info("Analytics disabled")
		return nil, nil
	}

	var gormLogLevel logger.LogLevel
	switch logLevel {
	case "DEBUG", "debug":
		gormLogLevel = logger.Info
	case "WARN", "warn", "WARNING", "warning":
		gormLogLevel = logger.Error
	case "ERROR", "error":
		gormLogLevel = logger.Silent
	default:
		gormLogLevel = logger.Warn
	}

	gormLogger := logger.New(
		&zapWriter{logger: logging.GetLogger()},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to analytics database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping analytics database: %w", err)
	}

	if err := db.AutoMigrate(&models.AnalyticsEvent{}); err != nil {
		return nil, fmt.Errorf("failed to migrate analytics schema: %w", err)
	}

	logging.GetLogger().Info("Analytics database connection established")

	return &Service{db: db}, nil
}

// Close closes the analytics database connection
func (s *Service) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record stores one event. Dropped silently when analytics is disabled.
func (s *Service) Record(ctx context.Context, event *models.AnalyticsEvent) error {
	if s == nil || s.db == nil {
		return nil
	}
	if event.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(event).Error
}

// TopContent returns the most-viewed content records since the cutoff.
func (s *Service) TopContent(ctx context.Context, since time.Time, limit int) ([]models.ContentCount, error) {
	if s == nil || s.db == nil {
		return []models.ContentCount{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	var counts []models.ContentCount
	err := s.db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("content_type, content_id, count(*) as views").
		Where("name = ? AND occurred_at >= ? AND content_id <> ''", "page_view", since).
		Group("content_type, content_id").
		Order("views DESC").
		Limit(limit).
		Find(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate views: %w", err)
	}
	return counts, nil
}

// Health checks analytics database health
func (s *Service) Health(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
