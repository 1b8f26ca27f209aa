package database

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"altroway_backend/internals/configs"
	cmsModel "altroway_backend/internals/features/cms/content/model"
	documentModel "altroway_backend/internals/features/documents/model"
	notificationModel "altroway_backend/internals/features/home/notifications/model"
	applicationModel "altroway_backend/internals/features/jobs/applications/model"
	jobModel "altroway_backend/internals/features/jobs/jobs/model"
	savedJobModel "altroway_backend/internals/features/jobs/saved_jobs/model"
	authModel "altroway_backend/internals/features/users/auth/model"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	"altroway_backend/internals/helpers/logger"
)

var DB *gorm.DB

// ConnectDB opens the Supabase Postgres pool. PreferSimpleProtocol keeps
// it compatible with PgBouncer transaction pooling.
func ConnectDB() {
	log := logger.L()
	log.Info("connecting to PostgreSQL")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  configs.PostgresDSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(log),
		TranslateError: false,
	})
	if err != nil {
		log.Fatal("database connection failed", "err", err)
	}
	DB = db
	log.Info("database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.L().Warn("pool tune failed", "err", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			logger.L().Warn("warm-up ping failed", "err", err)
			return
		}
		// most frequent public query: active job listing
		var n int64
		_ = DB.WithContext(ctx).Model(&jobModel.JobModel{}).Where("is_active = ?", true).Count(&n).Error
	}()
}

func ping(ctx context.Context) error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Models in dependency order (referenced tables first).
func Models() []any {
	return []any{
		&authModel.AuthUserModel{},
		&authModel.TokenBlacklist{},
		&profileModel.UserProfileModel{},
		&jobModel.JobModel{},
		&documentModel.DocumentModel{},
		&applicationModel.JobApplicationModel{},
		&savedJobModel.SavedJobModel{},
		&notificationModel.NotificationModel{},
		&cmsModel.CMSContentModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
