package database

import (
	"github.com/ryantechlabs/social-kanban/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// defaultPlatforms is inserted once, on the first run against an empty database.
var defaultPlatforms = []models.Platform{
	{ID: "x", Name: "X / Twitter", Icon: "\U0001D54F", Color: "#1da1f2", Enabled: true},
	{ID: "instagram", Name: "Instagram", Icon: "📸", Color: "#e1306c", Enabled: true},
	{ID: "youtube", Name: "YouTube", Icon: "▶️", Color: "#ff0000", Enabled: true},
	{ID: "tiktok", Name: "TikTok", Icon: "🎵", Color: "#00f2ea", Enabled: true},
	{ID: "substack-ai", Name: "SubStack AInsights", Icon: "📰", Color: "#ff6719", Enabled: true},
	{ID: "substack-rtl", Name: "SubStack RyanTechLabs", Icon: "📰", Color: "#ff6719", Enabled: true},
	{ID: "medium", Name: "Medium", Icon: "📝", Color: "#00ab6c", Enabled: true},
}

func Init(dbPath string) *gorm.DB {
	dbFile := sqlite.Open(dbPath)
	db, err := gorm.Open(dbFile, &gorm.Config{})
	if err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&models.Card{}, &models.Platform{}); err != nil {
		zap.L().Fatal("Failed to migrate database", zap.Error(err))
	}

	if err := seedPlatforms(db); err != nil {
		zap.L().Fatal("Failed to seed platforms", zap.Error(err))
	}

	zap.L().Info("Database initialised and migrated successfully")

	return db
}

// seedPlatforms populates the platform list if the table is empty. The
// check-then-insert is not race-safe, which is fine for a single-process
// startup path.
func seedPlatforms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Platform{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&defaultPlatforms).Error; err != nil {
		return err
	}
	zap.L().Info("Seeded default platforms", zap.Int("count", len(defaultPlatforms)))
	return nil
}
