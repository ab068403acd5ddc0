package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "aromaforge/internal/log"
	"aromaforge/models"
)

var instance atomic.Int64

// New returns an in-memory sqlite database seeded with representative atelier data.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:aromaforge-mock-%d?mode=memory&cache=shared", instance.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Blend{},
		&models.BlendIngredient{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte("atelier"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:          "Avery Studio",
		Email:         "avery@aromaforge.app",
		PasswordHash:  string(password),
		Concentration: models.ConcentrationExtrait,
		Intensity:     models.IntensityTrail,
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	nocturne := models.Blend{
		Key:              "aurum-nocturne",
		Name:             "Aurum Nocturne",
		Version:          1,
		IsLatest:         false,
		Dominant:         "oriental",
		Secondary:        "woody",
		Accent:           "spicy",
		Identifier:       "AN-001",
		Concentration:    models.ConcentrationExtrait,
		Occasion:         "evening",
		Intensity:        models.IntensityTrail,
		SteepingCategory: "slow-evolving",
		SteepingMinDays:  14,
		SteepingMaxDays:  42,
		Notes:            "Resinous amber core balanced with a smoked cedar spine.",
		OwnerID:          user.ID,
		Ingredients: []models.BlendIngredient{
			{Family: "oriental", Layer: "base", IngredientName: "Oud Assam", PercentLow: 4.4, PercentHigh: 8.1, Supplier: "Nusantara Naturals"},
			{Family: "woody", Layer: "heart", IngredientName: "Cedarwood Atlas", PercentLow: 2.1, PercentHigh: 3.9, Supplier: "Atlas Botanics"},
			{Family: "spicy", Layer: "top", IngredientName: "Pink Pepper CO2", PercentLow: 0.7, PercentHigh: 1.3, Supplier: "Andes Aromatics"},
		},
	}
	if err := db.WithContext(ctx).Create(&nocturne).Error; err != nil {
		return err
	}

	revision := models.Blend{
		Key:              "aurum-nocturne",
		Name:             "Aurum Nocturne",
		Version:          2,
		IsLatest:         true,
		ParentBlendID:    &nocturne.ID,
		Dominant:         "oriental",
		Secondary:        "woody",
		Accent:           "incense",
		Identifier:       "AN-002",
		Concentration:    models.ConcentrationExtrait,
		Occasion:         "evening",
		Intensity:        models.IntensityTrail,
		SteepingCategory: "slow-evolving",
		SteepingMinDays:  14,
		SteepingMaxDays:  42,
		Notes:            "Second pass swapping the pepper accent for olibanum lift.",
		OwnerID:          user.ID,
		Ingredients: []models.BlendIngredient{
			{Family: "oriental", Layer: "base", IngredientName: "Oud Assam", PercentLow: 4.4, PercentHigh: 8.1, Supplier: "Nusantara Naturals"},
			{Family: "woody", Layer: "heart", IngredientName: "Cedarwood Atlas", PercentLow: 2.1, PercentHigh: 3.9, Supplier: "Atlas Botanics"},
			{Family: "incense", Layer: "top", IngredientName: "Olibanum Oil", PercentLow: 0.6, PercentHigh: 1.1, Supplier: "Dhofar Resins"},
		},
	}
	if err := db.WithContext(ctx).Create(&revision).Error; err != nil {
		return err
	}

	lumen := models.Blend{
		Key:              "lumen-celeste",
		Name:             "Lumen Celeste",
		Version:          1,
		IsLatest:         true,
		Dominant:         "fresh",
		Secondary:        "citrus",
		Accent:           "musk",
		Identifier:       "LC-001",
		Concentration:    models.ConcentrationEauDeToilette,
		Occasion:         "office",
		Intensity:        models.IntensitySkin,
		SteepingCategory: "fast-stable",
		SteepingMinDays:  1,
		SteepingMaxDays:  3,
		Notes:            "Radiant lavender halo with cool musk trails for longevity.",
		OwnerID:          user.ID,
		Ingredients: []models.BlendIngredient{
			{Family: "fresh", Layer: "top", IngredientName: "Lavender Barreme", PercentLow: 2.8, PercentHigh: 5.2, Supplier: "Provence Fields"},
			{Family: "citrus", Layer: "top", IngredientName: "Bergamot Calabria", PercentLow: 2.4, PercentHigh: 4.5, Supplier: "Reggio Estates"},
			{Family: "musk", Layer: "base", IngredientName: "Galaxolide", PercentLow: 1.7, PercentHigh: 3.1, Supplier: "IFF"},
		},
	}
	if err := db.WithContext(ctx).Create(&lumen).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
