package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ledger-service/internal/model"
	"ledger-service/pkg/config"
)

var db *gorm.DB

// InitDB initializes the database connection, runs migrations and seeds
// the reference data the mobile client expects to find.
func InitDB(cfg *config.Config) error {
	pgConfig := postgres.Config{
		DSN:                  cfg.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	var err error
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: gormlogger.Default.LogMode(cfg.DB.LogLevel),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)

	log := zap.L()

	start := time.Now()
	log.Info("Starting database migration...")

	if err := db.AutoMigrate(
		&model.User{},
		&model.Company{},
		&model.City{},
		&model.LedgerGroup{},
		&model.Supplier{},
	); err != nil {
		log.Error("Database migration failed", zap.Error(err))
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}

	log.Info("Database migration completed successfully",
		zap.Duration("duration", time.Since(start)))

	if err := seedReferenceData(db, log); err != nil {
		return fmt.Errorf("failed to seed reference data: %w", err)
	}

	return nil
}

// GetDB returns a reference to the database instance
func GetDB() *gorm.DB {
	return db
}

// seedReferenceData inserts the city list and default ledger groups on
// an empty database, mirroring the data set the legacy deployment ships
// with. Existing rows are left alone.
func seedReferenceData(db *gorm.DB, log *zap.Logger) error {
	var cityCount int64
	if err := db.Model(&model.City{}).Count(&cityCount).Error; err != nil {
		return err
	}
	if cityCount == 0 {
		cities := make([]model.City, 0, len(cityNames))
		for id, name := range cityNames {
			cities = append(cities, model.City{CityID: id, City: name, IsActive: "Y"})
		}
		if err := db.Create(&cities).Error; err != nil {
			return err
		}
		log.Info("Seeded city reference data", zap.Int("count", len(cities)))
	}

	var groupCount int64
	if err := db.Model(&model.LedgerGroup{}).Count(&groupCount).Error; err != nil {
		return err
	}
	if groupCount == 0 {
		groups := []model.LedgerGroup{
			{LedgerGroup: "SUNDRY DEBTORS", CompID: 1},
			{LedgerGroup: "SUNDRY CREDITORS", CompID: 1},
		}
		if err := db.Create(&groups).Error; err != nil {
			return err
		}
		log.Info("Seeded default ledger groups", zap.Int("count", len(groups)))
	}

	return nil
}

// cityNames maps the stable legacy state codes to display names.
var cityNames = map[int]string{
	1:  "JAMMU & KASHMIR",
	2:  "HIMACHAL PRADESH",
	3:  "PUNJAB",
	4:  "CHANDIGARH",
	5:  "UTTARANCHAL",
	6:  "HARYANA",
	7:  "DELHI",
	8:  "RAJASTHAN",
	9:  "UTTAR PRADESH",
	10: "BIHAR",
	11: "SIKKIM",
	12: "ARUNACHAL PRADESH",
	13: "NAGALAND",
	14: "MANIPUR",
	15: "MIZORAM",
	16: "TRIPURA",
	17: "MEGHALAYA",
	18: "ASSAM",
	19: "WEST BENGAL",
	20: "JHARKHAND",
	21: "ORISSA",
	22: "CHHATTISGARH",
	23: "MADHYA PRADESH",
	24: "GUJARAT",
	25: "DAMAN & DIU",
	26: "DADRA & NAGAR HAVELI",
	27: "MAHARASHTRA",
	28: "ANDHRA PRADESH (OLD)",
	29: "KARNATAKA",
	30: "GOA",
	31: "LAKSHADWEEP",
	32: "KERALA",
	33: "TAMIL NADU",
	34: "PUDUCHERRY",
	35: "ANDAMAN & NICOBAR ISLANDS",
	36: "TELENGANA",
	37: "ANDHRA PRADESH (NEW)",
}
