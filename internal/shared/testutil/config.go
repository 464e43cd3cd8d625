package testutil

import (
	"time"

	"github.com/hanbit-mall/csv-etl/internal/config"
)

// NewTestConfig creates a test configuration rooted at csvDir.
// This removes the need for environment variables during testing.
func NewTestConfig(csvDir string) *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name: "mall-csv-etl-test",
			Env:  "test",
		},
		Database: config.DatabaseConfig{
			Driver:          "sqlite",
			Path:            ":memory:",
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
		},
		ETL: config.ETLConfig{
			CSVDir:              csvDir,
			ProductFile:         "상품목록.csv",
			MemberFilePattern:   "회원목록_%d년.csv",
			PurchaseFilePattern: "구매이력_%d년.csv",
			YearFrom:            2019,
			YearTo:              2023,
			HashPasswords:       false,
		},
	}
}
