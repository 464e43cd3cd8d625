package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	ETL      ETLConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type DatabaseConfig struct {
	Driver          string // sqlite (임베디드 기본값) 또는 oracle
	Path            string // sqlite 데이터베이스 파일 경로
	Host            string
	Port            int
	Service         string
	User            string
	Password        string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// ETLConfig enumerates the fixed batch inputs: the CSV directory, the
// per-loader file name patterns and the year range the rosters cover.
type ETLConfig struct {
	CSVDir              string
	ProductFile         string
	MemberFilePattern   string // %d 자리에 연도가 들어간다
	PurchaseFilePattern string
	YearFrom            int
	YearTo              int
	HashPasswords       bool // true: 회원 비밀번호를 bcrypt 해시 후 적재
}

func Load(env string) (*Config, error) {
	if err := loadEnvFile(env); err != nil {
		return nil, fmt.Errorf("환경 변수 로드 실패: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "mall-csv-etl"),
			Env:  env,
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Path:            getEnv("DB_PATH", "mall.db"),
			Host:            getEnv("DB_HOST", ""),
			Port:            getEnvAsInt("DB_PORT", 1521),
			Service:         getEnv("DB_SERVICE", ""),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "1h"),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", "10m"),
		},
		ETL: ETLConfig{
			CSVDir:              getEnv("ETL_CSV_DIR", "csv"),
			ProductFile:         getEnv("ETL_PRODUCT_FILE", "상품목록.csv"),
			MemberFilePattern:   getEnv("ETL_MEMBER_FILE_PATTERN", "회원목록_%d년.csv"),
			PurchaseFilePattern: getEnv("ETL_PURCHASE_FILE_PATTERN", "구매이력_%d년.csv"),
			YearFrom:            getEnvAsInt("ETL_YEAR_FROM", 2019),
			YearTo:              getEnvAsInt("ETL_YEAR_TO", 2023),
			HashPasswords:       getEnvAsBool("ETL_HASH_PASSWORDS", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("환경 변수 검증 실패 : %w", err)
	}

	return cfg, nil
}

func loadEnvFile(env string) error {
	envFile := fmt.Sprintf(".env.%s", env)

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		slog.Warn("환경 변수 파일을 찾을 수 없습니다. 시스템 환경 변수를 사용합니다.",
			"file", envFile)
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("환경 변수 파일 로드 오류: %s: %w", envFile, err)
	}

	absPath, _ := filepath.Abs(envFile)
	slog.Info("환경 변수 파일 로드", "file", absPath)
	return nil
}

func (c *Config) Validate() error {
	var errors []string

	// Database validation
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			errors = append(errors, "sqlite 데이터베이스 Path가 필요합니다")
		}
	case "oracle":
		if c.Database.Host == "" {
			errors = append(errors, "데이터베이스 Host가 필요합니다")
		}
		if c.Database.Service == "" {
			errors = append(errors, "데이터베이스 Service가 필요합니다")
		}
		if c.Database.User == "" {
			errors = append(errors, "데이터베이스 User가 필요합니다")
		}
		if c.Database.Password == "" {
			errors = append(errors, "데이터베이스 Password가 필요합니다")
		}
	default:
		errors = append(errors, fmt.Sprintf("지원하지 않는 데이터베이스 Driver: %s", c.Database.Driver))
	}

	// ETL validation
	if c.ETL.CSVDir == "" {
		errors = append(errors, "CSV 디렉터리가 필요합니다")
	}
	if !strings.Contains(c.ETL.MemberFilePattern, "%d") {
		errors = append(errors, "회원 파일 패턴에 연도 자리(%d)가 필요합니다")
	}
	if !strings.Contains(c.ETL.PurchaseFilePattern, "%d") {
		errors = append(errors, "구매 파일 패턴에 연도 자리(%d)가 필요합니다")
	}
	if c.ETL.YearFrom > c.ETL.YearTo {
		errors = append(errors, "연도 범위가 올바르지 않습니다")
	}

	if len(errors) > 0 {
		return fmt.Errorf("유효성 검사 오류: %s", strings.Join(errors, ", "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "local" || c.App.Env == "dev"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod"
}

// ProductPath returns the location of the single product catalog CSV.
func (e ETLConfig) ProductPath() string {
	return filepath.Join(e.CSVDir, e.ProductFile)
}

// MemberFiles returns the yearly member roster CSV paths in load order.
func (e ETLConfig) MemberFiles() []string {
	return e.yearlyFiles(e.MemberFilePattern)
}

// PurchaseFiles returns the yearly purchase history CSV paths in load order.
func (e ETLConfig) PurchaseFiles() []string {
	return e.yearlyFiles(e.PurchaseFilePattern)
}

func (e ETLConfig) yearlyFiles(pattern string) []string {
	files := make([]string, 0, e.YearTo-e.YearFrom+1)
	for year := e.YearFrom; year <= e.YearTo; year++ {
		files = append(files, filepath.Join(e.CSVDir, fmt.Sprintf(pattern, year)))
	}
	return files
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	if defaultDuration, err := time.ParseDuration(defaultValue); err == nil {
		return defaultDuration
	}
	return 0
}
