package orm

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"

	"github.com/coderi421/sqlwrap/orm/internal/errs"
)

const (
	envDriver = "SQLWRAP_DRIVER"
	envDSN    = "SQLWRAP_DSN"
)

// Config describes the data source a DB is opened against.
// It maps to a YAML document such as:
//
//	driver: mysql
//	dsn: user:pass@tcp(127.0.0.1:3306)/app
//	conn_timeout: 5s
type Config struct {
	// Driver is the database/sql driver name.
	Driver string `yaml:"driver"`
	// DSN is the data source name handed to the driver.
	DSN string `yaml:"dsn"`
	// ConnTimeout bounds how long Open waits for the connection.
	ConnTimeout time.Duration `yaml:"conn_timeout"`
}

// LoadConfig reads a YAML config file and applies environment overrides
// (SQLWRAP_DRIVER, SQLWRAP_DSN).
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("orm: reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("orm: parsing config file: %w", err)
	}
	cfg.applyEnvOverrides()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(envDriver); v != "" {
		c.Driver = v
	}
	if v := os.Getenv(envDSN); v != "" {
		c.DSN = v
	}
}

// Validate checks the config can be opened.
func (c Config) Validate() error {
	if c.Driver == "" {
		return errs.NewErrUnsupportedDriver(c.Driver)
	}
	if c.DSN == "" {
		return errs.ErrMissingDSN
	}
	if c.Driver == "mysql" {
		if _, err := mysql.ParseDSN(c.DSN); err != nil {
			return fmt.Errorf("orm: invalid mysql dsn: %w", err)
		}
	}
	return nil
}

// OpenConfig opens the data source described by cfg. For mysql the pool is
// built from a mysql connector, other drivers go through sql.Open.
func OpenConfig(cfg Config, opts ...DBOption) (*DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	switch cfg.Driver {
	case "mysql":
		sqlDB, err = openMySQL(cfg.DSN)
	default:
		sqlDB, err = sql.Open(cfg.Driver, cfg.DSN)
	}
	if err != nil {
		return nil, fmt.Errorf("orm: opening database: %w", err)
	}

	// 配置文件中的超时时间可以被 opts 覆盖
	opts = append([]DBOption{DBWithConnTimeout(cfg.ConnTimeout)}, opts...)
	db, err := OpenDB(sqlDB, opts...)
	if err != nil {
		// sqlDB 是这里创建的，失败的时候由这里关闭
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func openMySQL(dsn string) (*sql.DB, error) {
	mc, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}
