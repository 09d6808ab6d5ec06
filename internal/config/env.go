package config

import (
	"os"
	"strings"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBDriver    string
	DBDSN       string
	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":5001"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER")))
	if driver == "" {
		driver = DriverMySQL
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = defaultDSN(driver)
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     ginMode,
		DBDriver:    driver,
		DBDSN:       dsn,
		CORSOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func defaultDSN(driver string) string {
	if driver == DriverSQLite {
		return "bookings.db"
	}
	return "root:@tcp(127.0.0.1:3306)/bookings?parseTime=false&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
}

func splitOrigins(raw string) []string {
	out := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
