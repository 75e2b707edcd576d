package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port              string
	DataDir           string
	LogFile           string
	LowStockThreshold int
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data" // collection files live next to the binary by default
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./grocerhub.log"
	}
	threshold := 10
	if v := os.Getenv("LOW_STOCK_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			threshold = n
		}
	}

	cfg := Config{Port: port, DataDir: dataDir, LogFile: logFile, LowStockThreshold: threshold}
	log.Printf("[config] PORT=%s DATA_DIR=%s LOG_FILE=%s LOW_STOCK_THRESHOLD=%d",
		cfg.Port, cfg.DataDir, cfg.LogFile, cfg.LowStockThreshold)
	return cfg
}
