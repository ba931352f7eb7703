package main

import "time"

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=5000"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	StoreMode            string        `env:"STORE_MODE,default=badger"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,default=/tmp/calsync/badger"`
	SearchFilepath       string        `env:"SEARCH_FILEPATH,default=/tmp/calsync/bluge"`
	RedisAddr            string        `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPassword        string        `env:"REDIS_PASSWORD"`
	RedisDB              int           `env:"REDIS_DB,default=0"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	StatsInterval        time.Duration `env:"STATS_INTERVAL,default=30s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	DebugInspect         bool          `env:"DEBUG_INSPECT,default=false"`
	DebugInspectPort     int           `env:"DEBUG_INSPECT_PORT,default=8085"`
}
