package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"psicro/psychro"
)

type Config struct {
	Altitude     float64
	AltitudeUnit psychro.UnitSystem

	Unit         psychro.UnitSystem
	ParseFailure psychro.ParseFailurePolicy

	Addr string

	HistoryPath    string
	HistoryEnabled bool

	LogLevel  string
	LogFormat string
}

/*
設定ファイルを読み込む。

	Args:
		path: ini ファイルのパス

	Returns:
		設定値。ファイルが存在しない場合は既定値

	Notes:
		ファイルが存在するが読めない場合はエラーを返す。
*/
func loadConfig(path string) (Config, error) {
	file := ini.Empty()
	if _, err := os.Stat(path); err == nil {
		file, err = ini.Load(path)
		if err != nil {
			return Config{}, err
		}
	}
	return loadCfg(file), nil
}

func loadCfg(file *ini.File) Config {
	return Config{
		Altitude:       file.Section("atmosphere").Key("altitude").MustFloat64(0),
		AltitudeUnit:   psychro.ParseUnitSystem(file.Section("atmosphere").Key("unit").MustString("SI")),
		Unit:           psychro.ParseUnitSystem(file.Section("evaluation").Key("unit").MustString("SI")),
		ParseFailure:   psychro.ParseParseFailurePolicy(file.Section("evaluation").Key("parse_failure").MustString("zero")),
		Addr:           file.Section("server").Key("addr").MustString(":9000"),
		HistoryPath:    file.Section("history").Key("path").MustString("psicro.db"),
		HistoryEnabled: file.Section("history").Key("enabled").MustBool(false),
		LogLevel:       file.Section("log").Key("level").MustString("info"),
		LogFormat:      file.Section("log").Key("format").MustString("text"),
	}
}

// setupLogging applies the [log] section to the standard logger.
func setupLogging(cfg Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stderr)
}
