package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Поддерживаемые бэкенды буфера обмена
const (
	BackendWlCopy   = "wl-copy"
	BackendAuto     = "auto"
	BackendPortable = "portable"
	BackendNoop     = "noop"
)

type FeederFlags struct {
	Count        int           `env:"EVENT_COUNT"`
	Delay        time.Duration `env:"EVENT_DELAY"`
	Label        string        `env:"EVENT_LABEL"`
	ClipboardCmd string        `env:"CLIPBOARD_CMD"`
	Backend      string        `env:"CLIPBOARD_BACKEND"`
	EventLog     string        `env:"EVENT_LOG"`
	LogLevel     string        `env:"LOGLEVEL"`
}

func ParseFeederConfig() *FeederFlags {
	var cfg FeederFlags

	// Подхватываем .env если он есть, молча пропускаем если нет
	_ = godotenv.Load()

	// Устанавливаем значения по умолчанию
	setDefaultFeederFlags(&cfg)

	// Перезаписываем флагами
	parseFlagsFeeder(&cfg)

	// Устанавливаем переменные окружения
	parseEnvFeeder(&cfg)

	return &cfg
}

func setDefaultFeederFlags(cfg *FeederFlags) {
	cfg.Count = 100
	cfg.Delay = 2 * time.Second
	cfg.Label = "Test Event"
	cfg.ClipboardCmd = "wl-copy"
	cfg.Backend = BackendWlCopy
	// Дефолт уровня логирования живет здесь, а не в envDefault:
	// env.Parse выполняется после флагов и затер бы значение из --loglevel
	cfg.LogLevel = "info"
}

func parseEnvFeeder(cfg *FeederFlags) {
	err := env.Parse(cfg)
	if err != nil {
		fmt.Println(err)
	}
}

func parseFlagsFeeder(cfg *FeederFlags) {
	flags := pflag.NewFlagSet("feeder", pflag.ExitOnError)

	flags.IntVarP(&cfg.Count, "count", "n", 100, "number of events to emit")
	flags.DurationVarP(&cfg.Delay, "delay", "d", 2*time.Second, "delay between events")
	flags.StringVarP(&cfg.Label, "label", "t", "Test Event", "label prefix for event payloads")
	flags.StringVarP(&cfg.ClipboardCmd, "clipboard-cmd", "c", "wl-copy", "external clipboard command")
	flags.StringVarP(&cfg.Backend, "backend", "b", BackendWlCopy, "clipboard backend: wl-copy, auto, portable, noop")
	flags.StringVarP(&cfg.EventLog, "event-log", "f", "", "append emitted events to this file as JSON lines")
	flags.StringVar(&cfg.LogLevel, "loglevel", "info", "logging level")

	if err := flags.Parse(os.Args[1:]); err != nil {
		_, err := fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if err != nil {
			return
		}
		os.Exit(1)
	}

	if flags.NArg() > 0 {
		for i := 0; i < flags.NArg(); i++ {
			arg := flags.Arg(i)
			if len(arg) > 0 && arg[0] == '-' {
				_, err := fmt.Fprintf(os.Stderr, "Error: unknown flag: %s\n", arg)
				if err != nil {
					return
				}
				os.Exit(1)
			}
		}
	}
}

// Validate проверяет конфигурацию перед запуском цикла
func (cfg *FeederFlags) Validate() error {
	if cfg.Count <= 0 {
		return fmt.Errorf("event count must be positive, got %d", cfg.Count)
	}
	if cfg.Delay < 0 {
		return fmt.Errorf("delay must be non-negative, got %s", cfg.Delay)
	}
	switch cfg.Backend {
	case BackendWlCopy, BackendAuto, BackendPortable, BackendNoop:
	default:
		return fmt.Errorf("unknown clipboard backend %q", cfg.Backend)
	}
	if cfg.Backend == BackendWlCopy || cfg.Backend == BackendAuto {
		if cfg.ClipboardCmd == "" {
			return fmt.Errorf("clipboard command must not be empty for backend %q", cfg.Backend)
		}
	}
	return nil
}
