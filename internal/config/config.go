package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	App      App      `koanf:"app"`
	Database Database `koanf:"db"`
	Export   Export   `koanf:"export"`
	Week     Week     `koanf:"week"`
}

type App struct {
	// Name is the display name used in report headers and export filenames.
	Name           string `koanf:"name"`
	CurrencySymbol string `koanf:"currencysymbol"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Export struct {
	// Dir is the directory monthly CSV reports are written into.
	Dir string `koanf:"dir"`
}

type Week struct {
	// StartDay is the lowercase English weekday name the week begins on.
	StartDay string `koanf:"startday"`
}

// StartWeekday resolves the configured week start day name to a time.Weekday.
// Unknown names fall back to Monday.
func (w Week) StartWeekday() time.Weekday {
	switch strings.ToLower(w.StartDay) {
	case "sunday":
		return time.Sunday
	case "monday":
		return time.Monday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		log.Warnf("unknown week start day %q, falling back to monday", w.StartDay)
		return time.Monday
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "localhost:8282",
		App: App{
			Name:           "ExpensO",
			CurrencySymbol: "$",
		},
		Database: Database{
			Path: "expenso.db",
		},
		Export: Export{
			Dir: "exports",
		},
		Week: Week{
			StartDay: "monday",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "EXPENSO_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "EXPENSO_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, fmt.Errorf("could not unmarshal configuration: %w", err)
	}

	return app, nil
}
