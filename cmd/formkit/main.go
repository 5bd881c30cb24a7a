package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"formkit/internal/config"
	"formkit/internal/eventbus"
	"formkit/internal/ui"
)

func main() {
	var (
		configPath   string
		logPath      string
		writeDefault bool
	)
	pflag.StringVarP(&configPath, "config", "c", "", "Form definition file (TOML)")
	pflag.StringVar(&logPath, "log", "formkit.log", "Log file")
	pflag.BoolVar(&writeDefault, "write-default", false, "Write the sample form to --config and exit")
	pflag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Loaded form %q with %d fields", event.Path, event.Fields)
		}
	})
	bus.Subscribe(eventbus.EventValueCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ValueCommittedEvent); ok {
			log.Printf("%s = %v (%s)", event.Field, event.Value, event.Option.Label)
		}
	})
	bus.Subscribe(eventbus.EventCheckboxToggled, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CheckboxToggledEvent); ok {
			log.Printf("%s checked=%v", event.Field, event.Checked)
		}
	})

	configSvc := config.NewConfigServiceWithBus(bus)

	if writeDefault {
		path := configPath
		if path == "" {
			path = configSvc.Path()
		}
		if err := configSvc.SaveToPath(config.DefaultConfig(), path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing form: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote sample form to %s\n", path)
		return
	}

	cfg, err := loadConfig(configSvc, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading form: %v\n", err)
		os.Exit(1)
	}

	form, err := ui.BuildForm(cfg, bus)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building form: %v\n", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{}
	if cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UISettings.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if cfg.UISettings.ReportFocus {
		opts = append(opts, tea.WithReportFocus())
	}

	p := tea.NewProgram(form, opts...)
	form.SetProgram(p)

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	printValues(form.Values())
}

// loadConfig reads the form at path, or the default location when path is empty
func loadConfig(configSvc config.ConfigService, path string) (*config.Config, error) {
	if path == "" {
		return configSvc.Load()
	}
	return configSvc.LoadFromPath(path)
}

func printValues(values map[string]any) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s=%v\n", name, values[name])
	}
}
