package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	themeFlag := flag.String("theme", "", "color theme: dark or light")
	configFlag := flag.String("config", defaultConfigPath(), "path to config file")
	flag.Parse()

	cfg, cfgErr := loadConfig(*configFlag)
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}

	a, err := newApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
	if cfgErr != nil {
		a.status.Warn(fmt.Sprintf("Config ignored: %v", cfgErr))
	}

	// Files named on the command line become the initial tabs; only when
	// none open does the session start with a blank document.
	if !a.tabs.Startup(flag.Args(), a.status) {
		a.tabs.NewDocument()
	}

	if err := a.run(); err != nil {
		fmt.Fprintf(os.Stderr, "scribe: %v\n", err)
		os.Exit(1)
	}
}
