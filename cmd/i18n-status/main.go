// Package main renders translator-facing i18n status artifacts.
package main

import (
	"flag"
	"os"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/config"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/tools/i18nstatus"
)

func main() {
	cfg, err := i18nstatus.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := i18nstatus.Run(cfg, os.Stdout); err != nil {
		config.Exitf("render i18n status: %v", err)
	}
}
