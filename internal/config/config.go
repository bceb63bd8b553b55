// Package config defines the top-level CLI layout parsed by Kong.
package config

import "github.com/openmultiplayer/open.mp-capi/internal/cmd"

// Log holds logging flags shared by every command.
type Log struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"CAPIGEN_LOG_LEVEL"`
	File  string `help:"Write logs to this file instead of the console" env:"CAPIGEN_LOG_FILE"`
}

// CLI is the root command structure. Values may come from flags, environment
// variables, or a JSON/YAML/TOML config file; flags win.
type CLI struct {
	Config string `help:"Path to a configuration file" env:"CAPIGEN_CONFIG"`
	Log    Log    `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" default:"withargs" help:"Scan annotated sources and emit ompcapi.h and apidocs.json"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
	Version   cmd.Version       `cmd:"" help:"Print the generator version"`
}
