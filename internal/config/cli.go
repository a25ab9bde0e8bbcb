package config

import (
	"github.com/alecthomas/kong"

	"github.com/reactbabylon/fibergen/internal/cmd"
)

// CLI is the root command line of fibergen.
type CLI struct {
	ConfigFile string           `name:"config" help:"Path to a JSON, YAML or TOML config file" env:"FIBERGEN_CONFIG" type:"path"`
	Version    kong.VersionFlag `help:"Print version and exit"`
	Log        LogConfig        `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate the TypeScript bindings and CreateInfo manifest"`
	Inspect   cmd.Inspect       `cmd:"" help:"Print the classified model of a declaration surface"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

type LogConfig struct {
	Level  string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"FIBERGEN_LOG_LEVEL"`
	File   string `help:"Also write logs to this file" env:"FIBERGEN_LOG_FILE"`
	Format string `help:"Console log format" default:"auto" enum:"auto,text,json" env:"FIBERGEN_LOG_FORMAT"`
}
