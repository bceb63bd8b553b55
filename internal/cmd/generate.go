package cmd

import (
	"log/slog"

	"github.com/openmultiplayer/open.mp-capi/internal/codegen/generator"
)

type Generate struct {
	Source string `help:"Directory scanned for annotated C++ sources" default:"./src" env:"CAPIGEN_SOURCE"`
	Events string `help:"Event schema JSON document" default:"./events.json" env:"CAPIGEN_EVENTS"`
	Output string `help:"Output directory for ompcapi.h and apidocs.json" default:"./generated" env:"CAPIGEN_OUTPUT"`
	Strict bool   `help:"Fail on duplicate functions instead of keeping the later definition" env:"CAPIGEN_STRICT"`
}

// Run is called by Kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting C API generation", "source", g.Source, "events", g.Events, "output", g.Output)

	gen := generator.New(g.Source, g.Events, g.Output, g.Strict, logger)
	return gen.Run()
}
