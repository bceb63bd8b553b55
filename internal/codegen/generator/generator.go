package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	docsgen "github.com/openmultiplayer/open.mp-capi/internal/codegen/generator/apidocs"
	hgen "github.com/openmultiplayer/open.mp-capi/internal/codegen/generator/header"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/meta"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/scanner"
	"github.com/openmultiplayer/open.mp-capi/internal/codegen/schema"
)

// Output file names inside the output directory. Consumers key on these.
const (
	HeaderFileName = "ompcapi.h"
	DocsFileName   = "apidocs.json"
)

// Generator drives the whole pipeline: scan, group, load the event schema,
// then emit both artifacts from one shared model.
type Generator struct {
	sourceDir string
	eventsDoc string
	outputDir string
	strict    bool
	logger    *slog.Logger
}

func New(sourceDir, eventsDoc, outputDir string, strict bool, logger *slog.Logger) *Generator {
	return &Generator{
		sourceDir: sourceDir,
		eventsDoc: eventsDoc,
		outputDir: outputDir,
		strict:    strict,
		logger:    logger,
	}
}

// Run executes one generation pass. Any returned error means the run must be
// treated as failed and the output regenerated before use; a partially
// written output directory is acceptable for a build-time tool.
func (g *Generator) Run() error {
	md, err := g.Scan()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := hgen.Generate(g.logger, filepath.Join(g.outputDir, HeaderFileName), md); err != nil {
		return err
	}
	if err := docsgen.Generate(g.logger, filepath.Join(g.outputDir, DocsFileName), md); err != nil {
		return err
	}

	g.logger.Info("Generation complete", "output", g.outputDir)
	return nil
}

// Scan builds the shared model from the source tree and the event schema.
func (g *Generator) Scan() (*meta.Metadata, error) {
	if _, err := os.Stat(g.sourceDir); err != nil {
		return nil, fmt.Errorf("source directory %s: %w", g.sourceDir, err)
	}

	records, err := scanner.ScanTree(g.logger, g.sourceDir)
	if err != nil {
		return nil, fmt.Errorf("scan source tree: %w", err)
	}

	groups, err := scanner.Group(g.logger, records, g.strict)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Grouped API records", "groups", len(groups))

	events, err := schema.Load(g.eventsDoc)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Loaded event schema", "components", len(events))

	return &meta.Metadata{Groups: groups, Events: events}, nil
}
