// Package orchestrator drives a single prompt generation run: layer
// inference, path resolution, variable building, and the templating engine
// call, in that order. Every stage's output feeds the next; the first
// failing stage ends the run and its error is the run's error.
package orchestrator

import (
	"context"
	stderrors "errors"

	"github.com/wexinc/breakdown/internal/command"
	"github.com/wexinc/breakdown/internal/config"
	"github.com/wexinc/breakdown/internal/errors"
	"github.com/wexinc/breakdown/internal/layer"
	"github.com/wexinc/breakdown/internal/logging"
	"github.com/wexinc/breakdown/internal/resolve"
	"github.com/wexinc/breakdown/internal/template"
	"github.com/wexinc/breakdown/internal/variables"
)

// Meta records which files a successful run resolved to.
type Meta struct {
	// FromLayer is the inferred source layer.
	FromLayer string
	// PromptPath is the prompt template actually used.
	PromptPath string
	// FallbackUsed is true when the prompt was selected by fallback rather
	// than the most specific candidate.
	FallbackUsed bool
	// SchemaPath is the candidate schema path (existence not required).
	SchemaPath string
	// InputPath is the resolved input file, empty for stdin-only runs.
	InputPath string
	// OutputPath is the resolved or auto-generated destination.
	OutputPath string
}

// Result is a successful prompt generation: the generated text plus the
// metadata of the paths that produced it. Failures are returned as errors,
// never as partial results.
type Result struct {
	Content string
	Meta    Meta
}

// Orchestrator coordinates one generation run per call. It holds no mutable
// state between runs.
type Orchestrator struct {
	resolver *resolve.Resolver
	engine   template.Engine
	log      *logging.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithEngine overrides the templating engine. Used by tests.
func WithEngine(e template.Engine) Option {
	return func(o *Orchestrator) { o.engine = e }
}

// WithResolver overrides the path resolver. Used by tests.
func WithResolver(r *resolve.Resolver) Option {
	return func(o *Orchestrator) { o.resolver = r }
}

// WithLogger overrides the logger.
func WithLogger(l *logging.Logger) Option {
	return func(o *Orchestrator) { o.log = l }
}

// New creates an orchestrator over the given configuration.
func New(cfg *config.Config, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		resolver: resolve.NewResolver(cfg.AppPrompt.BaseDir, cfg.AppSchema.BaseDir, cfg.WorkingDir),
		engine:   template.NewFileEngine(),
		log:      logging.Global(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the full pipeline for cmd. stdinText is the already-read
// piped input, empty when stdin was a terminal. The context bounds the
// templating engine call for engines that honor it; resolution itself is
// local computation plus existence probes and is not cancellable.
func (o *Orchestrator) Run(ctx context.Context, cmd command.TwoParamCommand, stdinText string) (*Result, error) {
	log := o.log.With("directive", cmd.Directive, "layer", cmd.Layer)

	fromLayer := layer.Infer(cmd.Options, cmd.Layer)
	log.Debug("layer inferred", "from_layer", fromLayer)

	paths, err := o.resolvePaths(cmd, fromLayer)
	if err != nil {
		log.Error("path resolution failed", "error", err)
		return nil, err
	}
	log.Debug("paths resolved",
		"prompt", paths.PromptFilePath,
		"schema", paths.SchemaFilePath,
		"input", paths.InputFilePath,
		"output", paths.OutputFilePath)

	// At least one input source must exist before variables are built.
	if paths.InputFilePath == "" && stdinText == "" {
		log.Error("no input source")
		return nil, errors.MissingInput()
	}

	vars, err := variables.NewBuilder().
		SetInputFile(paths.InputFilePath).
		SetInputText(stdinText).
		SetDestination(paths.OutputFilePath).
		SetSchemaFile(paths.SchemaFilePath).
		AddCustomAll(cmd.Options.CustomVariables).
		Build()
	if err != nil {
		log.Error("variable validation failed", "error", err)
		return nil, err
	}
	log.Debug("variables built", "count", vars.Len())

	content, err := o.generate(ctx, paths.PromptFilePath, vars.ToMap())
	if err != nil {
		log.Error("template generation failed", "error", err)
		return nil, err
	}
	log.Info("prompt generated",
		"prompt", paths.PromptFilePath,
		"output", paths.OutputFilePath,
		"fallback", paths.PromptFallbackUsed)

	return &Result{
		Content: content,
		Meta: Meta{
			FromLayer:    fromLayer,
			PromptPath:   paths.PromptFilePath,
			FallbackUsed: paths.PromptFallbackUsed,
			SchemaPath:   paths.SchemaFilePath,
			InputPath:    paths.InputFilePath,
			OutputPath:   paths.OutputFilePath,
		},
	}, nil
}

// resolvePaths runs the four resolvers in fixed order and collects the
// complete path set. Prompt resolution and output resolution can fail;
// schema and input resolution are total.
func (o *Orchestrator) resolvePaths(cmd command.TwoParamCommand, fromLayer string) (resolve.ResolvedPaths, error) {
	var paths resolve.ResolvedPaths

	sel, err := o.resolver.ResolvePromptPath(cmd.Directive, cmd.Layer, fromLayer, cmd.Options.Adaptation)
	if err != nil {
		return paths, err
	}
	paths.PromptFilePath = sel.Path
	paths.PromptFallbackUsed = sel.FallbackUsed

	paths.SchemaFilePath = o.resolver.ResolveSchemaPath(cmd.Directive, cmd.Layer)

	if input, ok := o.resolver.ResolveInputPath(cmd.Options.FromFile, fromLayer); ok {
		paths.InputFilePath = input
	}

	output, err := o.resolver.ResolveOutputPath(cmd.Options.DestinationFile, cmd.Layer)
	if err != nil {
		return paths, err
	}
	paths.OutputFilePath = output

	return paths, nil
}

// generate invokes the templating engine, respecting an already-cancelled
// context and wrapping engine failures with the prompt path.
func (o *Orchestrator) generate(ctx context.Context, promptPath string, vars map[string]string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.TemplateFailure(promptPath, err)
	}
	content, err := o.engine.Generate(promptPath, vars)
	if err != nil {
		if stderrors.Is(err, errors.ErrTemplateEngine) {
			return "", err
		}
		return "", errors.TemplateFailure(promptPath, err)
	}
	return content, nil
}
