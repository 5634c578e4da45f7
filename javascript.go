package osascript

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/robbyt/go-osascript/internal/helpers"
	"github.com/robbyt/go-osascript/options"
	"github.com/robbyt/go-osascript/platform"
	"github.com/robbyt/go-osascript/platform/data"
	"github.com/robbyt/go-osascript/platform/decoder"
	"github.com/robbyt/go-osascript/platform/failure"
	"github.com/robbyt/go-osascript/platform/runner"
	"github.com/robbyt/go-osascript/platform/script"
	"github.com/robbyt/go-osascript/platform/script/loader"
)

// JavaScript is a loaded script body. It is immutable after construction
// and safe for concurrent use; every execution wraps the body anew and
// gets its own interpreter.
type JavaScript struct {
	code      string
	id        string
	sourceURL *url.URL

	runner       runner.Runner
	dataProvider data.Provider

	logHandler slog.Handler
	logger     *slog.Logger
}

func newJavaScript(cfg *options.Config) (*JavaScript, error) {
	code, err := loader.ReadAll(cfg.GetLoader())
	if err != nil {
		return nil, fmt.Errorf("failed to load script: %w", err)
	}
	sourceURL := cfg.GetLoader().GetSourceURL()
	if strings.TrimSpace(code) == "" && !isInline(sourceURL) {
		return nil, fmt.Errorf("%w: %s is empty", loader.ErrScriptNotAvailable, sourceURL)
	}

	id := helpers.ShortID(code)
	handler, logger := helpers.SetupLogger(cfg.GetHandler(), "osascript", "JavaScript")

	return &JavaScript{
		code:         code,
		id:           id,
		sourceURL:    sourceURL,
		runner:       cfg.GetRunner(),
		dataProvider: cfg.GetDataProvider(),
		logHandler:   handler,
		logger:       logger.With("scriptID", id),
	}, nil
}

// isInline reports whether the body was handed over directly rather than
// fetched. Inline bodies are used as given, even when blank.
func isInline(u *url.URL) bool {
	return u != nil && u.Scheme == "string"
}

func (s *JavaScript) String() string {
	return fmt.Sprintf("osascript.JavaScript{ID: %s, Source: %s}", s.id, s.sourceURL)
}

// Code returns the script body as loaded.
func (s *JavaScript) Code() string {
	return s.code
}

// ID returns a short identifier derived from the body.
func (s *JavaScript) ID() string {
	return s.id
}

// SourceURL returns where the body was loaded from.
func (s *JavaScript) SourceURL() *url.URL {
	return s.sourceURL
}

// Wrap returns the program that would be handed to the interpreter for
// params, without running it.
func (s *JavaScript) Wrap(params any) (string, error) {
	return script.Wrap(s.code, params)
}

// Execute runs the script with an empty object as $params and decodes the
// result into out.
func (s *JavaScript) Execute(ctx context.Context, out any) error {
	outcome, _, err := s.run(ctx, script.WrapEmpty(s.code))
	if err != nil {
		return err
	}
	return decoder.Decode(outcome, out)
}

// ExecuteWithParams runs the script with params bound to $params and
// decodes the result into out. If params cannot be encoded the interpreter
// is never started.
func (s *JavaScript) ExecuteWithParams(ctx context.Context, params any, out any) error {
	program, err := s.Wrap(params)
	if err != nil {
		return err
	}
	outcome, _, err := s.run(ctx, program)
	if err != nil {
		return err
	}
	return decoder.Decode(outcome, out)
}

// Eval runs the script with $params taken from the data provider. The
// default provider combines an empty map with values stored by
// AddDataToContext.
func (s *JavaScript) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	params, err := s.dataProvider.GetData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}

	program, err := s.Wrap(params)
	if err != nil {
		return nil, err
	}
	outcome, runID, err := s.run(ctx, program)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := decoder.Decode(outcome, &raw); err != nil {
		return nil, err
	}
	return newResponse(raw, s.id, runID, outcome.Duration)
}

// AddDataToContext stores values for the next Eval in ctx.
func (s *JavaScript) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	return data.AddDataToContextHelper(ctx, s.logger, s.dataProvider, d...)
}

// run hands program to the runner. Runner errors that are not already
// classified are reported as I/O failures.
func (s *JavaScript) run(ctx context.Context, program string) (*runner.Outcome, string, error) {
	runID := uuid.NewString()
	logger := s.logger.With("runID", runID)
	logger.DebugContext(ctx, "running script", "programBytes", len(program))

	outcome, err := s.runner.Run(ctx, program)
	if err != nil {
		if failure.KindOf(err) == 0 {
			err = failure.IO(err)
		}
		logger.DebugContext(ctx, "runner failed", "error", err)
		return nil, runID, err
	}
	if outcome == nil {
		return nil, runID, failure.IO(decoder.ErrNilOutcome)
	}

	logger.DebugContext(ctx, "script finished",
		"success", outcome.Success,
		"exitCode", outcome.ExitCode,
		"duration", outcome.Duration,
	)
	return outcome, runID, nil
}

var _ platform.Evaluator = (*JavaScript)(nil)
