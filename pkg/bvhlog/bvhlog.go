// Package bvhlog provides the structured logger used by the CLI and
// build-time tooling. It is ambient: the traversal core, bvol, query,
// and tree packages take no logger and never import this package.
package bvhlog

import "go.uber.org/zap"

// New returns a development-mode sugared logger: human-readable
// console output, suitable for a CLI. Production deployments that want
// JSON output should build their own zap.Config and wrap it with
// zap.SugaredLogger directly; this package only covers the CLI's needs.
func New() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Noop returns a logger that discards everything, for tests and
// library callers that don't want CLI-style console output.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
