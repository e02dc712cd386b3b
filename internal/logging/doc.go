// Package logging provides structured logging for the localize-it CLI using slog.
//
// Text output goes through a TTY-aware [Handler] that colorizes levels and
// keys when the writer is a terminal. JSON output uses the standard
// [slog.JSONHandler]. Attribute values that look like credentials (the
// template's api key, tokens) are masked before they reach any writer.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("scaffolded", "file", out)
//
// Commands carry the logger in their context:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("resolved parent", "dir", dir)
//
// # Testing
//
// Use [ForTest] to route log output through the testing framework.
package logging
