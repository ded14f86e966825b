// Package botlog is a small structured logger for long running bots, built
// around a fixed formatter chain and pluggable sinks.
//
// Every event goes through the same steps before it is written:
//
//  1. the error slot is flattened into stack trace strings,
//  2. big-number-like values (math/big numbers and types that look like
//     ethers or bn.js numbers) are replaced by their decimal strings,
//  3. the bot and run identifiers are attached.
//
// Basic usage:
//
//	logger := botlog.New(
//		botlog.WithConsole(),
//		botlog.WithIdentity("liquidator", "run-1"),
//	)
//	logger.Info("Checked positions", "at", "Liquidator#update", "count", 3)
//	logger.Error("Transaction failed", "error", err)
//
// The key "error" is special: its value is rendered as an error block under
// the log line instead of as a property.
//
// The same pipeline can sit behind log/slog or logr:
//
//	slogger := botlog.NewSlogLogger(botlog.WithConsole())
//	logrLogger := botlog.NewLogrLogger(botlog.WithConsole())
package botlog
