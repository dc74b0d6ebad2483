/*
Package log provides structured logging for nodeops using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. Because nodeops runs as an init container, logs
are the only window an operator has into why a run acted or declined to act,
so every gating decision (no membership record, no active database, no local
node) is logged at info level before the process exits.

# Usage

Initializing the logger:

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: false,
		Output:     os.Stdout,
	})

Component loggers:

	probeLog := log.WithComponent("cluster")
	probeLog.Info().Str("path", cfg.MembershipPath).Msg("membership record found")

Output formats:

	Console: 10:30:00 INF membership record found component=cluster path=/opt/stratadb/config/admintools.conf
	JSON:    {"level":"info","component":"cluster","time":"2026-08-26T10:30:00Z","message":"membership record found"}

Console output is the default since these logs are mostly read through
kubectl logs; pass --log-json to the CLI to switch to JSON for aggregation.
*/
package log
