package admintools

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stratadb/nodeops/pkg/executor"
	"github.com/stratadb/nodeops/pkg/log"
)

// Tool verbs. The administration executable takes a verb after -t followed by
// flag-style arguments.
const (
	verbShowActiveDB = "show_active_db"
	verbChangeNodeIP = "db_change_node_ip"
	verbRestartNode  = "restart_node"
)

// Tool wraps the cluster administration executable. All cluster-mutating
// operations go through it. Its output is free text whose format we do not
// control, so each operation matches against the known phrases here and
// nowhere else.
type Tool struct {
	exec   executor.Executor
	path   string
	logger zerolog.Logger
}

// New creates a Tool that invokes the executable at path through exec.
func New(exec executor.Executor, path string) *Tool {
	return &Tool{
		exec:   exec,
		path:   path,
		logger: log.WithComponent("admintools"),
	}
}

// ActiveDatabase returns the name of the currently running database. The
// second return is false when no database is up, which is a normal condition
// during bootstrap, not an error.
func (t *Tool) ActiveDatabase(ctx context.Context) (string, bool) {
	res, err := t.exec.Run(ctx, t.path, "-t", verbShowActiveDB)
	if err != nil {
		t.logger.Error().Err(err).Msg("failed to query active database")
		return "", false
	}

	out := strings.TrimSpace(res.Stdout)
	if out == "" {
		return "", false
	}

	// show_active_db prints "<dbname> <nodecount>"; the name is the first
	// whitespace-delimited token.
	name := strings.Fields(out)[0]
	t.logger.Info().Str("database", name).Msg("active database found")
	return name, true
}

// ChangeNodeIP re-registers the node's address with the cluster. The
// password is omitted from the command when empty.
func (t *Tool) ChangeNodeIP(ctx context.Context, db, node, newIP, password string) ReIPOutcome {
	args := []string{"-t", verbChangeNodeIP, "-d", db, "-s", node, "--new-host-ips", newIP}
	args = appendPassword(args, password)

	res, err := t.exec.Run(ctx, t.path, args...)
	if err != nil {
		t.logger.Error().Err(err).Msg("failed to run address update")
		return ReIPFailed
	}
	return ClassifyReIP(res.Stdout)
}

// RestartNode restarts the node and reports whether the tool confirmed it
// came back up.
func (t *Tool) RestartNode(ctx context.Context, db, node, password string) bool {
	args := []string{"-t", verbRestartNode, "-d", db, "-s", node}
	args = appendPassword(args, password)

	res, err := t.exec.Run(ctx, t.path, args...)
	if err != nil {
		t.logger.Error().Err(err).Msg("failed to run node restart")
		return false
	}
	return RestartSucceeded(res.Stdout, node)
}

func appendPassword(args []string, password string) []string {
	if password == "" {
		return args
	}
	return append(args, "-p", password)
}
