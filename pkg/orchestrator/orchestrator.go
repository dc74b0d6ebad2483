package orchestrator

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/stratadb/nodeops/pkg/admintools"
	"github.com/stratadb/nodeops/pkg/cluster"
	"github.com/stratadb/nodeops/pkg/config"
	"github.com/stratadb/nodeops/pkg/executor"
	"github.com/stratadb/nodeops/pkg/log"
	"github.com/stratadb/nodeops/pkg/secrets"
)

// Mode selects the operation performed after state detection.
type Mode int

const (
	// ModeDetect runs the detection steps only.
	ModeDetect Mode = iota
	// ModeReIP updates the local node's registered address.
	ModeReIP
	// ModeRestart restarts the local node's service process.
	ModeRestart
)

// Outcome is the result of one invocation. A run that found nothing to do is
// not applicable but still succeeded: those are normal on hosts outside the
// cluster or during bootstrap races.
type Outcome struct {
	Applicable bool
	Succeeded  bool
	Message    string
}

// Orchestrator drives one detection-and-act pass. It holds no mutable state
// between operations; every failure path is safe to retry by re-running the
// whole invocation, which is what the surrounding init-container restart
// policy does.
type Orchestrator struct {
	cfg      *config.Config
	tool     *admintools.Tool
	resolver *cluster.Resolver
	creds    secrets.Provider
	logger   zerolog.Logger
}

// New creates an orchestrator over the given configuration, command executor
// and credential provider.
func New(cfg *config.Config, exec executor.Executor, creds secrets.Provider) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		tool:     admintools.New(exec, cfg.AdminToolPath),
		resolver: cluster.NewResolver(cfg.MembershipPath),
		creds:    creds,
		logger:   log.WithComponent("orchestrator"),
	}
}

// Run performs one pass: probe cluster state, resolve the local node, then
// perform the selected operation. Detection gates everything; each gate that
// fails ends the run cleanly with no action taken.
func (o *Orchestrator) Run(ctx context.Context, mode Mode) Outcome {
	if !cluster.HasMembershipRecord(o.cfg.MembershipPath) {
		return o.notApplicable("host does not belong to a cluster")
	}

	db, ok := o.tool.ActiveDatabase(ctx)
	if !ok {
		return o.notApplicable("no active database; start the database before running node operations")
	}

	node, ok := o.resolver.ResolveLocalNode(db)
	if !ok {
		return o.notApplicable("local host has no node in the active database")
	}

	switch mode {
	case ModeReIP:
		return o.reconcileAddress(ctx, db, node)
	case ModeRestart:
		return o.restartNode(ctx, db, node)
	default:
		return o.notApplicable("detection finished; no operation requested")
	}
}

// reconcileAddress re-registers the local node's address as the pod's current
// address. The cluster's own failure detection races this: the node may not
// be marked down yet when the pod comes back, so a failure here is expected
// to be retried by re-running the whole invocation. No internal retry.
func (o *Orchestrator) reconcileAddress(ctx context.Context, db, node string) Outcome {
	newIP := os.Getenv(o.cfg.PodIPEnvVar)
	if newIP == "" {
		return o.failed(fmt.Sprintf("pod address unavailable: environment variable %s is empty", o.cfg.PodIPEnvVar))
	}

	o.logger.Info().
		Str("database", db).
		Str("node", node).
		Str("new_ip", newIP).
		Msg("updating address of local node")

	res := o.tool.ChangeNodeIP(ctx, db, node, newIP, o.creds.Credential())
	if !res.Succeeded() {
		return o.failed("failed to update address of local node, check the administration tool log for details")
	}
	return o.succeeded("address of local node has been updated")
}

// restartNode restarts the local node and requires the tool to confirm it is
// back up.
func (o *Orchestrator) restartNode(ctx context.Context, db, node string) Outcome {
	o.logger.Info().
		Str("database", db).
		Str("node", node).
		Msg("restarting local node")

	if !o.tool.RestartNode(ctx, db, node, o.creds.Credential()) {
		return o.failed("failed to restart local node, check the administration tool log for details")
	}
	return o.succeeded("local node has been restarted")
}

func (o *Orchestrator) notApplicable(msg string) Outcome {
	o.logger.Info().Msg(msg)
	return Outcome{Applicable: false, Succeeded: true, Message: msg}
}

func (o *Orchestrator) succeeded(msg string) Outcome {
	o.logger.Info().Msg(msg)
	return Outcome{Applicable: true, Succeeded: true, Message: msg}
}

func (o *Orchestrator) failed(msg string) Outcome {
	o.logger.Error().Msg(msg)
	return Outcome{Applicable: true, Succeeded: false, Message: msg}
}
