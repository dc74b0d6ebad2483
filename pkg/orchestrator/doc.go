/*
Package orchestrator drives one detection-and-act pass over the local
database node.

The orchestrator is invoked once per process execution with one of two
mutually exclusive modes: re-register the local node's network address
(init container) or restart the local node (app container). Detection runs
first and gates everything; a host outside the cluster, a cluster with no
active database, or a pod whose volume holds no node catalog are all normal
conditions that end the run cleanly with no action.

# State machine

	START ── membership record exists? ──no──> EXIT clean
	            │ yes
	            ▼
	        active database present? ──no──> EXIT clean
	            │ yes
	            ▼
	        local node resolvable? ──no──> EXIT clean
	            │ yes
	            ▼
	        mode == re-ip    ──> reconcile address ──> EXIT success|failure
	        mode == restart  ──> restart node      ──> EXIT success|failure
	        mode == detect   ──> EXIT clean

# Retry model

The orchestrator never retries internally. Address reconciliation races the
cluster's failure-detection timer: when a pod dies, its node may not be
marked down yet by the time the replacement pod runs this code, so the first
attempt can fail. The init-container restart policy re-invokes the whole
process, and every path here is idempotent and leaves no partial state, so
re-running from the start is always safe. Only the surrounding orchestration
layer knows the acceptable retry budget and backoff.

# Failure taxonomy

  - Not applicable (no record, no database, no node, malformed record):
    Outcome{Applicable: false, Succeeded: true}, exit 0.
  - Precondition failure (pod address env var empty in re-ip mode):
    immediate failure before any command runs, exit 1.
  - Remote-operation failure (tool ran, output not a known success phrase):
    failure pointing the operator at the administration tool's own log,
    exit 1.
*/
package orchestrator
