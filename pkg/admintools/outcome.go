package admintools

import (
	"fmt"
	"strings"
)

// Known response phrases. These come from the administration tool's console
// output and must track it verbatim; keep them in this file only.
const (
	reIPUpdatedMsg  = "IP addresses of nodes have been updated successfully"
	reIPNoChangeMsg = "Skip updating IP addresses: all nodes have up-to-date addresses"
)

// ReIPOutcome classifies the result of an address update.
type ReIPOutcome int

const (
	// ReIPFailed covers every response we do not recognize as success.
	ReIPFailed ReIPOutcome = iota
	// ReIPUpdated means the tool confirmed the address change.
	ReIPUpdated
	// ReIPAlreadyCurrent means the registered address already matched.
	ReIPAlreadyCurrent
)

// Succeeded reports whether the outcome leaves the node's registered address
// matching its actual address. An already-current address counts: the end
// state is the same.
func (o ReIPOutcome) Succeeded() bool {
	return o == ReIPUpdated || o == ReIPAlreadyCurrent
}

// ClassifyReIP maps raw db_change_node_ip output to an outcome by substring
// match against the known phrases.
func ClassifyReIP(output string) ReIPOutcome {
	switch {
	case strings.Contains(output, reIPUpdatedMsg):
		return ReIPUpdated
	case strings.Contains(output, reIPNoChangeMsg):
		return ReIPAlreadyCurrent
	default:
		return ReIPFailed
	}
}

// RestartSucceeded reports whether restart_node output confirms the node is
// back up.
func RestartSucceeded(output, node string) bool {
	return strings.Contains(output, fmt.Sprintf("%s: (UP)", node))
}
