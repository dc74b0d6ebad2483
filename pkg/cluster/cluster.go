package cluster

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	configparser "github.com/bigkevmcd/go-configparser"
	"github.com/rs/zerolog"

	"github.com/stratadb/nodeops/pkg/log"
)

const (
	// nodesSection is the membership record section listing cluster nodes.
	nodesSection = "Nodes"

	// catalogPathField is the position of the catalog path among the
	// comma-separated fields of a node entry (address, data path, catalog
	// path).
	catalogPathField = 2
)

// catalogDirPattern matches the per-node catalog directory names under
// <catalogPath>/<dbName>/.
var catalogDirPattern = regexp.MustCompile(`^v_.*_catalog$`)

// HasMembershipRecord reports whether a membership record exists at path. Its
// absence means the host is not part of a cluster and there is nothing to do.
func HasMembershipRecord(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Resolver determines the local node's identity from the membership record
// and the on-disk catalog tree.
type Resolver struct {
	// MembershipPath is the node registry file.
	MembershipPath string

	logger zerolog.Logger
}

// NewResolver creates a resolver over the membership record at path.
func NewResolver(path string) *Resolver {
	return &Resolver{
		MembershipPath: path,
		logger:         log.WithComponent("cluster"),
	}
}

// ResolveLocalNode returns the node name of the local host for the given
// database, derived from the catalog directory the node keeps on this pod's
// volume. The second return is false when the host has no node in the
// database; that is a normal outcome, never an error. Malformed membership
// records are logged and degrade to not-found so a bootstrap race cannot fail
// the run.
func (r *Resolver) ResolveLocalNode(dbName string) (string, bool) {
	catalogPath, ok := r.catalogPath()
	if !ok {
		return "", false
	}

	node, ok := r.localNodeFromCatalog(filepath.Join(catalogPath, dbName))
	if !ok {
		return "", false
	}

	r.logger.Info().Str("node", node).Str("database", dbName).Msg("resolved local node")
	return node, true
}

// catalogPath extracts the catalog path from the first node entry of the
// membership record. All nodes share the same catalog path, so one entry is
// enough; the record is never validated against that invariant.
func (r *Resolver) catalogPath() (string, bool) {
	info, err := os.Stat(r.MembershipPath)
	if err != nil || info.Size() <= 0 {
		return "", false
	}

	cfg, err := configparser.NewConfigParserFromFile(r.MembershipPath)
	if err != nil {
		r.logger.Warn().Err(err).Msg("failed to parse membership record")
		return "", false
	}

	nodes, err := cfg.Items(nodesSection)
	if err != nil || len(nodes) == 0 {
		// No Nodes section: the host is not a cluster member.
		return "", false
	}

	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := strings.Split(nodes[names[0]], ",")
	if len(fields) <= catalogPathField {
		r.logger.Warn().
			Str("entry", names[0]).
			Msg("membership record node entry has too few fields")
		return "", false
	}
	return fields[catalogPathField], true
}

// localNodeFromCatalog lists the database's catalog directory and derives the
// node name from the first matching catalog subdirectory: v_<db>_node0001
// from v_<db>_node0001_catalog.
func (r *Resolver) localNodeFromCatalog(dir string) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Warn().Err(err).Str("dir", dir).Msg("failed to list catalog directory")
		return "", false
	}

	// ReadDir sorts by name, so the first match is the lexicographically
	// first catalog directory.
	for _, entry := range entries {
		name := entry.Name()
		if !catalogDirPattern.MatchString(name) {
			continue
		}
		return name[:strings.LastIndex(name, "_")], true
	}
	return "", false
}
