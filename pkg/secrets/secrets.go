package secrets

import (
	"os"
	"strings"

	"github.com/stratadb/nodeops/pkg/log"
)

// Provider yields the optional administrative credential. An empty string
// means no credential is available and operations run unauthenticated.
type Provider interface {
	Credential() string
}

// FileProvider reads the credential from a mounted secret file.
type FileProvider struct {
	// Path is the mounted secret file, typically projected from a
	// Kubernetes secret via the downward API.
	Path string
}

// NewFileProvider creates a provider reading from path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

// Credential returns the file content with surrounding whitespace trimmed. A
// missing file means the cluster runs without a superuser password; any other
// read error is logged and treated the same way so a credential problem never
// blocks the run outright.
func (p *FileProvider) Credential() string {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger := log.WithComponent("secrets")
			logger.Warn().Err(err).Msg("failed to read credential file")
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}
