package permission

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

// PolicyFile is the seed format:
//
//	roles:
//	  organization:
//	    ticket: [read:own, create:own]
type PolicyFile struct {
	Roles map[string]map[string][]string `yaml:"roles"`
}

// LoadPolicyFile parses a policy seed file into (role, object, action) rows.
func LoadPolicyFile(path string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}
	return ParsePolicies(raw)
}

func ParsePolicies(raw []byte) ([][]string, error) {
	var pf PolicyFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	var rows [][]string
	for role, objects := range pf.Roles {
		if !authorization.UserRole(role).IsValid() {
			return nil, fmt.Errorf("unknown role %q in policy file", role)
		}
		for object, actions := range objects {
			for _, action := range actions {
				if err := validateAction(action); err != nil {
					return nil, fmt.Errorf("role %s object %s: %w", role, object, err)
				}
				rows = append(rows, []string{role, object, action})
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		return strings.Join(rows[i], "|") < strings.Join(rows[j], "|")
	})
	return rows, nil
}

func validateAction(action string) error {
	_, scope, ok := strings.Cut(action, ":")
	if !ok || (scope != authorization.ScopeAny && scope != authorization.ScopeOwn) {
		return fmt.Errorf("action %q must end in :any or :own", action)
	}
	return nil
}

type PolicySync struct {
	enforcer *Enforcer
	logger   logger.Interface
}

func NewPolicySync(enforcer *Enforcer, logger logger.Interface) *PolicySync {
	return &PolicySync{
		enforcer: enforcer,
		logger:   logger,
	}
}

// SyncFromFile replaces the stored policy set with the file's contents.
func (s *PolicySync) SyncFromFile(path string) (int, error) {
	rows, err := LoadPolicyFile(path)
	if err != nil {
		return 0, err
	}
	if err := s.enforcer.ReplacePolicies(rows); err != nil {
		return 0, err
	}
	s.logger.Infow("policies synced", "file", path, "count", len(rows))
	return len(rows), nil
}

// SeedIfEmpty loads the file only when no policy is stored yet, so edits
// made through `policy sync` survive restarts.
func (s *PolicySync) SeedIfEmpty(path string) error {
	if s.enforcer.PolicyCount() > 0 {
		return nil
	}
	_, err := s.SyncFromFile(path)
	return err
}
