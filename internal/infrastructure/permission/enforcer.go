package permission

import (
	"fmt"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

var _ authorization.PolicyChecker = (*Enforcer)(nil)

// defaultModel matches role, object and scoped action exactly; scoping
// (own/any) is resolved by the authorizer.
const defaultModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer loads policies stored in the casbin_rule table. An empty
// modelPath selects the built-in model.
func NewEnforcer(db *gorm.DB, modelPath string, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	var m model.Model
	if modelPath != "" {
		m, err = model.NewModelFromFile(modelPath)
	} else {
		m, err = model.NewModelFromString(defaultModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role, object, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, object, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "object", object, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// ReplacePolicies makes the stored policy set equal to policies. Only the
// difference is written, through the adapter's incremental calls, so the
// whole sync runs on a single connection.
func (e *Enforcer) ReplacePolicies(policies [][]string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, err := e.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read policies: %w", err)
	}

	stale, missing := diffPolicies(current, policies)

	if len(stale) > 0 {
		if _, err := e.enforcer.RemovePolicies(stale); err != nil {
			e.logger.Errorw("failed to remove policies", "error", err, "count", len(stale))
			return fmt.Errorf("failed to remove policies: %w", err)
		}
	}
	if len(missing) > 0 {
		if _, err := e.enforcer.AddPolicies(missing); err != nil {
			e.logger.Errorw("failed to add policies", "error", err, "count", len(missing))
			return fmt.Errorf("failed to add policies: %w", err)
		}
	}
	return nil
}

// diffPolicies returns the rows of current absent from wanted, and the rows
// of wanted absent from current. Duplicates in wanted are collapsed.
func diffPolicies(current, wanted [][]string) (stale, missing [][]string) {
	key := func(row []string) string { return strings.Join(row, "\x00") }

	want := make(map[string]struct{}, len(wanted))
	for _, row := range wanted {
		want[key(row)] = struct{}{}
	}

	have := make(map[string]struct{}, len(current))
	for _, row := range current {
		k := key(row)
		have[k] = struct{}{}
		if _, ok := want[k]; !ok {
			stale = append(stale, append([]string(nil), row...))
		}
	}

	for _, row := range wanted {
		k := key(row)
		if _, ok := have[k]; ok {
			continue
		}
		have[k] = struct{}{}
		missing = append(missing, row)
	}
	return stale, missing
}

func (e *Enforcer) PolicyCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	policies, err := e.enforcer.GetPolicy()
	if err != nil {
		return 0
	}
	return len(policies)
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
