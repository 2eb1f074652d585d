package policy

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

// policyConfig holds configuration for the MethodPolicy.
type policyConfig struct {
	grants            *entities.MethodGrants
	store             ports.GrantStore
	prompter          ports.Prompter
	assessor          *entities.RiskAssessor
	denialHandler     ports.DenialHandler
	approvalThreshold entities.RiskLevel
}

func defaultPolicyConfig() policyConfig {
	return policyConfig{
		grants:            &entities.MethodGrants{},
		assessor:          entities.NewRiskAssessor(),
		denialHandler:     &LogDenialHandler{},
		approvalThreshold: entities.RiskLevelHigh, // value transfer and secrets need approval
	}
}

// PolicyOption configures the MethodPolicy.
type PolicyOption func(*policyConfig)

// WithGrants sets the static allow/deny patterns.
func WithGrants(g *entities.MethodGrants) PolicyOption {
	return func(c *policyConfig) {
		if g != nil {
			c.grants = g.Clone()
		}
	}
}

// WithGrantStore loads persisted grants and saves "always" approvals.
func WithGrantStore(s ports.GrantStore) PolicyOption {
	return func(c *policyConfig) {
		c.store = s
	}
}

// WithPrompter enables interactive approval.
func WithPrompter(p ports.Prompter) PolicyOption {
	return func(c *policyConfig) {
		c.prompter = p
	}
}

// WithRiskAssessor replaces the risk classification.
func WithRiskAssessor(a *entities.RiskAssessor) PolicyOption {
	return func(c *policyConfig) {
		c.assessor = a
	}
}

// WithApprovalThreshold sets the lowest risk level that needs an explicit grant or approval.
func WithApprovalThreshold(level entities.RiskLevel) PolicyOption {
	return func(c *policyConfig) {
		c.approvalThreshold = level
	}
}

// WithDenialHandler sets the denial handler.
func WithDenialHandler(h ports.DenialHandler) PolicyOption {
	return func(c *policyConfig) {
		c.denialHandler = h
	}
}

// MethodPolicy authorizes method calls against grants, risk and user approval.
type MethodPolicy struct {
	config policyConfig
	mu     sync.RWMutex
	allow  []string
	deny   []string
}

var _ ports.MethodAuthorizer = (*MethodPolicy)(nil)

// NewMethodPolicy creates a MethodPolicy. Stored grants are merged into the static ones.
func NewMethodPolicy(opts ...PolicyOption) (*MethodPolicy, error) {
	cfg := defaultPolicyConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	grants := cfg.grants.Clone()
	if cfg.store != nil {
		stored, err := cfg.store.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load method grants from %s: %w", cfg.store.ConfigPath(), err)
		}
		grants.Merge(stored)
	}

	if err := checkPatterns("allow", grants.Allow); err != nil {
		return nil, err
	}
	if err := checkPatterns("deny", grants.Deny); err != nil {
		return nil, err
	}

	return &MethodPolicy{
		config: cfg,
		allow:  grants.Allow,
		deny:   grants.Deny,
	}, nil
}

// checkPatterns fails on the first malformed pattern.
func checkPatterns(kind string, patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return &domainerrors.ConfigError{
				Field: kind,
				Err:   fmt.Errorf("invalid pattern %q", p),
			}
		}
	}
	return nil
}

func matchAny(patterns []string, key string) bool {
	for _, p := range patterns {
		if matched, _ := doublestar.Match(p, key); matched {
			return true
		}
	}
	return false
}

// Authorize implements ports.MethodAuthorizer.
func (p *MethodPolicy) Authorize(ctx context.Context, family entities.MethodFamily, name string) error {
	key := entities.MethodKey(family, name)

	p.mu.RLock()
	denied := matchAny(p.deny, key)
	allowed := matchAny(p.allow, key)
	p.mu.RUnlock()

	if denied {
		return p.refuse(key, "denied by policy")
	}
	if allowed {
		return nil
	}

	risk := p.config.assessor.AssessMethod(family, name)
	if risk < p.config.approvalThreshold {
		return nil
	}

	if p.config.prompter == nil || !p.config.prompter.IsInteractive() {
		return p.refuse(key, fmt.Sprintf("%s risk method requires a grant in non-interactive mode", risk))
	}

	granted, always, err := p.config.prompter.PromptForMethod(ports.MethodRequest{
		Key:         key,
		Description: fmt.Sprintf("%s method %q", family, name),
		Risk:        risk.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to prompt for %s: %w", key, err)
	}
	if !granted {
		return p.refuse(key, "refused by user")
	}
	if always {
		p.remember(ctx, key)
	}
	return nil
}

// Grants returns the effective grants, including approvals remembered at runtime.
func (p *MethodPolicy) Grants() *entities.MethodGrants {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return (&entities.MethodGrants{Allow: p.allow, Deny: p.deny}).Clone()
}

func (p *MethodPolicy) refuse(key, reason string) error {
	p.config.denialHandler.OnDenial(key, reason)
	return &domainerrors.PermissionDeniedError{Method: key, Reason: reason}
}

func (p *MethodPolicy) remember(ctx context.Context, key string) {
	p.mu.Lock()
	p.allow = append(p.allow, key)
	p.mu.Unlock()

	if p.config.store == nil {
		return
	}
	stored, err := p.config.store.Load()
	if err != nil {
		slog.WarnContext(ctx, "policy: failed to load grants before saving approval", "method", key, "error", err)
		return
	}
	stored.Merge(&entities.MethodGrants{Allow: []string{key}})
	if err := p.config.store.Save(stored); err != nil {
		slog.WarnContext(ctx, "policy: failed to persist approval", "method", key, "path", p.config.store.ConfigPath(), "error", err)
	}
}
