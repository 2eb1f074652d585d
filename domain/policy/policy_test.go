package policy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/policy"
	"github.com/reglet-dev/wallet-bindings/domain/ports"
)

type stubPrompter struct {
	err         error
	asked       []ports.MethodRequest
	interactive bool
	granted     bool
	always      bool
}

func (s *stubPrompter) IsInteractive() bool { return s.interactive }

func (s *stubPrompter) PromptForMethod(req ports.MethodRequest) (bool, bool, error) {
	s.asked = append(s.asked, req)
	return s.granted, s.always, s.err
}

type memoryStore struct {
	grants *entities.MethodGrants
	saves  int
}

func (m *memoryStore) Load() (*entities.MethodGrants, error) {
	if m.grants == nil {
		return &entities.MethodGrants{}, nil
	}
	return m.grants.Clone(), nil
}

func (m *memoryStore) Save(g *entities.MethodGrants) error {
	m.grants = g.Clone()
	m.saves++
	return nil
}

func (m *memoryStore) ConfigPath() string { return "memory" }

func TestMethodPolicy_Authorize(t *testing.T) {
	p, err := policy.NewMethodPolicy(
		policy.WithDenialHandler(&policy.NopDenialHandler{}),
		policy.WithGrants(&entities.MethodGrants{
			Allow: []string{"account/send*"},
			Deny:  []string{"wallet/backup", "account/sendNft"},
		}),
	)
	require.NoError(t, err)

	tests := []struct {
		name    string
		family  entities.MethodFamily
		method  string
		allowed bool
	}{
		{"low risk passes", entities.FamilyAccount, entities.AccountMethodGetBalance, true},
		{"medium risk passes", entities.FamilyAccount, entities.AccountMethodSync, true},
		{"allowed by pattern", entities.FamilyAccount, entities.AccountMethodSendAmount, true},
		{"deny wins over allow", entities.FamilyAccount, entities.AccountMethodSendNft, false},
		{"explicit deny", entities.FamilyWallet, entities.WalletMethodBackup, false},
		{"high risk without grant", entities.FamilyAccount, entities.AccountMethodBurn, false},
		{"critical without grant", entities.FamilyWallet, entities.WalletMethodStoreMnemonic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Authorize(context.Background(), tt.family, tt.method)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			var denied *domainerrors.PermissionDeniedError
			require.ErrorAs(t, err, &denied)
			assert.Equal(t, entities.MethodKey(tt.family, tt.method), denied.Method)
		})
	}
}

func TestMethodPolicy_PromptOnce(t *testing.T) {
	prompter := &stubPrompter{interactive: true, granted: true}
	p, err := policy.NewMethodPolicy(
		policy.WithDenialHandler(&policy.NopDenialHandler{}),
		policy.WithPrompter(prompter),
	)
	require.NoError(t, err)

	require.NoError(t, p.Authorize(context.Background(), entities.FamilyAccount, entities.AccountMethodSendAmount))
	require.NoError(t, p.Authorize(context.Background(), entities.FamilyAccount, entities.AccountMethodSendAmount))

	// Without "always" every call asks again.
	require.Len(t, prompter.asked, 2)
	assert.Equal(t, "account/sendAmount", prompter.asked[0].Key)
	assert.Equal(t, "High", prompter.asked[0].Risk)
}

func TestMethodPolicy_PromptAlwaysPersists(t *testing.T) {
	prompter := &stubPrompter{interactive: true, granted: true, always: true}
	store := &memoryStore{}
	p, err := policy.NewMethodPolicy(
		policy.WithDenialHandler(&policy.NopDenialHandler{}),
		policy.WithPrompter(prompter),
		policy.WithGrantStore(store),
	)
	require.NoError(t, err)

	require.NoError(t, p.Authorize(context.Background(), entities.FamilyWallet, entities.WalletMethodBackup))
	require.NoError(t, p.Authorize(context.Background(), entities.FamilyWallet, entities.WalletMethodBackup))

	assert.Len(t, prompter.asked, 1)
	assert.Equal(t, 1, store.saves)
	assert.Equal(t, []string{"wallet/backup"}, store.grants.Allow)
	assert.Contains(t, p.Grants().Allow, "wallet/backup")
}

func TestMethodPolicy_PromptRefused(t *testing.T) {
	prompter := &stubPrompter{interactive: true, granted: false}
	p, err := policy.NewMethodPolicy(
		policy.WithDenialHandler(&policy.NopDenialHandler{}),
		policy.WithPrompter(prompter),
	)
	require.NoError(t, err)

	err = p.Authorize(context.Background(), entities.FamilyAccount, entities.AccountMethodMintNfts)
	var denied *domainerrors.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, "refused by user", denied.Reason)
}

func TestMethodPolicy_PromptError(t *testing.T) {
	boom := errors.New("tty closed")
	p, err := policy.NewMethodPolicy(
		policy.WithDenialHandler(&policy.NopDenialHandler{}),
		policy.WithPrompter(&stubPrompter{interactive: true, err: boom}),
	)
	require.NoError(t, err)

	err = p.Authorize(context.Background(), entities.FamilyAccount, entities.AccountMethodBurn)
	assert.ErrorIs(t, err, boom)
}

func TestMethodPolicy_NonInteractivePrompterDenies(t *testing.T) {
	prompter := &stubPrompter{interactive: false, granted: true}
	p, err := policy.NewMethodPolicy(
		policy.WithDenialHandler(&policy.NopDenialHandler{}),
		policy.WithPrompter(prompter),
	)
	require.NoError(t, err)

	err = p.Authorize(context.Background(), entities.FamilyAccount, entities.AccountMethodBurn)
	assert.Error(t, err)
	assert.Empty(t, prompter.asked)
}

func TestMethodPolicy_StoredGrantsAndThreshold(t *testing.T) {
	store := &memoryStore{grants: &entities.MethodGrants{Allow: []string{"account/**"}}}
	p, err := policy.NewMethodPolicy(
		policy.WithDenialHandler(&policy.NopDenialHandler{}),
		policy.WithGrantStore(store),
		policy.WithApprovalThreshold(entities.RiskLevelMedium),
	)
	require.NoError(t, err)

	assert.NoError(t, p.Authorize(context.Background(), entities.FamilyAccount, entities.AccountMethodBurn))
	assert.Error(t, p.Authorize(context.Background(), entities.FamilyWallet, entities.WalletMethodCreateAccount))
	assert.NoError(t, p.Authorize(context.Background(), entities.FamilyWallet, entities.WalletMethodGetAccounts))
}

func TestMethodPolicy_InvalidPatternsRejected(t *testing.T) {
	tests := []struct {
		name   string
		grants *entities.MethodGrants
		field  string
	}{
		{name: "deny", grants: &entities.MethodGrants{Allow: []string{"wallet/**"}, Deny: []string{"wallet/{backup"}}, field: "deny"},
		{name: "allow", grants: &entities.MethodGrants{Allow: []string{"account/[send"}}, field: "allow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := policy.NewMethodPolicy(
				policy.WithDenialHandler(&policy.NopDenialHandler{}),
				policy.WithGrants(tt.grants),
			)
			require.Error(t, err)
			assert.Nil(t, p)

			var cfgErr *domainerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
			assert.Contains(t, err.Error(), "invalid pattern")
		})
	}
}

func TestMethodPolicy_InvalidStoredPatternRejected(t *testing.T) {
	store := &memoryStore{grants: &entities.MethodGrants{Deny: []string{"account/[burn"}}}
	_, err := policy.NewMethodPolicy(policy.WithGrantStore(store))
	assert.Error(t, err)
}
