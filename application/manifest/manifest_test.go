package manifest_test

import (
	"encoding/json"
	"testing"

	"github.com/reglet-dev/wallet-bindings/application/manifest"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCatalog_Counts(t *testing.T) {
	assert.Len(t, manifest.Names(entities.FamilyAccount), 48)
	assert.Len(t, manifest.Names(entities.FamilyWallet), 23)
	assert.Len(t, manifest.Names(entities.FamilyUtils), 15)
}

func TestCatalog_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range manifest.Methods() {
		key := entities.MethodKey(m.Family, m.Name)
		assert.False(t, seen[key], "duplicate method %s", key)
		seen[key] = true
	}
}

func TestLookup(t *testing.T) {
	m, ok := manifest.Lookup(entities.FamilyAccount, entities.AccountMethodSendAmount)
	require.True(t, ok)
	assert.Equal(t, entities.ResponseSentTransaction, m.Response)
	assert.IsType(t, entities.SendAmountRequest{}, m.Request)

	_, ok = manifest.Lookup(entities.FamilyAccount, "nope")
	assert.False(t, ok)
}

func TestBuild(t *testing.T) {
	m, err := manifest.Build()
	require.NoError(t, err)
	assert.Equal(t, manifest.Version, m.Version)
	assert.Len(t, m.Methods, len(manifest.Methods()))

	entry, ok := m.Entry(entities.FamilyWallet, entities.WalletMethodBackup)
	require.True(t, ok)
	assert.Equal(t, "critical", entry.Risk)
	assert.True(t, entry.Sensitive)

	entry, ok = m.Entry(entities.FamilyUtils, entities.UtilsMethodBech32ToHex)
	require.True(t, ok)
	assert.False(t, entry.Sensitive)
	assert.Equal(t, entities.ResponseBech32ToHex, entry.Response)
}

func TestBuild_WithRiskAssessor(t *testing.T) {
	assessor := entities.NewRiskAssessor(
		entities.WithMethodRisk(entities.MethodKey(entities.FamilyUtils, entities.UtilsMethodUTF8ToHex), entities.RiskLevelHigh),
	)
	m, err := manifest.Build(manifest.WithRiskAssessor(assessor))
	require.NoError(t, err)

	entry, ok := m.Entry(entities.FamilyUtils, entities.UtilsMethodUTF8ToHex)
	require.True(t, ok)
	assert.Equal(t, "high", entry.Risk)
}

func TestGetSchema(t *testing.T) {
	m, err := manifest.Build()
	require.NoError(t, err)

	raw, ok := m.GetSchema(entities.FamilyAccount, entities.AccountMethodDecreaseNativeTokenSupply)
	require.True(t, ok)

	var schema struct {
		Properties map[string]struct {
			Type    string `json:"type"`
			Pattern string `json:"pattern"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &schema))
	assert.Contains(t, schema.Required, "tokenId")
	assert.Contains(t, schema.Required, "meltAmount")
	assert.NotContains(t, schema.Required, "options")
	assert.Equal(t, "string", schema.Properties["meltAmount"].Type)
	assert.NotEmpty(t, schema.Properties["meltAmount"].Pattern)

	_, ok = m.GetSchema(entities.FamilyAccount, "nope")
	assert.False(t, ok)
}

func TestGenerateSchema_ByteList(t *testing.T) {
	data, err := manifest.GenerateSchema(entities.VoteRequest{})
	require.NoError(t, err)

	var schema struct {
		Properties map[string]struct {
			Type  string `json:"type"`
			Items struct {
				Type string `json:"type"`
			} `json:"items"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "array", schema.Properties["answers"].Type)
	assert.Equal(t, "integer", schema.Properties["answers"].Items.Type)
}

func TestFilter(t *testing.T) {
	m, err := manifest.Build()
	require.NoError(t, err)

	utils := m.Filter(entities.FamilyUtils)
	assert.Len(t, utils.Methods, 15)
	_, ok := utils.GetSchema(entities.FamilyUtils, entities.UtilsMethodHexToUTF8)
	assert.True(t, ok)
	_, ok = utils.GetSchema(entities.FamilyWallet, entities.WalletMethodBackup)
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	m, err := manifest.Build()
	require.NoError(t, err)
	m = m.Filter(entities.FamilyUtils)

	data, err := m.JSON()
	require.NoError(t, err)
	var decoded manifest.Manifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Len(t, decoded.Methods, len(m.Methods))

	data, err = m.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: \"1\"")
	assert.Contains(t, string(data), "name: generateMnemonic")

	var generic map[string]any
	require.NoError(t, yaml.Unmarshal(data, &generic))
	assert.Len(t, generic["methods"], 15)
}
