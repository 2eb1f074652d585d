package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/reglet-dev/wallet-bindings/dispatch"
	"github.com/reglet-dev/wallet-bindings/domain/entities"
	domainerrors "github.com/reglet-dev/wallet-bindings/domain/errors"
	"github.com/reglet-dev/wallet-bindings/domain/policy"
	"github.com/reglet-dev/wallet-bindings/infrastructure/jsonrpc"
	"github.com/reglet-dev/wallet-bindings/internal/testutil"
	wlog "github.com/reglet-dev/wallet-bindings/log"
)

func testEnv() envConfig {
	return envConfig{LogLevel: "error", LogFormat: "text", Listen: "127.0.0.1:0"}
}

func runApp(t *testing.T, cfg envConfig, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(cfg)
	app.Writer = &out
	app.ErrWriter = &errOut
	app.Reader = strings.NewReader("")
	err := app.Run(append([]string{"walletbind"}, args...))
	return out.String(), err
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("WALLETBIND_LISTEN", "0.0.0.0:9000")
	t.Setenv("WALLETBIND_ENGINE", "http://engine:7700/rpc/v0")

	cfg, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Listen)
	assert.Equal(t, "http://engine:7700/rpc/v0", cfg.Engine)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "debug", "json")
	require.NoError(t, err)

	logger.Debug("unlocking", "password", "hunter2")
	assert.Contains(t, buf.String(), wlog.Redacted)
	assert.NotContains(t, buf.String(), "hunter2")

	_, err = newLogger(&buf, "loud", "text")
	assert.Error(t, err)
	_, err = newLogger(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestManifestCommand(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := runApp(t, testEnv(), "manifest")
		require.NoError(t, err)
		assert.Contains(t, out, `"name": "getAccountIndexes"`)
		assert.Contains(t, out, `"name": "sendAmount"`)
	})

	t.Run("yaml utils only", func(t *testing.T) {
		out, err := runApp(t, testEnv(), "manifest", "--format", "yaml", "--family", "utils")
		require.NoError(t, err)
		assert.Contains(t, out, "name: utf8ToHex")
		assert.NotContains(t, out, "createAccount")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := runApp(t, testEnv(), "manifest", "--format", "xml")
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("bad family", func(t *testing.T) {
		_, err := runApp(t, testEnv(), "manifest", "--family", "node")
		assert.ErrorContains(t, err, "unknown method family")
	})
}

func TestUtilsCommand(t *testing.T) {
	out, err := runApp(t, testEnv(), "utils", "utf8ToHex", `{"utf8":"hi"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"hex","payload":"0x6869"}`, strings.TrimSpace(out))

	out, err = runApp(t, testEnv(), "utils", "mineBitcoin")
	require.ErrorIs(t, err, errFailedResponse)
	assert.Contains(t, out, `"type":"error"`)

	_, err = runApp(t, testEnv(), "utils", "utf8ToHex", `{not json`)
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestCheckConfigCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "wallet.yaml")
	require.NoError(t, os.WriteFile(good, []byte("storagePath: ./db\ncoinType: 4218\n"), 0o600))
	bad := filepath.Join(dir, "wallet.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"secretManager":{"type":"paper"}}`), 0o600))

	out, err := runApp(t, testEnv(), "check-config", good)
	require.NoError(t, err)
	assert.Equal(t, good+": ok\n", out)

	out, err = runApp(t, testEnv(), "check-config", "--print", good)
	require.NoError(t, err)
	assert.Contains(t, out, "storagePath: ./db")
	assert.Contains(t, out, "coinType: 4218")

	_, err = runApp(t, testEnv(), "check-config", bad)
	var cerr *domainerrors.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "secretManager.type", cerr.Field)
}

func TestCallCommand(t *testing.T) {
	wallet := new(testutil.MockWallet)
	wallet.On("AccountIndexes", mock.Anything).Return([]uint32{0, 1}, nil)

	handler, err := dispatch.New()
	require.NoError(t, err)
	mux := http.NewServeMux()
	jsonrpc.NewServer(handler, wallet).Register(mux, "/rpc/v0")
	ts := httptest.NewServer(mux)
	defer ts.Close()

	cfg := testEnv()
	cfg.Engine = ts.URL + "/rpc/v0"

	out, err := runApp(t, cfg, "call", `{"cmd":"getAccountIndexes"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"accountIndexes","payload":[0,1]}`, strings.TrimSpace(out))

	out, err = runApp(t, cfg, "call", "--utils", `{"name":"hexToUtf8","data":{"hex":"0x6869"}}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"utf8","payload":"hi"}`, strings.TrimSpace(out))

	_, err = runApp(t, cfg, "call", `{"cmd":"backup","payload":{}}`)
	assert.ErrorIs(t, err, errFailedResponse)

	_, err = runApp(t, testEnv(), "call", `{"cmd":"getAccountIndexes"}`)
	assert.ErrorContains(t, err, "no engine address")
}

func buildPolicyWith(t *testing.T, args ...string) (*policy.MethodPolicy, error) {
	t.Helper()
	var built *policy.MethodPolicy
	app := &cli.App{
		Writer:    &bytes.Buffer{},
		ErrWriter: &bytes.Buffer{},
		Reader:    strings.NewReader(""),
		Commands: []*cli.Command{{
			Name:  "build-policy",
			Flags: serveCmd(testEnv()).Flags,
			Action: func(cctx *cli.Context) error {
				var err error
				built, err = buildPolicy(cctx, nil)
				return err
			},
		}},
	}
	err := app.Run(append([]string{"walletbind", "build-policy"}, args...))
	return built, err
}

func TestBuildPolicy(t *testing.T) {
	dir := t.TempDir()
	policyFile := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(policyFile, []byte("allow:\n  - account/sendAmount\ndeny:\n  - wallet/backup\n"), 0o600))

	built, err := buildPolicyWith(t,
		"--policy", policyFile,
		"--grant-store", filepath.Join(dir, "grants.yaml"),
		"--no-prompt",
	)
	require.NoError(t, err)
	require.NotNil(t, built)

	ctx := context.Background()
	assert.NoError(t, built.Authorize(ctx, entities.FamilyAccount, entities.AccountMethodSendAmount))
	assert.NoError(t, built.Authorize(ctx, entities.FamilyWallet, entities.WalletMethodGetAccountIndexes))

	var denied *domainerrors.PermissionDeniedError
	require.ErrorAs(t, built.Authorize(ctx, entities.FamilyWallet, entities.WalletMethodBackup), &denied)
	require.ErrorAs(t, built.Authorize(ctx, entities.FamilyAccount, entities.AccountMethodBurn), &denied)
	assert.Contains(t, denied.Reason, "non-interactive")
}

func TestBuildPolicy_PolicyFileErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{name: "missing file", path: filepath.Join(dir, "typo.yaml"), wantErr: "failed to read policy"},
		{name: "empty file", path: write("empty.yaml", ""), wantErr: "is empty"},
		{name: "unknown key", path: write("unknown.yaml", "denyy:\n  - wallet/backup\n"), wantErr: "failed to parse policy"},
		{name: "malformed pattern", path: write("bad.yaml", "deny:\n  - wallet/{backup\n"), wantErr: "invalid pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built, err := buildPolicyWith(t,
				"--policy", tt.path,
				"--grant-store", filepath.Join(dir, "grants.yaml"),
				"--no-prompt",
			)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Nil(t, built)
		})
	}
}

func TestBuildPolicy_BadThreshold(t *testing.T) {
	_, err := runApp(t, testEnv(), "serve", "--engine", "http://127.0.0.1:1/rpc/v0", "--approval-threshold", "extreme")
	assert.Error(t, err)
}
