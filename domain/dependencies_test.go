package domain_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/reglet-dev/wallet-bindings/"

// TestDomainHasNoOuterLayerDependencies verifies that the domain layer
// does not import from the dispatch, application or infrastructure layers.
func TestDomainHasNoOuterLayerDependencies(t *testing.T) {
	fset := token.NewFileSet()

	for _, pkg := range []string{"entities", "errors", "ports", "policy"} {
		files, err := filepath.Glob(filepath.Join(".", pkg, "*.go"))
		require.NoError(t, err, "failed to glob %s files", pkg)

		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			checkFileImports(t, fset, file, pkg)
		}
	}
}

func checkFileImports(t *testing.T, fset *token.FileSet, filename, pkg string) {
	t.Helper()

	f, err := parser.ParseFile(fset, filename, nil, parser.ImportsOnly)
	require.NoError(t, err, "failed to parse %s", filename)

	for _, imp := range f.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)
		if !strings.HasPrefix(importPath, modulePath) {
			continue
		}
		assert.True(t, strings.HasPrefix(importPath, modulePath+"domain/"),
			"domain/%s package (%s) imports non-domain package: %s",
			pkg, filepath.Base(filename), importPath)
	}
}

// TestDomainEntitiesPortsErrorsExist verifies that required domain packages exist.
func TestDomainEntitiesPortsErrorsExist(t *testing.T) {
	for _, dir := range []string{"entities", "errors", "ports", "policy"} {
		files, err := filepath.Glob(filepath.Join(".", dir, "*.go"))
		require.NoError(t, err, "failed to check %s directory", dir)
		assert.NotEmpty(t, files, "domain/%s should contain Go files", dir)
	}
}
