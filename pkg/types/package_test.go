// pkg/types/package_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test PackageAtom construction, defaults and exclusions

package types

import (
	"testing"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackageAtom(t *testing.T) {
	pkg, err := NewPackageAtom(PackageOptions{
		Name:       " Newtonsoft.Json ",
		Version:    " 13.0.3 ",
		Prerelease: true,
		TFM:        "net45",
		Feed:       "https://feed.example.org",
		Exclude:    []string{"*.resources.dll"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Newtonsoft.Json", pkg.Name)
	assert.Equal(t, "newtonsoft.json", pkg.Moniker)
	assert.Equal(t, "13.0.3", pkg.CustomVersion)
	assert.True(t, pkg.CustomVersionDefined())
	assert.True(t, pkg.IsPrerelease)
	assert.Equal(t, "net45", pkg.CustomProperties.TFM)
	assert.Equal(t, "https://feed.example.org", pkg.CustomProperties.CustomFeed)
	assert.True(t, pkg.IsExcluded("Newtonsoft.Json.resources.dll"))
	assert.False(t, pkg.IsExcluded("Newtonsoft.Json.dll"))
	assert.Equal(t, "Newtonsoft.Json@13.0.3", pkg.String())
}

func TestNewPackageAtomDefaults(t *testing.T) {
	pkg, err := NewPackageAtom(PackageOptions{Name: "NUnit", Moniker: "testing"})
	require.NoError(t, err)

	assert.Equal(t, "testing", pkg.Moniker)
	assert.False(t, pkg.CustomVersionDefined())
	assert.False(t, pkg.IsExcluded("anything.dll"))
	assert.Equal(t, "NUnit", pkg.String())
}

func TestNewPackageAtomRejectsEmptyName(t *testing.T) {
	_, err := NewPackageAtom(PackageOptions{Name: "  "})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
