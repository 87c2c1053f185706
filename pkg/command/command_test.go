// pkg/command/command_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test install command construction and precedence rules

package command

import (
	"testing"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseline = `install Contoso.Widgets -OutputDirectory "/tmp/pkgs" -Verbosity Quiet ` +
	`-FallbackSource https://api.nuget.org/v3/index.json -ConfigFile "/tmp/NuGet.config"`

func pkg(t *testing.T, opts types.PackageOptions) types.PackageAtom {
	t.Helper()
	if opts.Name == "" {
		opts.Name = "Contoso.Widgets"
	}
	p, err := types.NewPackageAtom(opts)
	require.NoError(t, err)
	return p
}

func TestBuildInstallCommand(t *testing.T) {
	runDefaults := types.RunSettings{TFM: "net46", Feed: "https://feed.example/v3/index.json"}

	tests := []struct {
		name string
		opts types.PackageOptions
		rs   types.RunSettings
		want string
	}{
		{
			name: "no overrides and no defaults",
			want: baseline,
		},
		{
			name: "run defaults apply",
			rs:   runDefaults,
			want: baseline + " -Framework net46 -Source https://feed.example/v3/index.json",
		},
		{
			name: "package overrides win",
			opts: types.PackageOptions{TFM: "netstandard2.0", Feed: "https://private.example/nuget"},
			rs:   runDefaults,
			want: baseline + " -Framework netstandard2.0 -Source https://private.example/nuget",
		},
		{
			name: "blank package values fall back to run defaults",
			opts: types.PackageOptions{TFM: "  ", Feed: ""},
			rs:   runDefaults,
			want: baseline + " -Framework net46 -Source https://feed.example/v3/index.json",
		},
		{
			name: "version and prerelease",
			opts: types.PackageOptions{Version: "2.1.0-beta", Prerelease: true},
			want: baseline + " -Version 2.1.0-beta -PreRelease",
		},
		{
			name: "everything in order",
			opts: types.PackageOptions{TFM: "net472", Feed: "F", Version: "1.0.0", Prerelease: true},
			rs:   runDefaults,
			want: baseline + " -Framework net472 -Source F -Version 1.0.0 -PreRelease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildInstallCommand(pkg(t, tt.opts), "/tmp/pkgs", "/tmp/NuGet.config", tt.rs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildInstallCommandTrimsQuotes(t *testing.T) {
	got := BuildInstallCommand(pkg(t, types.PackageOptions{}), `"/tmp/pkgs"`, `"/tmp/NuGet.config"`, types.RunSettings{})
	assert.Equal(t, baseline, got)
}

func TestInstallArgsRoundTripThroughSplit(t *testing.T) {
	p := pkg(t, types.PackageOptions{Version: "1.2.3", TFM: "net45"})
	args := InstallArgs(p, "/tmp/my packages", "/tmp/NuGet.config", types.RunSettings{})

	words, err := Split(BuildInstallCommand(p, "/tmp/my packages", "/tmp/NuGet.config", types.RunSettings{}))
	require.NoError(t, err)
	assert.Equal(t, args, words)
	assert.Contains(t, words, "/tmp/my packages")
}

func TestSplit(t *testing.T) {
	words, err := Split(`mono --debug "C:/tools/nuget.exe"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"mono", "--debug", "C:/tools/nuget.exe"}, words)

	words, err = Split(`echo $HOME`)
	require.NoError(t, err)
	assert.Equal(t, []string{"echo", "$HOME"}, words)

	_, err = Split(`unterminated "quote`)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandParse))
}
