package config

// Config is the decoded configuration of one run
type Config struct {
	Run      RunConfig       `koanf:"run" toml:"run"`
	Packages []PackageConfig `koanf:"packages" toml:"packages"`
}

// RunConfig holds the process-wide defaults
type RunConfig struct {
	TFM          string `koanf:"tfm" toml:"tfm"`
	Feed         string `koanf:"feed" toml:"feed"`
	Output       string `koanf:"output" toml:"output"`
	PackagesPath string `koanf:"packages_path" toml:"packages_path"`
	NugetConfig  string `koanf:"nuget_config" toml:"nuget_config"`
	Nuget        string `koanf:"nuget" toml:"nuget"`
	Launcher     string `koanf:"launcher" toml:"launcher"`
	KeepPackages bool   `koanf:"keep_packages" toml:"keep_packages"`
}

// PackageConfig is one [[packages]] entry
type PackageConfig struct {
	Name       string   `koanf:"name" toml:"name"`
	Version    string   `koanf:"version" toml:"version,omitempty"`
	Prerelease bool     `koanf:"prerelease" toml:"prerelease,omitempty"`
	Moniker    string   `koanf:"moniker" toml:"moniker,omitempty"`
	TFM        string   `koanf:"tfm" toml:"tfm,omitempty"`
	Feed       string   `koanf:"feed" toml:"feed,omitempty"`
	Exclude    []string `koanf:"exclude" toml:"exclude,omitempty"`
}
