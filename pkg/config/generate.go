package config

import (
	"bytes"

	"github.com/arthur-debert/nue/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# nue configuration
#
# [run] holds the defaults for every package; [[packages]] lists what to
# resolve. Environment variables such as NUE_RUN_TFM and command line
# flags override these values.

`

// SampleConfig is the starter configuration written by genconfig
func SampleConfig() Config {
	return Config{
		Run: RunConfig{
			TFM:    "net45",
			Output: "_bin",
			Nuget:  "nuget",
		},
		Packages: []PackageConfig{
			{Name: "Newtonsoft.Json", Version: "13.0.3"},
			{Name: "NUnit", Exclude: []string{"*.resources.dll"}},
		},
	}
}

// GenerateConfigContent renders cfg as a commented TOML document
func GenerateConfigContent(cfg Config) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)

	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return buf.String(), nil
}
