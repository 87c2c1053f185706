package ui

import (
	"github.com/arthur-debert/nue/pkg/errors"
)

// PackageReport is the outcome of resolving one package
type PackageReport struct {
	Name     string   `json:"name"`
	Version  string   `json:"version,omitempty"`
	TFM      string   `json:"tfm,omitempty"`
	Folder   string   `json:"folder,omitempty"`
	Strategy string   `json:"strategy,omitempty"`
	Output   string   `json:"output,omitempty"`
	Binaries []string `json:"binaries,omitempty"`
	Error    string   `json:"error,omitempty"`
	Code     string   `json:"code,omitempty"`
}

// Failed reports whether the package could not be resolved
func (p PackageReport) Failed() bool {
	return p.Error != ""
}

// Report summarizes a resolve run
type Report struct {
	OutputRoot string          `json:"outputRoot"`
	Mapping    string          `json:"mapping,omitempty"`
	Packages   []PackageReport `json:"packages"`
}

// Add appends a package outcome; err marks it as failed
func (r *Report) Add(p PackageReport, err error) {
	if err != nil {
		p.Error = err.Error()
		p.Code = string(errors.GetErrorCode(err))
	}
	r.Packages = append(r.Packages, p)
}

// Counts returns the number of resolved and failed packages
func (r *Report) Counts() (resolved, failed int) {
	for _, p := range r.Packages {
		if p.Failed() {
			failed++
		} else {
			resolved++
		}
	}
	return resolved, failed
}
