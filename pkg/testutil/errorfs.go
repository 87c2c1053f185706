package testutil

import (
	"io/fs"
	"strings"
	"sync"

	"github.com/arthur-debert/nue/pkg/types"
)

// Op names an FS method for error injection
type Op string

const (
	OpStat      Op = "Stat"
	OpReadFile  Op = "ReadFile"
	OpWriteFile Op = "WriteFile"
	OpChmod     Op = "Chmod"
	OpMkdirAll  Op = "MkdirAll"
	OpReadDir   Op = "ReadDir"
	OpRemove    Op = "Remove"
	OpRemoveAll Op = "RemoveAll"
)

type injected struct {
	op     Op
	suffix string
	err    error
}

// ErrorFS wraps a types.FS and fails chosen operations
type ErrorFS struct {
	types.FS

	mu    sync.Mutex
	rules []injected
}

// NewErrorFS wraps fsys
func NewErrorFS(fsys types.FS) *ErrorFS {
	return &ErrorFS{FS: fsys}
}

// FailOn makes op return err for every path ending in suffix
func (e *ErrorFS) FailOn(op Op, suffix string, err error) *ErrorFS {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rules = append(e.rules, injected{op: op, suffix: suffix, err: err})
	return e
}

func (e *ErrorFS) check(op Op, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, r := range e.rules {
		if r.op == op && strings.HasSuffix(name, r.suffix) {
			return r.err
		}
	}
	return nil
}

func (e *ErrorFS) Stat(name string) (fs.FileInfo, error) {
	if err := e.check(OpStat, name); err != nil {
		return nil, err
	}
	return e.FS.Stat(name)
}

func (e *ErrorFS) ReadFile(name string) ([]byte, error) {
	if err := e.check(OpReadFile, name); err != nil {
		return nil, err
	}
	return e.FS.ReadFile(name)
}

func (e *ErrorFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := e.check(OpWriteFile, name); err != nil {
		return err
	}
	return e.FS.WriteFile(name, data, perm)
}

func (e *ErrorFS) Chmod(name string, mode fs.FileMode) error {
	if err := e.check(OpChmod, name); err != nil {
		return err
	}
	return e.FS.Chmod(name, mode)
}

func (e *ErrorFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := e.check(OpMkdirAll, path); err != nil {
		return err
	}
	return e.FS.MkdirAll(path, perm)
}

func (e *ErrorFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := e.check(OpReadDir, name); err != nil {
		return nil, err
	}
	return e.FS.ReadDir(name)
}

func (e *ErrorFS) Remove(name string) error {
	if err := e.check(OpRemove, name); err != nil {
		return err
	}
	return e.FS.Remove(name)
}

func (e *ErrorFS) RemoveAll(path string) error {
	if err := e.check(OpRemoveAll, path); err != nil {
		return err
	}
	return e.FS.RemoveAll(path)
}
