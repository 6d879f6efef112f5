// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.microglot.org/parsecomb.go/internal/exc"
)

// Document extensions picked up when a directory is opened.
var knownExts = map[string]bool{
	".json": true,
	".js":   true,
	".txt":  true,
}

// FileSystem resolves a URI to one or more documents. A directory URI
// expands to the documents it contains.
type FileSystem interface {
	Open(ctx context.Context, uri string) ([]File, error)
}

var _ FileSystem = FileSystemMulti{}

// FileSystemMulti is an ordered set of FileSystem implementations that are
// tried in order. The first one that can open a URI wins.
type FileSystemMulti []FileSystem

func (r FileSystemMulti) Open(ctx context.Context, uri string) ([]File, error) {
	var firstErr error
	for _, fs := range r {
		files, err := fs.Open(ctx, uri)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		return files, nil
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("could not open %s from any file system", uri))
}

// FileFilter selects which files to open when the path being opened is a
// directory.
type FileFilter func(ctx context.Context, fname string) bool

type FileSystemLocalOption func(*fileSystemLocal)

// WithOptionFSFactory installs a custom factory function used to generate the
// underlying file system handle. The default value is os.DirFS. All paths
// given to Open are considered relative to root.
func WithOptionFSFactory(v func(root string) fs.FS) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fsFactory = v
	}
}

// WithOptionFileFilter installs a custom filter function used to select files
// when a target is a directory. The default accepts known document
// extensions.
func WithOptionFileFilter(v FileFilter) FileSystemLocalOption {
	return func(rfs *fileSystemLocal) {
		rfs.fileFilter = v
	}
}

type fileSystemLocal struct {
	root       string
	fsFactory  func(string) fs.FS
	fileFilter FileFilter
}

// NewFileSystemLocal creates a new FileSystem rooted at a local directory.
func NewFileSystemLocal(root string, options ...FileSystemLocalOption) (FileSystem, error) {
	absroot, err := filepath.Abs(root)
	if err != nil {
		return nil, exc.WrapUnknown(exc.Location{URI: root}, err)
	}
	result := &fileSystemLocal{
		root:      absroot,
		fsFactory: os.DirFS,
		fileFilter: func(ctx context.Context, fname string) bool {
			return knownExts[filepath.Ext(fname)]
		},
	}
	for _, option := range options {
		option(result)
	}
	return result, nil
}

func (r *fileSystemLocal) Open(ctx context.Context, uri string) ([]File, error) {
	path := uri
	u, err := url.Parse(uri)
	if err == nil && u.Path != "" {
		path = u.Path
	}
	if filepath.IsAbs(path) {
		rel, err := filepath.Rel(r.root, path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("%s is outside of %s", uri, r.root))
		}
		path = rel
	} else if clean := filepath.Clean(path); clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, exc.New(exc.Location{URI: uri}, exc.CodeFileNotFound, fmt.Sprintf("%s is outside of %s", uri, r.root))
	}

	dir := r.fsFactory(r.root)
	// fs.FS requires an un-rooted, slash separated path and '.' for the root.
	p := strings.TrimPrefix(filepath.ToSlash(filepath.Clean(filepath.Join("/", path))), "/")
	if p == "" {
		p = "."
	}
	d, err := dir.Open(p)
	if err != nil {
		return nil, fsErr(p, err)
	}
	defer d.Close()
	stat, err := d.Stat()
	if err != nil {
		return nil, fsErr(p, err)
	}
	if !stat.IsDir() {
		return []File{NewFileFN(p, func() (io.ReadCloser, error) {
			return dir.Open(p)
		})}, nil
	}
	rd, ok := d.(fs.ReadDirFile)
	if !ok {
		return nil, exc.New(exc.Location{URI: p}, exc.CodeUnsupportedInput, fmt.Sprintf("cannot list directory %s", p))
	}
	dfs, err := rd.ReadDir(0)
	if err != nil {
		return nil, fsErr(p, err)
	}
	sort.Slice(dfs, func(i, j int) bool { return dfs[i].Name() < dfs[j].Name() })
	files := make([]File, 0, len(dfs))
	for _, df := range dfs {
		if df.IsDir() || !r.fileFilter(ctx, df.Name()) {
			continue
		}
		dfPath := strings.TrimPrefix(p+"/"+df.Name(), "./")
		files = append(files, NewFileFN(dfPath, func() (io.ReadCloser, error) {
			return dir.Open(dfPath)
		}))
	}
	if len(files) < 1 {
		return nil, exc.New(exc.Location{URI: p}, exc.CodeFileNotFound, fmt.Sprintf("found directory %s but it has no documents", p))
	}
	return files, nil
}

func fsErr(path string, err error) error {
	if errT, ok := err.(*fs.PathError); ok {
		switch {
		case errors.Is(errT.Err, fs.ErrNotExist):
			return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodeFileNotFound, errT)
		case errors.Is(errT.Err, fs.ErrPermission):
			return exc.Wrap(exc.Location{URI: errT.Path}, exc.CodePermissionDenied, errT)
		default:
			return exc.WrapUnknown(exc.Location{URI: errT.Path}, errT)
		}
	}
	return exc.WrapUnknown(exc.Location{URI: path}, err)
}
