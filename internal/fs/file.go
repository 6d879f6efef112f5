// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package fs

import (
	"context"
	"io"
	"strings"
	"sync"

	"gopkg.microglot.org/parsecomb.go/internal/exc"
)

// File is a named document. Body returns a new reader on every call.
type File interface {
	Path(ctx context.Context) string
	Body(ctx context.Context) (io.ReadCloser, error)
}

// NewFileString wraps static string content in a File.
func NewFileString(path string, content string) File {
	return NewFileFN(path, func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	})
}

// NewFileReader wraps a stream that can only be read once, such as standard
// input. The content is buffered on first use so that Body may be called
// repeatedly.
func NewFileReader(path string, r io.Reader) File {
	once := sync.OnceValues(func() (string, error) {
		b, err := io.ReadAll(r)
		return string(b), err
	})
	return NewFileFN(path, func() (io.ReadCloser, error) {
		content, err := once()
		if err != nil {
			return nil, err
		}
		return io.NopCloser(strings.NewReader(content)), nil
	})
}

type fileIOFunc struct {
	path string
	body func() (io.ReadCloser, error)
}

// NewFileFN is intended to wrap actual file based content in the File
// interface. The given body function is used each time there is a call to
// Body so it must return a new io.ReadCloser handle.
func NewFileFN(path string, body func() (io.ReadCloser, error)) File {
	return &fileIOFunc{
		path: path,
		body: body,
	}
}

func (f *fileIOFunc) Path(ctx context.Context) string {
	return f.path
}

func (f *fileIOFunc) Body(ctx context.Context) (io.ReadCloser, error) {
	return f.body()
}

// ReadAll loads the whole document. Parsers work on an immutable in-memory
// buffer so there is no streaming variant.
func ReadAll(ctx context.Context, f File) (string, error) {
	path := f.Path(ctx)
	rc, err := f.Body(ctx)
	if err != nil {
		return "", fsErr(path, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", exc.WrapUnknown(exc.Location{URI: path}, err)
	}
	return string(b), nil
}
