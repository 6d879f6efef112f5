// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/tliron/commonlog"
	"google.golang.org/protobuf/encoding/protojson"
	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/parsecomb.go/internal/exc"
	"gopkg.microglot.org/parsecomb.go/internal/fs"
	"gopkg.microglot.org/parsecomb.go/internal/js"
	pc "gopkg.microglot.org/parsecomb.go/parsecomb"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"

	stdinName = "-"
)

var log = commonlog.GetLogger("pcjson")

var errFailed = errors.New("one or more documents failed")

type app struct {
	opts opts
	// Relative targets are resolved against cwd when it is set.
	cwd    string
	fs     fs.FileSystem
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type document struct {
	path  string
	value js.Value
}

func (a *app) run(ctx context.Context, targets []string, emit bool) error {
	switch a.opts.Format {
	case formatJSON, formatYAML, formatText:
	default:
		return fmt.Errorf("unknown output format %q", a.opts.Format)
	}

	reporter := exc.NewReporter(nil)
	docs := make([]document, 0, len(targets))
	fatal := false
scan:
	for _, target := range targets {
		files, err := a.open(ctx, target)
		if err != nil {
			if reporter.Report(asException(target, err)) != nil {
				fatal = true
				break
			}
			continue
		}
		for _, f := range files {
			doc, e := a.parse(ctx, f)
			if e != nil {
				if reporter.Report(e) != nil {
					fatal = true
					break scan
				}
				continue
			}
			docs = append(docs, doc)
		}
	}

	if emit && !fatal {
		for i, doc := range docs {
			if err := a.emit(i, doc); err != nil {
				if reporter.Report(exc.Wrap(exc.Location{URI: doc.path}, exc.CodeEncodeFailed, err)) != nil {
					break
				}
			}
		}
	}

	reported := reporter.Reported()
	for _, e := range reported {
		fmt.Fprintln(a.stderr, e.Error())
	}
	if len(reported) > 0 {
		return errFailed
	}
	return nil
}

func (a *app) open(ctx context.Context, target string) ([]fs.File, error) {
	if target == stdinName {
		return []fs.File{fs.NewFileReader(stdinName, a.stdin)}, nil
	}
	if a.cwd != "" && !filepath.IsAbs(target) {
		target = filepath.Join(a.cwd, target)
	}
	return a.fs.Open(ctx, target)
}

func (a *app) parse(ctx context.Context, f fs.File) (document, exc.Exception) {
	path := f.Path(ctx)
	loc := exc.Location{URI: path}
	content, err := fs.ReadAll(ctx, f)
	if err != nil {
		return document{}, asException(path, err)
	}

	c := pc.NewCursor(content)
	v, err := js.Parser()(c)
	if err != nil {
		return document{}, exc.Wrap(loc, exc.CodeParseFailed, err)
	}
	if !c.AtEnd() {
		if !a.opts.AllowTrailing {
			return document{}, exc.Newf(loc, exc.CodeTrailingInput, "%d unparsed bytes follow the document", c.Len())
		}
		log.Warningf("%s: ignoring %d unparsed bytes", path, c.Len())
	}
	log.Infof("%s: parsed %d bytes", path, c.Offset())
	return document{path: path, value: v}, nil
}

func (a *app) emit(index int, doc document) error {
	switch a.opts.Format {
	case formatYAML:
		if index > 0 {
			fmt.Fprintln(a.stdout, "---")
		}
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(js.ToNative(doc.value)); err != nil {
			return err
		}
		return enc.Close()
	case formatText:
		_, err := fmt.Fprintln(a.stdout, js.Format(doc.value))
		return err
	default:
		pv, err := js.ToProto(doc.value)
		if err != nil {
			return err
		}
		b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(pv)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.stdout, string(b))
		return err
	}
}

func asException(uri string, err error) exc.Exception {
	var e exc.Exception
	if errors.As(err, &e) {
		return e
	}
	return exc.WrapUnknown(exc.Location{URI: uri}, err)
}
