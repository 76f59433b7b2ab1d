// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/arcslider/base/errors"
	"cogentcore.org/arcslider/base/iox/imagex"
	"github.com/fsnotify/fsnotify"
)

// renderFile renders the document in the given file to the given
// output file, as SVG or an image depending on its extension.
func renderFile(docFile, out string) error {
	d, err := OpenDocument(docFile)
	if err != nil {
		return err
	}
	return renderDocument(d, out)
}

func renderDocument(d *Document, out string) error {
	sl, rs, st, err := d.NewSlider()
	if err != nil {
		return err
	}
	rm := sl.Render()
	if strings.EqualFold(filepath.Ext(out), ".svg") {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		if err := rm.WriteSVG(f, st); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	if _, err := imagex.ExtToFormat(filepath.Ext(out)); err != nil {
		return fmt.Errorf("arcslider: output %q: %w", out, err)
	}
	rs.Render(&rm, st)
	if err := imagex.Save(rs.Image(), out); err != nil {
		return err
	}
	slog.Info("rendered", "document", d.Slider, "output", errors.Log1(filepath.Abs(out)))
	return nil
}

// watch renders the document in the given file whenever it changes,
// until done is closed. Rendering errors are logged and do not stop it.
func watch(docFile, out string, done <-chan struct{}) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// editors often replace files, so the directory is watched
	if err := w.Add(filepath.Dir(docFile)); err != nil {
		return err
	}
	errors.Log(renderFile(docFile, out))
	target := filepath.Clean(docFile)
	for {
		select {
		case <-done:
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("document changed", "event", event)
			errors.Log(renderFile(docFile, out))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
