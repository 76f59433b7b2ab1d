// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command arcslider renders circular arc sliders and replays
// interaction scripts against them.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cogentcore.org/arcslider/logx"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

var (
	veryVerbose = flag.Bool("vv", false, "log debug messages")
	verbose     = flag.Bool("v", false, "log informational messages")
	quiet       = flag.Bool("q", false, "only log errors")
)

func main() {
	flag.Usage = Usage
	flag.Parse()
	logx.UserLevel = logx.LevelFromFlags(*veryVerbose, *verbose, *quiet)
	logx.SetDefaultLogger()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run runs the command given by the arguments.
func run(args []string) error {
	if len(args) == 0 {
		Usage()
		return fmt.Errorf("arcslider: missing command")
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "render":
		fs := flag.NewFlagSet("render", flag.ContinueOnError)
		out := fs.String("o", "slider.png", "the output file: .svg, .png, .jpg, .gif, .tif, or .bmp")
		watching := fs.Bool("watch", false, "render again whenever the document changes")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("arcslider render: expected one document file")
		}
		doc, err := homedir.Expand(fs.Arg(0))
		if err != nil {
			return err
		}
		o, err := homedir.Expand(*out)
		if err != nil {
			return err
		}
		if !*watching {
			return renderFile(doc, o)
		}
		done := make(chan struct{})
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		go func() {
			<-sig
			close(done)
		}()
		return watch(doc, o, done)
	case "replay":
		fs := flag.NewFlagSet("replay", flag.ContinueOnError)
		out := fs.String("o", "", "render the final state to this file")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("arcslider replay: expected one script file")
		}
		script, err := homedir.Expand(fs.Arg(0))
		if err != nil {
			return err
		}
		sc, err := OpenScript(script)
		if err != nil {
			return err
		}
		sl, err := sc.Replay(os.Stdout, termenv.NewOutput(os.Stdout))
		if err != nil {
			return err
		}
		if *out == "" {
			return nil
		}
		o, err := homedir.Expand(*out)
		if err != nil {
			return err
		}
		d := sc.Document
		for _, id := range sl.Handles().Shown() {
			v, _ := sl.Value(id)
			d.setValue(id, v)
		}
		return renderDocument(&d, o)
	}
	Usage()
	return fmt.Errorf("arcslider: unknown command %q", cmd)
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Arcslider renders circular arc sliders and replays interaction scripts against them.\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "\tarcslider [flags] render [-o output] [-watch] document.toml|document.yaml\n")
	fmt.Fprintf(os.Stderr, "\tarcslider [flags] replay [-o output] script.yaml\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}
