//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of Presmark.
//
// Presmark is licensed under the latest version of the EUPL (European
// Union Public License). Please see file LICENSE.txt for your rights and
// obligations under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2025-present Detlef Stern
//-----------------------------------------------------------------------------

// Package main is the starting point for the presmark command.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"zettelstore.de/contrib/presmark/attrs"
	"zettelstore.de/contrib/presmark/config"
	"zettelstore.de/contrib/presmark/directive"
	"zettelstore.de/contrib/presmark/filter"
	"zettelstore.de/contrib/presmark/markup"
	"zettelstore.de/contrib/presmark/presenter"
)

// Command line flags
var (
	sConfig  = flag.String("c", "", "name of site configuration file (yaml, json, toml)")
	sMeta    = flag.String("m", "", "name of front matter file with resource metadata (yaml)")
	sID      = flag.String("id", "", "presentation id")
	sClasses = flag.String("classes", "", "additional presentation classes")
	bTmpl    = flag.Bool("t", false, "input is a template with presenter blocks")
	bSafe    = flag.Bool("safe", false, "escape attribute values")
	bDoc     = flag.Bool("doc", false, "produce a complete HTML document")
	sListen  = flag.String("l", "", "listen address of the preview server, e.g. \":23120\"")
	sZURL    = flag.String("z", "", "read input from the zettel with the given zid at this Zettelstore URL")
	bDebug   = flag.Bool("debug", false, "enable debug mode")
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		_, _ = fmt.Fprintf(out, "Usage of %s: [flags] [FILE | ZID]\n", os.Args[0])
		flag.PrintDefaults()
		_, _ = io.WriteString(out, "  FILE is read from stdin, if missing or \"-\"\n")
	}
	flag.Parse()
	logger := slog.Default()
	if *bDebug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	var err error
	if *sListen != "" {
		err = serve(logger, *sListen, flag.Arg(0))
	} else {
		err = run(context.Background(), logger, os.Stdout, flag.Arg(0))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, w io.Writer, arg string) error {
	site, err := loadSite(*sConfig)
	if err != nil {
		return err
	}
	meta, err := loadMeta(*sMeta)
	if err != nil {
		return err
	}
	name, src, err := readInput(ctx, logger, arg)
	if err != nil {
		return err
	}
	logger.Debug("Input", "name", name, "size", len(src), "template", *bTmpl)

	p := presenter.New(site, filter.NewDefault(), logger)
	res := presenter.NewResource(name, meta)
	out, err := render(p, logger, res, src)
	if err != nil {
		return err
	}
	logger.Debug("Rendered", "presentations", len(res.Presentations()))
	if *bDoc || *sListen != "" {
		lang := attrs.ResolveString("lang", "", meta)
		title := attrs.ResolveString("title", "", meta)
		markup.WriteSx(w, markup.Document(lang, title, markup.Raw(out)))
		return nil
	}
	_, err = io.WriteString(w, out)
	return err
}

func render(p *presenter.Presenter, logger *slog.Logger, res *presenter.Resource, src string) (string, error) {
	if *bTmpl {
		b := directive.New(p, logger)
		if err := b.Parse(res.Name, src); err != nil {
			return "", err
		}
		return b.ExecuteString(res, res.Meta)
	}
	pres := p.Build(res, *sID, *sClasses, src)
	if *bSafe {
		return pres.SafeHTML() + "\n", nil
	}
	return pres.HTML() + "\n", nil
}

func loadSite(path string) (*config.Site, error) {
	if path == "" {
		return nil, nil
	}
	return config.Load(path)
}

func loadMeta(path string) (config.Tree, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return config.ParseFrontMatter(data)
}

func readInput(ctx context.Context, logger *slog.Logger, arg string) (string, string, error) {
	if *sZURL != "" {
		c, err := getClient(ctx, *sZURL)
		if err != nil {
			return "", "", fmt.Errorf("unable to connect to zettelstore: %w", err)
		}
		content, err := getZettelContent(ctx, c, arg)
		return arg, content, err
	}
	if arg == "" || arg == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Info("Reading slides from terminal, end with Ctrl-D")
		}
		data, err := io.ReadAll(os.Stdin)
		return "stdin", string(data), err
	}
	data, err := os.ReadFile(arg)
	return arg, string(data), err
}
