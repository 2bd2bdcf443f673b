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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"golang.org/x/term"

	"t73f.de/r/zsc/api"
	"t73f.de/r/zsc/client"
	"t73f.de/r/zsc/domain/id"
)

// Constants for minimum required version.
const (
	minMajor = 0
	minMinor = 19
)

func hasVersion(major, minor int) bool {
	return major > minMajor || (major == minMajor && minor >= minMinor)
}

func getClient(ctx context.Context, base string) (*client.Client, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	withAuth, username, password := false, "", ""
	if uinfo := u.User; uinfo != nil {
		username = uinfo.Username()
		if pw, ok := uinfo.Password(); ok {
			password = pw
		}
		withAuth = true
		u.User = nil
	}
	c := client.NewClient(u)
	ver, err := c.GetVersionInfo(ctx)
	if err != nil {
		return nil, err
	}
	if ver.Major == -1 {
		fmt.Fprintln(os.Stderr, "Unknown zettelstore version. Use it at your own risk.")
	} else if !hasVersion(ver.Major, ver.Minor) {
		return nil, fmt.Errorf("need at least zettelstore version %d.%d but found only %d.%d", minMajor, minMinor, ver.Major, ver.Minor)
	}

	if !withAuth {
		err = c.ExecuteCommand(ctx, api.CommandAuthenticated)
		var cerr *client.Error
		if errors.As(err, &cerr) && cerr.StatusCode == http.StatusUnauthorized {
			withAuth = true
		}
	}
	if withAuth {
		if err = authenticate(ctx, c, username, password); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func authenticate(ctx context.Context, c *client.Client, username, password string) error {
	if username == "" {
		_, _ = io.WriteString(os.Stderr, "Username: ")
		if _, err := fmt.Fscanln(os.Stdin, &username); err != nil {
			return err
		}
	}
	if password == "" {
		_, _ = io.WriteString(os.Stderr, "Password: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		_, _ = io.WriteString(os.Stderr, "\n")
		if err != nil {
			return err
		}
		password = string(pw)
	}
	c.SetAuth(username, password)
	return c.Authenticate(ctx)
}

// getZettelContent retrieves the content of the zettel with the given
// zettel identifier. The content contains the slide text or a template.
func getZettelContent(ctx context.Context, c *client.Client, sZid string) (string, error) {
	zid, err := id.Parse(sZid)
	if err != nil {
		return "", fmt.Errorf("invalid zettel identifier %q: %w", sZid, err)
	}
	content, err := c.GetZettel(ctx, zid, api.PartContent)
	if err != nil {
		var cerr *client.Error
		if errors.As(err, &cerr) && cerr.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("zettel %s not found", zid)
		}
		return "", fmt.Errorf("error retrieving zettel %s: %w", zid, err)
	}
	return string(content), nil
}
