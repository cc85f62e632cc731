/*
Copyright 2026 BUILD-MY-AGENT Authors
SPDX-License-Identifier: Apache-2.0
*/

package githubsearch

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v84/github"
	"golang.org/x/oauth2"
)

// Credentials selects how the GitHub client authenticates. All fields are
// optional: with none set the client makes unauthenticated requests, which
// GitHub rate-limits far more aggressively.
type Credentials struct {
	// Token is a personal access token.
	Token string

	// AppID, InstallationID, and PrivateKeyPath configure GitHub App
	// installation auth. All three must be set together, and they take
	// precedence over Token.
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
}

// NewClient builds a go-github client for the given credentials.
func NewClient(ctx context.Context, creds Credentials) (*github.Client, error) {
	if creds.AppID != 0 || creds.InstallationID != 0 || creds.PrivateKeyPath != "" {
		if creds.AppID == 0 || creds.InstallationID == 0 || creds.PrivateKeyPath == "" {
			return nil, fmt.Errorf("incomplete GitHub App credentials: app ID, installation ID, and private key path are all required")
		}
		itr, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, creds.AppID, creds.InstallationID, creds.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("loading GitHub App key: %w", err)
		}
		return github.NewClient(&http.Client{Transport: itr}), nil
	}

	if creds.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Token})
		return github.NewClient(oauth2.NewClient(ctx, ts)), nil
	}

	return github.NewClient(nil), nil
}
