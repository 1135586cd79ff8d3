// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// Login exchanges a username and password for a JWT pair plus the
// account's role. The caller is responsible for persisting the token;
// the client does not store credentials.
func (client *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	if username == "" {
		return LoginResult{}, fmt.Errorf("railway: username is required")
	}
	if password == "" {
		return LoginResult{}, fmt.Errorf("railway: password is required")
	}

	request := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var result LoginResult
	if err := client.post(ctx, "/login", request, &result, requestOptions{}); err != nil {
		return LoginResult{}, err
	}
	return result, nil
}

// Signup registers a new account with the "user" role.
func (client *Client) Signup(ctx context.Context, username, password string) (SignupResult, error) {
	if username == "" {
		return SignupResult{}, fmt.Errorf("railway: username is required")
	}
	if password == "" {
		return SignupResult{}, fmt.Errorf("railway: password is required")
	}

	request := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{Username: username, Password: password}

	var result SignupResult
	if err := client.post(ctx, "/signup", request, &result, requestOptions{}); err != nil {
		return SignupResult{}, err
	}
	return result, nil
}
