/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"net/http"
)

// User is the authenticated account.
type User struct {
	Prn      string `json:"prn"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UsersService exposes the authenticated user.
type UsersService service

// Me returns the account the current API key belongs to.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/users/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
