/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"net/http"
	"net/url"
)

// OrganizationUser is a user's membership in the organization.
type OrganizationUser struct {
	Prn      string `json:"prn"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}

// OrganizationUsersService manages organization memberships.
type OrganizationUsersService service

type AddOrganizationUserRequest struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type UpdateOrganizationUserRequest struct {
	Role string `json:"role"`
}

type OrganizationUserPage struct {
	OrganizationUsers []OrganizationUser `json:"organization_users"`
	NextPage          string             `json:"next_page,omitempty"`
}

func (s *OrganizationUsersService) Add(ctx context.Context, req AddOrganizationUserRequest) (*OrganizationUser, error) {
	var out struct {
		OrganizationUser OrganizationUser `json:"organization_user"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/organization_users", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.OrganizationUser, nil
}

func (s *OrganizationUsersService) Get(ctx context.Context, userPrn string) (*OrganizationUser, error) {
	var out struct {
		OrganizationUser OrganizationUser `json:"organization_user"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/organization_users/"+url.PathEscape(userPrn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.OrganizationUser, nil
}

func (s *OrganizationUsersService) List(ctx context.Context, opts ListOptions) (*OrganizationUserPage, error) {
	var out OrganizationUserPage
	if err := s.client.do(ctx, http.MethodGet, "/organization_users", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *OrganizationUsersService) Update(ctx context.Context, userPrn string, req UpdateOrganizationUserRequest) (*OrganizationUser, error) {
	var out struct {
		OrganizationUser OrganizationUser `json:"organization_user"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/organization_users/"+url.PathEscape(userPrn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.OrganizationUser, nil
}

func (s *OrganizationUsersService) Remove(ctx context.Context, userPrn string) error {
	return s.client.do(ctx, http.MethodDelete, "/organization_users/"+url.PathEscape(userPrn), nil, nil, nil)
}
