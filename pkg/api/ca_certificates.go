/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// CaCertificate is a CA trusted for just-in-time device provisioning.
type CaCertificate struct {
	Prn          string    `json:"prn"`
	Description  string    `json:"description,omitempty"`
	NotBefore    time.Time `json:"not_before"`
	NotAfter     time.Time `json:"not_after"`
	SerialNumber string    `json:"serial_number"`
	InsertedAt   time.Time `json:"inserted_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CaCertificatesService manages CA certificates.
type CaCertificatesService service

type CreateCaCertificateRequest struct {
	// Certificate is the base64-encoded PEM of the CA certificate.
	Certificate string `json:"certificate"`

	// VerificationCertificate is the base64-encoded PEM of the
	// proof-of-possession certificate issued against the
	// verification code.
	VerificationCertificate string `json:"verification_certificate"`

	Description string `json:"description,omitempty"`
}

type UpdateCaCertificateRequest struct {
	Description *string `json:"description,omitempty"`
}

type CaCertificatePage struct {
	CaCertificates []CaCertificate `json:"ca_certificates"`
	NextPage       string          `json:"next_page,omitempty"`
}

// CreateVerificationCode returns a fresh code to embed in a
// verification certificate's common name.
func (s *CaCertificatesService) CreateVerificationCode(ctx context.Context) (string, error) {
	var out struct {
		VerificationCode string `json:"verification_code"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/ca_certificates/verification_codes", nil, struct{}{}, &out); err != nil {
		return "", err
	}
	return out.VerificationCode, nil
}

func (s *CaCertificatesService) Create(ctx context.Context, req CreateCaCertificateRequest) (*CaCertificate, error) {
	var out struct {
		CaCertificate CaCertificate `json:"ca_certificate"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/ca_certificates", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.CaCertificate, nil
}

func (s *CaCertificatesService) Get(ctx context.Context, prn string) (*CaCertificate, error) {
	var out struct {
		CaCertificate CaCertificate `json:"ca_certificate"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/ca_certificates/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.CaCertificate, nil
}

func (s *CaCertificatesService) List(ctx context.Context, opts ListOptions) (*CaCertificatePage, error) {
	var out CaCertificatePage
	if err := s.client.do(ctx, http.MethodGet, "/ca_certificates", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CaCertificatesService) Update(ctx context.Context, prn string, req UpdateCaCertificateRequest) (*CaCertificate, error) {
	var out struct {
		CaCertificate CaCertificate `json:"ca_certificate"`
	}
	if err := s.client.do(ctx, http.MethodPatch, "/ca_certificates/"+url.PathEscape(prn), nil, req, &out); err != nil {
		return nil, err
	}
	return &out.CaCertificate, nil
}

func (s *CaCertificatesService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/ca_certificates/"+url.PathEscape(prn), nil, nil, nil)
}
