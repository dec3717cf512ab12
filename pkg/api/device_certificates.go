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

// DeviceCertificate is an X.509 client certificate a device
// authenticates with.
type DeviceCertificate struct {
	Prn          string    `json:"prn"`
	DevicePrn    string    `json:"device_prn"`
	SerialNumber string    `json:"serial_number"`
	NotBefore    time.Time `json:"not_before"`
	NotAfter     time.Time `json:"not_after"`
	InsertedAt   time.Time `json:"inserted_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DeviceCertificatesService manages device certificates.
type DeviceCertificatesService service

type CreateDeviceCertificateRequest struct {
	// Certificate is the base64-encoded PEM of the client
	// certificate.
	Certificate string `json:"certificate"`
}

type DeviceCertificatePage struct {
	DeviceCertificates []DeviceCertificate `json:"device_certificates"`
	NextPage           string              `json:"next_page,omitempty"`
}

func (s *DeviceCertificatesService) Create(ctx context.Context, devicePrn string, req CreateDeviceCertificateRequest) (*DeviceCertificate, error) {
	var out struct {
		DeviceCertificate DeviceCertificate `json:"device_certificate"`
	}
	path := "/devices/" + url.PathEscape(devicePrn) + "/certificates"
	if err := s.client.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}
	return &out.DeviceCertificate, nil
}

func (s *DeviceCertificatesService) Get(ctx context.Context, prn string) (*DeviceCertificate, error) {
	var out struct {
		DeviceCertificate DeviceCertificate `json:"device_certificate"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/device_certificates/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.DeviceCertificate, nil
}

func (s *DeviceCertificatesService) List(ctx context.Context, devicePrn string, opts ListOptions) (*DeviceCertificatePage, error) {
	var out DeviceCertificatePage
	path := "/devices/" + url.PathEscape(devicePrn) + "/certificates"
	if err := s.client.do(ctx, http.MethodGet, path, opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *DeviceCertificatesService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/device_certificates/"+url.PathEscape(prn), nil, nil, nil)
}
