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

// Firmware is a signed firmware image attached to a product.
type Firmware struct {
	Prn          string    `json:"prn"`
	ProductPrn   string    `json:"product_prn"`
	UUID         string    `json:"uuid"`
	Version      string    `json:"version"`
	Platform     string    `json:"platform"`
	Architecture string    `json:"architecture"`
	Author       string    `json:"author,omitempty"`
	TTL          int       `json:"ttl,omitempty"`
	InsertedAt   time.Time `json:"inserted_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FirmwaresService manages firmwares.
type FirmwaresService service

type CreateFirmwareRequest struct {
	ProductPrn string `json:"product_prn"`

	// Firmware is the base64-encoded signed firmware image.
	Firmware string `json:"firmware"`

	TTL int `json:"ttl,omitempty"`
}

type FirmwarePage struct {
	Firmwares []Firmware `json:"firmwares"`
	NextPage  string     `json:"next_page,omitempty"`
}

func (s *FirmwaresService) Create(ctx context.Context, req CreateFirmwareRequest) (*Firmware, error) {
	var out struct {
		Firmware Firmware `json:"firmware"`
	}
	if err := s.client.do(ctx, http.MethodPost, "/firmwares", nil, req, &out); err != nil {
		return nil, err
	}
	return &out.Firmware, nil
}

func (s *FirmwaresService) Get(ctx context.Context, prn string) (*Firmware, error) {
	var out struct {
		Firmware Firmware `json:"firmware"`
	}
	if err := s.client.do(ctx, http.MethodGet, "/firmwares/"+url.PathEscape(prn), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.Firmware, nil
}

func (s *FirmwaresService) List(ctx context.Context, opts ListOptions) (*FirmwarePage, error) {
	var out FirmwarePage
	if err := s.client.do(ctx, http.MethodGet, "/firmwares", opts.Values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FirmwaresService) Delete(ctx context.Context, prn string) error {
	return s.client.do(ctx, http.MethodDelete, "/firmwares/"+url.PathEscape(prn), nil, nil, nil)
}
