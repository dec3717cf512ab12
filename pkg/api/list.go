/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"net/url"
	"strconv"
)

// ListOptions are the cursor-pagination parameters shared by every
// list endpoint.
type ListOptions struct {
	// Limit caps the page size. Zero leaves the server default.
	Limit int

	// Order is "asc" or "desc" by insertion time.
	Order string

	// Search is the API's search expression, e.g.
	// `organization_prn:'prn:1:...' and name:'router-*'`.
	Search string

	// Page is the opaque next_page cursor from a previous response.
	Page string
}

// Values encodes the options as URL query parameters.
func (o ListOptions) Values() url.Values {
	q := url.Values{}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Order != "" {
		q.Set("order", o.Order)
	}
	if o.Search != "" {
		q.Set("search", o.Search)
	}
	if o.Page != "" {
		q.Set("page", o.Page)
	}
	return q
}
