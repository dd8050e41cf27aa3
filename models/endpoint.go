// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Endpoint is a base URL the user has set at some point, kept in the local
// history database.
type Endpoint struct {
	URL    string    `json:"url"`
	UsedAt time.Time `json:"used_at"`
}
