// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Query parsing errors returned by parsePageQuery.
var (
	ErrInvalidCursor = errors.New("cursor must be a non-negative integer")
	ErrInvalidLimit  = errors.New("limit must be an integer")
)
