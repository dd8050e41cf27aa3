// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// PageLimit is the fixed page size requested from the directory API.
const PageLimit = 100

// PageResponse is the envelope returned by GET <baseURL>?cursor=&limit=.
//
//	{ "response": { "results": [...], "remaining": 150, "cursor": 0 } }
type PageResponse struct {
	// Response is nil when the body has no "response" key, which callers
	// treat as a malformed response.
	Response *Page `json:"response"`
}

// Page is one page of the remote user directory.
type Page struct {
	// Results holds the records of the page in server order.
	Results []User `json:"results"`

	// Remaining is the number of records after this page.
	Remaining int `json:"remaining"`

	// Cursor is the offset of the first record of this page.
	Cursor int `json:"cursor"`
}

// PageState is the pagination state of the dashboard. The zero value is the
// state before the first successful fetch.
type PageState struct {
	Cursor    int
	Remaining int
	Limit     int
}

// NewPageState builds the state that replaces the previous one after a page
// has been fetched successfully.
func NewPageState(page Page) PageState {
	return PageState{
		Cursor:    page.Cursor,
		Remaining: page.Remaining,
		Limit:     PageLimit,
	}
}

// HasNext reports whether the Next control is enabled.
func (s PageState) HasNext() bool {
	return s.Remaining > 0
}

// HasPrevious reports whether the Previous control is enabled.
func (s PageState) HasPrevious() bool {
	return s.Cursor > 0
}

// NextCursor is the cursor requested by Next.
func (s PageState) NextCursor() int {
	return s.Cursor + s.limit()
}

// PreviousCursor is the cursor requested by Previous. It is not clamped and
// goes negative when 0 < Cursor < Limit.
func (s PageState) PreviousCursor() int {
	return s.Cursor - s.limit()
}

// TotalRecords approximates the directory size as Remaining + Limit.
// It is 0 before the first fetch.
func (s PageState) TotalRecords() int {
	return s.Remaining + s.Limit
}

// RangeLabel renders the "Showing X - Y users" line.
func (s PageState) RangeLabel() string {
	return fmt.Sprintf("Showing %d - %d users", s.Cursor+1, s.Cursor+s.limit())
}

func (s PageState) limit() int {
	if s.Limit <= 0 {
		return PageLimit
	}
	return s.Limit
}
