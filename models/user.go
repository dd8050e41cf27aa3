// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Keys of the user record as they come from the directory API. Several of
// them carry an emoji marker, which encoding/json does not accept as a struct
// tag name, so [User] is decoded by hand.
const (
	UserKeyID                 = "_id"
	UserKeyFirstName          = "🔴 firstName"
	UserKeyLastName           = "🔴 lastName"
	UserKeyAuthentication     = "authentication"
	UserKeyMobile             = "🔴 mobile"
	UserKeyMainProgramme      = "current_main_programme"
	UserKeyIsProfileCompleted = "🔴 isProfileCompleted"
)

// Placeholder is rendered in place of any absent or empty field.
const Placeholder = "-"

// User is a single record of the remote user directory.
//
// The record is owned by the remote system: nothing here is validated on
// decode, every field may be absent. String accessors return an empty string
// for absent values; presentation code substitutes [Placeholder].
type User struct {
	// ID is the directory identifier ("_id").
	ID string

	// FirstName holds "🔴 firstName".
	FirstName string

	// LastName holds "🔴 lastName".
	LastName string

	// Authentication holds the nested "authentication" object.
	// Nil when the record has no such key or it is null.
	Authentication *Authentication

	// Mobile holds "🔴 mobile". Numbers are kept in their JSON text form.
	Mobile string

	// MainProgramme holds "current_main_programme".
	MainProgramme string

	// ProfileCompleted is the JavaScript truthiness of
	// "🔴 isProfileCompleted".
	ProfileCompleted bool

	raw json.RawMessage
}

// Authentication is the "authentication" object of a user record.
type Authentication struct {
	// Email is the nested "email" object. Nil when absent.
	Email *EmailAuthentication `json:"email,omitempty"`
}

// EmailAuthentication is the "authentication.email" object of a user record.
type EmailAuthentication struct {
	Email string `json:"email,omitempty"`
}

// HasEmailAuthentication reports whether the record carries the
// "authentication.email" object. The "email" value inside it may still be
// empty.
func (u User) HasEmailAuthentication() bool {
	return u.Authentication != nil && u.Authentication.Email != nil
}

// Email returns "authentication.email.email" or an empty string when any part
// of the path is missing.
func (u User) Email() string {
	if !u.HasEmailAuthentication() {
		return ""
	}
	return u.Authentication.Email.Email
}

// UnmarshalJSON decodes a directory record. Unknown keys are ignored but the
// full document is retained so the record can be re-encoded unchanged.
func (u *User) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("decode user record: %w", err)
	}

	decoded := User{raw: append(json.RawMessage(nil), b...)}

	var err error
	if decoded.ID, err = scalarText(fields[UserKeyID]); err != nil {
		return fmt.Errorf("decode %q: %w", UserKeyID, err)
	}
	if decoded.FirstName, err = scalarText(fields[UserKeyFirstName]); err != nil {
		return fmt.Errorf("decode %q: %w", UserKeyFirstName, err)
	}
	if decoded.LastName, err = scalarText(fields[UserKeyLastName]); err != nil {
		return fmt.Errorf("decode %q: %w", UserKeyLastName, err)
	}
	if decoded.Mobile, err = scalarText(fields[UserKeyMobile]); err != nil {
		return fmt.Errorf("decode %q: %w", UserKeyMobile, err)
	}
	if decoded.MainProgramme, err = scalarText(fields[UserKeyMainProgramme]); err != nil {
		return fmt.Errorf("decode %q: %w", UserKeyMainProgramme, err)
	}
	if decoded.ProfileCompleted, err = truthy(fields[UserKeyIsProfileCompleted]); err != nil {
		return fmt.Errorf("decode %q: %w", UserKeyIsProfileCompleted, err)
	}

	if auth, ok := fields[UserKeyAuthentication]; ok && !isNull(auth) {
		var a struct {
			Email json.RawMessage `json:"email"`
		}
		if err = json.Unmarshal(auth, &a); err != nil {
			return fmt.Errorf("decode %q: %w", UserKeyAuthentication, err)
		}
		decoded.Authentication = &Authentication{}

		if len(a.Email) > 0 && !isNull(a.Email) {
			var e struct {
				Email json.RawMessage `json:"email"`
			}
			if err = json.Unmarshal(a.Email, &e); err != nil {
				return fmt.Errorf("decode authentication.email: %w", err)
			}
			email, err := scalarText(e.Email)
			if err != nil {
				return fmt.Errorf("decode authentication.email.email: %w", err)
			}
			decoded.Authentication.Email = &EmailAuthentication{Email: email}
		}
	}

	*u = decoded
	return nil
}

// MarshalJSON returns the record as it was received. Records built in code
// are encoded from their fields using the directory key names.
func (u User) MarshalJSON() ([]byte, error) {
	if len(u.raw) > 0 {
		return u.raw, nil
	}

	doc := map[string]any{
		UserKeyID:                 u.ID,
		UserKeyIsProfileCompleted: u.ProfileCompleted,
	}
	putIfSet(doc, UserKeyFirstName, u.FirstName)
	putIfSet(doc, UserKeyLastName, u.LastName)
	putIfSet(doc, UserKeyMobile, u.Mobile)
	putIfSet(doc, UserKeyMainProgramme, u.MainProgramme)
	if u.Authentication != nil {
		doc[UserKeyAuthentication] = u.Authentication
	}

	return json.Marshal(doc)
}

func putIfSet(doc map[string]any, key, value string) {
	if value != "" {
		doc[key] = value
	}
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// scalarText renders a JSON scalar as display text. Objects and arrays are
// rejected.
func scalarText(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || isNull(raw) {
		return "", nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", err
	}

	switch value := v.(type) {
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case bool:
		return strconv.FormatBool(value), nil
	default:
		return "", fmt.Errorf("unexpected %T value", v)
	}
}

// truthy follows JavaScript truthiness for JSON values: false, 0, "", null
// and absent are false, everything else is true.
func truthy(raw json.RawMessage) (bool, error) {
	if len(raw) == 0 || isNull(raw) {
		return false, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, err
	}

	switch value := v.(type) {
	case bool:
		return value, nil
	case float64:
		return value != 0, nil
	case string:
		return value != "", nil
	default:
		return true, nil
	}
}
