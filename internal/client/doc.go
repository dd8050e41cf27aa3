// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive dashboard runtime.
//
// It wires the terminal UI, the client services and the local endpoint
// history into a single process lifecycle.
package client
