// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the journal command-line front end on top of
// [service.Services].
//
// Every command except "version" loads the configuration, opens the
// journal and, when a PIN has been set, asks for it before doing anything.
// "pin status" and "pin verify" skip the PIN prompt.
package cli
