// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package bookingui is the interactive terminal UI for searching
// trains, booking seats, reviewing bookings, and managing inventory.
//
// The model is a page machine mirroring the flow of the railway web
// client: search → results → booking → confirmation, with separate
// pages for the user's booking history, login, and the admin panel.
// Each page owns its view state exclusively; pages communicate only by
// navigation. Network calls run as bubbletea commands under a per-page
// context that is cancelled on navigation, and their results carry a
// generation counter so a response arriving after the user has moved
// on is discarded instead of mutating a dismissed page.
package bookingui
