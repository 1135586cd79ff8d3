// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

// Package station provides the static station catalog backing the
// search form's autocomplete. The catalog is an in-memory list — no
// persistence, no network call.
package station

import "strings"

// Catalog is the fixed set of stations offered as suggestions.
var Catalog = []string{
	"Asansol",
	"Howrah",
	"Durgapur",
	"Sealdah",
	"New Delhi",
	"Mumbai Central",
	"Chennai Central",
	"Kolkata",
	"Bangalore City",
	"Hyderabad",
	"Pune",
	"Ahmedabad",
	"Jaipur",
	"Lucknow",
	"Kanpur Central",
	"Nagpur",
	"Bhopal",
	"Indore",
	"Patna",
	"Guwahati",
}

// Suggest returns the stations matching query by case-insensitive
// substring, excluding any station that is an exact (case-insensitive)
// match of exclude. The exclusion keeps the source and destination
// suggestion lists mutually exclusive of each other's selection.
//
// An empty query matches every station; exclusion still applies.
func Suggest(query, exclude string) []string {
	loweredQuery := strings.ToLower(query)
	loweredExclude := strings.ToLower(exclude)

	var matches []string
	for _, name := range Catalog {
		lowered := strings.ToLower(name)
		if loweredExclude != "" && lowered == loweredExclude {
			continue
		}
		if strings.Contains(lowered, loweredQuery) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Known reports whether name is in the catalog (case-insensitive).
// Search accepts free text, so this is advisory — an unknown station
// simply yields no availability results from the server.
func Known(name string) bool {
	lowered := strings.ToLower(name)
	for _, station := range Catalog {
		if strings.ToLower(station) == lowered {
			return true
		}
	}
	return false
}
