// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

// Train is a read-only snapshot of a train as reported by the
// availability endpoint. AvailableSeats is computed server-side
// (capacity minus booked) and can differ between two fetches.
type Train struct {
	TrainID                  int64  `json:"train_id"`
	TrainName                string `json:"train_name"`
	Source                   string `json:"source"`
	Destination              string `json:"destination"`
	SeatCapacity             int    `json:"seat_capacity"`
	AvailableSeats           int    `json:"available_seats"`
	ArrivalTimeAtSource      string `json:"arrival_time_at_source"`
	ArrivalTimeAtDestination string `json:"arrival_time_at_destination"`
}

// TrainDraft is the payload for creating a new train. Times are
// "HH:MM[:SS]" strings, matching what the service stores.
type TrainDraft struct {
	TrainName                string `json:"train_name"`
	Source                   string `json:"source"`
	Destination              string `json:"destination"`
	SeatCapacity             int    `json:"seat_capacity"`
	ArrivalTimeAtSource      string `json:"arrival_time_at_source"`
	ArrivalTimeAtDestination string `json:"arrival_time_at_destination"`
}

// Booking is a confirmed reservation. Immutable once fetched: the
// client only displays bookings, it never mutates them.
type Booking struct {
	BookingID                int64  `json:"booking_id"`
	TrainID                  int64  `json:"train_id,omitempty"`
	TrainName                string `json:"train_name"`
	NoOfSeats                int    `json:"no_of_seats"`
	SeatNumbers              []int  `json:"seat_numbers"`
	ArrivalTimeAtSource      string `json:"arrival_time_at_source"`
	ArrivalTimeAtDestination string `json:"arrival_time_at_destination"`
}

// BookingReceipt is the response to a successful booking request.
type BookingReceipt struct {
	Message     string `json:"message"`
	BookingID   int64  `json:"booking_id"`
	SeatNumbers []int  `json:"seat_numbers"`
}

// LoginResult carries the credentials issued by the login endpoint.
// Role is "user" or "admin" and travels alongside the JWT pair.
type LoginResult struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	Role    string `json:"role"`
}

// SignupResult is the response to a successful account registration.
type SignupResult struct {
	Status     string `json:"status"`
	StatusCode int    `json:"status_code"`
	UserID     int64  `json:"user_id"`
}
