// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// GetBooking fetches one booking by id. The service scopes bookings to
// the authenticated user, so a valid id owned by someone else returns
// not-found rather than forbidden.
func (client *Client) GetBooking(ctx context.Context, bookingID int64) (Booking, error) {
	var booking Booking
	path := fmt.Sprintf("/bookings/%d", bookingID)
	if err := client.get(ctx, path, &booking, requestOptions{}); err != nil {
		return Booking{}, err
	}
	return booking, nil
}

// MyBookings lists every booking belonging to the authenticated user,
// newest last (service insertion order).
func (client *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var bookings []Booking
	if err := client.get(ctx, "/bookings/mine", &bookings, requestOptions{}); err != nil {
		return nil, err
	}
	return bookings, nil
}
