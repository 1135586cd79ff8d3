// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
)

// Availability lists trains running between source and destination,
// with remaining open seats. This is the public search endpoint: no
// credentials are required, though any present token is still sent.
func (client *Client) Availability(ctx context.Context, source, destination string) ([]Train, error) {
	if source == "" || destination == "" {
		return nil, fmt.Errorf("railway: availability requires both source and destination")
	}

	query := url.Values{}
	query.Set("source", source)
	query.Set("destination", destination)

	var trains []Train
	if err := client.get(ctx, "/trains/availability?"+query.Encode(), &trains, requestOptions{}); err != nil {
		return nil, err
	}
	return trains, nil
}

// ListAllTrains fetches the full train inventory. The unfiltered form
// of the availability endpoint is admin-only, so the request carries
// the admin key.
func (client *Client) ListAllTrains(ctx context.Context) ([]Train, error) {
	var trains []Train
	if err := client.get(ctx, "/trains/availability", &trains, requestOptions{admin: true}); err != nil {
		return nil, err
	}
	return trains, nil
}

// CreateTrain registers a new train and returns its id.
func (client *Client) CreateTrain(ctx context.Context, draft TrainDraft) (int64, error) {
	var response struct {
		Message string `json:"message"`
		TrainID int64  `json:"train_id"`
	}
	if err := client.post(ctx, "/trains/create", draft, &response, requestOptions{admin: true}); err != nil {
		return 0, err
	}
	return response.TrainID, nil
}

// DeleteTrain removes a train from the inventory. Callers are expected
// to have confirmed the deletion with the user first — this method
// issues the request unconditionally.
func (client *Client) DeleteTrain(ctx context.Context, trainID int64) error {
	return client.delete(ctx, fmt.Sprintf("/trains/%d", trainID), requestOptions{admin: true})
}

// UpdateSeatCapacity sets a train's total seat capacity and returns the
// server-confirmed new value.
func (client *Client) UpdateSeatCapacity(ctx context.Context, trainID int64, capacity int) (int, error) {
	request := struct {
		SeatCapacity int `json:"seat_capacity"`
	}{SeatCapacity: capacity}

	var response struct {
		Message     string `json:"message"`
		TrainID     int64  `json:"train_id"`
		NewCapacity int    `json:"new_capacity"`
	}
	path := fmt.Sprintf("/trains/%d/update-seats", trainID)
	if err := client.put(ctx, path, request, &response, requestOptions{admin: true}); err != nil {
		return 0, err
	}
	return response.NewCapacity, nil
}

// BookSeats reserves seats on a train and returns the booking receipt.
// seats must already be within the service's per-booking limit; the UI
// clamps it, and the server rejects out-of-range values regardless.
//
// Each call carries a freshly generated X-Idempotency-Key so a server
// that deduplicates can collapse an accidental double submission. The
// client itself still makes exactly one attempt.
func (client *Client) BookSeats(ctx context.Context, trainID int64, seats int) (BookingReceipt, error) {
	request := struct {
		NoOfSeats int `json:"no_of_seats"`
	}{NoOfSeats: seats}

	var receipt BookingReceipt
	path := fmt.Sprintf("/trains/%d/book", trainID)
	options := requestOptions{
		headers: map[string]string{"X-Idempotency-Key": uuid.NewString()},
	}
	if err := client.post(ctx, path, request, &receipt, options); err != nil {
		return BookingReceipt{}, err
	}
	return receipt, nil
}
