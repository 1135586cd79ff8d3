// Copyright 2026 The Railbook Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestAvailability_EncodesStations(t *testing.T) {
	var query string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode([]Train{
			{TrainID: 3, TrainName: "Shatabdi Express", Source: "New Delhi", Destination: "Mumbai Central", AvailableSeats: 42},
		})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{})
	trains, err := client.Availability(context.Background(), "New Delhi", "Mumbai Central")
	if err != nil {
		t.Fatalf("Availability() error: %v", err)
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		t.Fatalf("parsing query %q: %v", query, err)
	}
	if values.Get("source") != "New Delhi" || values.Get("destination") != "Mumbai Central" {
		t.Errorf("query = %q, want encoded source and destination", query)
	}
	if len(trains) != 1 || trains[0].TrainID != 3 {
		t.Errorf("trains = %+v, want the single decoded train", trains)
	}
}

func TestAvailability_RequiresBothStations(t *testing.T) {
	client := newTestClient(t, "http://localhost:1", Config{})
	if _, err := client.Availability(context.Background(), "", "Kolkata"); err == nil {
		t.Error("Availability with empty source should fail without network access")
	}
	if _, err := client.Availability(context.Background(), "Howrah", ""); err == nil {
		t.Error("Availability with empty destination should fail without network access")
	}
}

func TestBookSeats_RequestShape(t *testing.T) {
	var method, path, idempotencyKey string
	var requestBody map[string]int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		idempotencyKey = r.Header.Get("X-Idempotency-Key")
		json.NewDecoder(r.Body).Decode(&requestBody)
		json.NewEncoder(w).Encode(BookingReceipt{Message: "booked", BookingID: 77, SeatNumbers: []int{4, 5}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{Tokens: &staticTokens{token: "tok"}})
	receipt, err := client.BookSeats(context.Background(), 12, 2)
	if err != nil {
		t.Fatalf("BookSeats() error: %v", err)
	}

	if method != http.MethodPost || path != "/trains/12/book" {
		t.Errorf("request = %s %s, want POST /trains/12/book", method, path)
	}
	if requestBody["no_of_seats"] != 2 {
		t.Errorf("body = %v, want no_of_seats=2", requestBody)
	}
	if idempotencyKey == "" {
		t.Error("booking request missing X-Idempotency-Key")
	}
	if receipt.BookingID != 77 || len(receipt.SeatNumbers) != 2 {
		t.Errorf("receipt = %+v, want booking 77 with two seats", receipt)
	}
}

func TestBookSeats_FreshIdempotencyKeyPerCall(t *testing.T) {
	var keys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("X-Idempotency-Key"))
		json.NewEncoder(w).Encode(BookingReceipt{BookingID: 1})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{})
	for i := 0; i < 2; i++ {
		if _, err := client.BookSeats(context.Background(), 1, 1); err != nil {
			t.Fatalf("BookSeats() error: %v", err)
		}
	}
	if len(keys) != 2 || keys[0] == keys[1] {
		t.Errorf("idempotency keys = %v, want two distinct values", keys)
	}
}

func TestCreateTrain_ReturnsID(t *testing.T) {
	var received TrainDraft
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trains/create" {
			t.Errorf("path = %q, want /trains/create", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`{"message": "train created", "train_id": 9}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{AdminKey: "k"})
	draft := TrainDraft{TrainName: "Rajdhani", Source: "Patna", Destination: "New Delhi", SeatCapacity: 80}
	trainID, err := client.CreateTrain(context.Background(), draft)
	if err != nil {
		t.Fatalf("CreateTrain() error: %v", err)
	}
	if trainID != 9 {
		t.Errorf("trainID = %d, want 9", trainID)
	}
	if received.TrainName != "Rajdhani" || received.SeatCapacity != 80 {
		t.Errorf("server received %+v, want the draft fields", received)
	}
}

func TestUpdateSeatCapacity_ReturnsNewCapacity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/trains/4/update-seats" {
			t.Errorf("request = %s %s, want PUT /trains/4/update-seats", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"message": "updated", "train_id": 4, "new_capacity": 150}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{AdminKey: "k"})
	newCapacity, err := client.UpdateSeatCapacity(context.Background(), 4, 150)
	if err != nil {
		t.Fatalf("UpdateSeatCapacity() error: %v", err)
	}
	if newCapacity != 150 {
		t.Errorf("newCapacity = %d, want 150", newCapacity)
	}
}

func TestDeleteTrain_Method(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Write([]byte(`{"message": "deleted"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, Config{AdminKey: "k"})
	if err := client.DeleteTrain(context.Background(), 21); err != nil {
		t.Fatalf("DeleteTrain() error: %v", err)
	}
	if method != http.MethodDelete || path != "/trains/21" {
		t.Errorf("request = %s %s, want DELETE /trains/21", method, path)
	}
}
