package backend

import (
	"bytes"
	"context"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/obs"
	"eld-trip-planner/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to a remote trip backend that stores trips and geocodes
// addresses. It implements TripRepository and Geocoder.
type Client struct {
	session *http.Client
	baseURL string
}

func NewClient(baseURL string, session *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("trip backend url is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("trip backend url: %w", err)
	}
	if session == nil {
		session = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{session: session, baseURL: baseURL}, nil
}

type tripPayload struct {
	ID               string     `json:"id,omitempty"`
	CurrentLocation  string     `json:"current_location"`
	PickupLocation   string     `json:"pickup_location"`
	DropoffLocation  string     `json:"dropoff_location"`
	CurrentCycleUsed float64    `json:"current_cycle_used"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

type geocodePayload struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("trip backend: Code %d: %s", e.Code, e.Body)
}

func (c *Client) CreateTrip(ctx context.Context, trip domain.Trip) (_ *domain.TripRecord, err error) {
	defer obs.Time(ctx, "backend.CreateTrip")(&err)
	start := time.Now()
	defer func() { obs.ObserveCall("backend.create_trip", start, err) }()

	body, err := json.Marshal(tripPayload{
		CurrentLocation:  trip.CurrentLocation,
		PickupLocation:   trip.PickupLocation,
		DropoffLocation:  trip.DropoffLocation,
		CurrentCycleUsed: trip.CurrentCycleUsed,
	})
	if err != nil {
		return nil, fmt.Errorf("create trip: encode: %w", err)
	}

	var out tripPayload
	if err := c.call(ctx, http.MethodPost, c.baseURL+"/trips/", bytes.NewReader(body), &out); err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return out.record()
}

func (c *Client) GetTrip(ctx context.Context, id uuid.UUID) (_ *domain.TripRecord, err error) {
	defer obs.Time(ctx, "backend.GetTrip")(&err)

	var out tripPayload
	err = c.call(ctx, http.MethodGet, c.baseURL+"/trips/"+id.String()+"/", nil, &out)
	var se *statusError
	if errors.As(err, &se) && se.Code == http.StatusNotFound {
		return nil, fmt.Errorf("get trip %s: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get trip %s: %w", id, err)
	}

	return out.record()
}

func (c *Client) Geocode(ctx context.Context, address string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "backend.Geocode")(&err)
	start := time.Now()
	defer func() { obs.ObserveCall("backend.geocode", start, err) }()

	if strings.TrimSpace(address) == "" {
		return domain.Coordinates{}, errors.New("geocode: address must be non-empty")
	}

	endpoint := c.baseURL + "/geocode/?address=" + url.QueryEscape(address)

	var out geocodePayload
	if err := c.call(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", address, err)
	}
	if out.Latitude == nil || out.Longitude == nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: response has no coordinates", address)
	}

	return domain.Coordinates{Lat: *out.Latitude, Lon: *out.Longitude}, nil
}

func (c *Client) call(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &statusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (p tripPayload) record() (*domain.TripRecord, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, fmt.Errorf("trip backend returned id %q: %w", p.ID, err)
	}

	rec := &domain.TripRecord{
		ID: id,
		Trip: domain.Trip{
			CurrentLocation:  p.CurrentLocation,
			PickupLocation:   p.PickupLocation,
			DropoffLocation:  p.DropoffLocation,
			CurrentCycleUsed: p.CurrentCycleUsed,
		},
		CreatedAt: time.Now().UTC(),
	}
	if p.CreatedAt != nil {
		rec.CreatedAt = *p.CreatedAt
	}
	return rec, nil
}
