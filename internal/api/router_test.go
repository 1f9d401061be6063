package api

import (
	"bytes"
	"context"
	"eld-trip-planner/internal/adapters/logstore"
	"eld-trip-planner/internal/adapters/repositories"
	"eld-trip-planner/internal/adapters/routing"
	"eld-trip-planner/internal/api/dto"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/platform/db"
	"eld-trip-planner/internal/services"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	_ "modernc.org/sqlite"
)

var (
	phoenix = domain.Coordinates{Lat: 33.45, Lon: -112.07}
	tucson  = domain.Coordinates{Lat: 32.22, Lon: -110.97}
	elPaso  = domain.Coordinates{Lat: 31.76, Lon: -106.49}
)

const tripBody = `{
  "current_location": "Phoenix, AZ",
  "pickup_location": "Tucson, AZ",
  "dropoff_location": "El Paso, TX",
  "current_cycle_used": 12
}`

func newTestRouter(t *testing.T, legs []routing.MockLeg) http.Handler {
	t.Helper()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	if err := repositories.InitSchema(context.Background(), conn, db.SQLite); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	trips := repositories.NewTripRepository(conn, db.SQLite)
	geo := routing.MockGeocoder{
		"Phoenix, AZ": phoenix,
		"Tucson, AZ":  tucson,
		"El Paso, TX": elPaso,
	}
	logs := logstore.NewMemoryLogStore()

	return NewRouter(Deps{
		Trips:          trips,
		Geocoder:       geo,
		Planner:        services.NewPlanner(trips, geo, routing.NewMockRoutingProvider(legs), logs, 0),
		Logs:           services.NewLogService(logs, trips),
		DB:             conn,
		AllowedOrigins: []string{"http://localhost:3000"},
		GridWidth:      800,
	})
}

func defaultLegs() []routing.MockLeg {
	return []routing.MockLeg{
		{From: phoenix, To: tucson, Meters: 180000, Seconds: 6 * 3600},
		{From: tucson, To: elPaso, Meters: 510000, Seconds: 4 * 3600},
	}
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func TestHealth(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("response has no request id")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestPlanTripEndToEnd(t *testing.T) {
	h := newTestRouter(t, defaultLegs())

	rec := do(t, h, http.MethodPost, "/plans", tripBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	plan := decode[dto.PlanResponse](t, rec)

	if len(plan.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(plan.Legs))
	}
	if plan.DrivingHours != 10 {
		t.Fatalf("driving hours = %v, want 10", plan.DrivingHours)
	}
	if plan.Markers.Dropoff.Latitude != elPaso.Lat {
		t.Fatalf("dropoff marker = %+v", plan.Markers.Dropoff)
	}
	if plan.Log.Mode != "generated" || len(plan.Log.Intervals) != 7 {
		t.Fatalf("log = %+v, want 7 generated intervals", plan.Log)
	}
	first := plan.Log.Intervals[0]
	last := plan.Log.Intervals[6]
	if first.StartTime != "00:00" || last.EndTime != "23:59" {
		t.Fatalf("log spans %s..%s, want 00:00..23:59", first.StartTime, last.EndTime)
	}
	if plan.Log.Intervals[2].Hours != 4.5 || plan.Log.Intervals[4].Hours != 5.5 {
		t.Fatalf("driving split = %v/%v, want 4.5/5.5", plan.Log.Intervals[2].Hours, plan.Log.Intervals[4].Hours)
	}

	// A generated log cannot take live status changes.
	rec = do(t, h, http.MethodPost, "/trips/"+plan.Trip.ID+"/log/status", `{"status":"driving"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status change on generated log = %d, want 409", rec.Code)
	}

	rec = do(t, h, http.MethodGet, "/trips/"+plan.Trip.ID+"/log.svg", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("svg status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Fatalf("content type = %q, want image/svg+xml", ct)
	}
}

func TestPlanTripRouteFailureIsNotFatal(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/plans", tripBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	plan := decode[dto.PlanResponse](t, rec)
	if plan.RouteError == "" {
		t.Fatalf("expected route_error")
	}
	if plan.Log.Mode != "interactive" {
		t.Fatalf("mode = %q, want interactive", plan.Log.Mode)
	}
}

func TestPlanTripGeocodeFailure(t *testing.T) {
	h := newTestRouter(t, defaultLegs())

	body := strings.Replace(tripBody, "El Paso, TX", "Atlantis", 1)
	rec := do(t, h, http.MethodPost, "/plans", body)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	res := decode[map[string]string](t, rec)
	if res["error"] != "Failed to process trip data." {
		t.Fatalf("error = %q, want the single trip processing message", res["error"])
	}
}

func TestCreateTripValidation(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		name string
		body string
	}{
		{"missing cycle", `{"current_location":"a","pickup_location":"b","dropoff_location":"c"}`},
		{"cycle too high", `{"current_location":"a","pickup_location":"b","dropoff_location":"c","current_cycle_used":71}`},
		{"blank location", `{"current_location":"  ","pickup_location":"b","dropoff_location":"c","current_cycle_used":1}`},
		{"unknown field", `{"current_location":"a","pickup_location":"b","dropoff_location":"c","current_cycle_used":1,"x":1}`},
		{"two objects", `{"current_location":"a","pickup_location":"b","dropoff_location":"c","current_cycle_used":1}{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/trips", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestInteractiveLogFlow(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodPost, "/trips", tripBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	trip := decode[dto.TripResponse](t, rec)
	base := "/trips/" + trip.ID

	rec = do(t, h, http.MethodGet, base, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get trip status = %d, want 200", rec.Code)
	}

	for _, status := range []string{"driving", "driving", "off-duty"} {
		rec = do(t, h, http.MethodPost, base+"/log/status", `{"status":"`+status+`"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("set %s status = %d, want 200: %s", status, rec.Code, rec.Body.String())
		}
	}
	l := decode[dto.LogResponse](t, rec)
	if len(l.Intervals) != 3 {
		t.Fatalf("intervals = %d, want 3 (repeats are kept)", len(l.Intervals))
	}
	if l.Intervals[2].EndTime != "" || l.Intervals[1].EndTime == "" {
		t.Fatalf("only the last interval should be open: %+v", l.Intervals)
	}
	if l.CurrentStatus != "off-duty" {
		t.Fatalf("current status = %q, want off-duty", l.CurrentStatus)
	}

	rec = do(t, h, http.MethodPost, base+"/log/status", `{"status":"napping"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unknown status = %d, want 400", rec.Code)
	}

	rec = do(t, h, http.MethodPost, base+"/log/remarks", `{"time":"10:30","location":"Tucson, AZ","description":"Fuel"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add remark status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	rec = do(t, h, http.MethodPost, base+"/log/remarks", `{"time":"25:00","location":"x","description":"y"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad remark time = %d, want 400", rec.Code)
	}

	rec = do(t, h, http.MethodPut, base+"/log/header", `{"driver_name":"J. Rivera","date":"03/02/2026"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("header status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, base+"/log/scene?width=1000", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("scene status = %d, want 200", rec.Code)
	}
	scene := decode[dto.SceneResponse](t, rec)
	if scene.Width != 1000 || len(scene.Remarks) != 1 {
		t.Fatalf("scene = width %d remarks %d, want 1000 and 1", scene.Width, len(scene.Remarks))
	}
	if !strings.HasSuffix(scene.Remarks[0].Text, "Tucson, AZ: Fuel") {
		t.Fatalf("remark text = %q", scene.Remarks[0].Text)
	}

	rec = do(t, h, http.MethodGet, base+"/log/scene?width=10", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("narrow scene = %d, want 400", rec.Code)
	}

	rec = do(t, h, http.MethodPost, base+"/log/reset", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("reset status = %d, want 200", rec.Code)
	}
	l = decode[dto.LogResponse](t, rec)
	if len(l.Intervals) != 0 || l.CurrentStatus != "off-duty" {
		t.Fatalf("reset log = %+v, want empty off-duty", l)
	}
}

func TestTripNotFoundAndBadID(t *testing.T) {
	h := newTestRouter(t, nil)

	if rec := do(t, h, http.MethodGet, "/trips/not-a-uuid", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id = %d, want 400", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/trips/8c7f3f5e-2b61-4a57-9d0b-2f5e8f0b9d11/log", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown log = %d, want 404", rec.Code)
	}
}

func TestGeocodeEndpoint(t *testing.T) {
	h := newTestRouter(t, nil)

	rec := do(t, h, http.MethodGet, "/geocode?address=Tucson,%20AZ", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	c := decode[dto.CoordinateResponse](t, rec)
	if c.Latitude != tucson.Lat || c.Longitude != tucson.Lon {
		t.Fatalf("coordinates = %+v, want %+v", c, tucson)
	}

	if rec := do(t, h, http.MethodGet, "/geocode", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("missing address = %d, want 400", rec.Code)
	}
}

func TestRequestIDPropagates(t *testing.T) {
	h := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", bytes.NewReader(nil))
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("request id = %q, want abc-123", got)
	}
}
