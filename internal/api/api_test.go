package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gearkit/cycloid"
	"github.com/gearkit/cycloid/store"
)

const validBody = `{
	"pin_count": 12,
	"pin_circle_radius": 50,
	"pin_radius": 5,
	"eccentricity": 1.5,
	"hole_radius": 10,
	"resolution": 180,
	"tolerance": 0.15,
	"hole_tolerance": 0.1,
	"output_pin_count": 6,
	"output_pin_radius": 4,
	"output_pin_circle_radius": 25
}`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := &Server{Designer: cycloid.NewDesigner()}
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) (*http.Response, envelope) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp, env
}

func TestProfileEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, env := postJSON(t, srv.URL+"/api/v1/profile", validBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %+v", resp.StatusCode, env)
	}
	data := env.Data.(map[string]any)
	points := data["points"].([]any)
	if len(points) == 0 || len(points) > 181 {
		t.Errorf("got %d points", len(points))
	}
	if env.RequestID == "" {
		t.Error("request id missing from envelope")
	}
}

func TestQualityEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, env := postJSON(t, srv.URL+"/api/v1/quality", validBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := env.Data.(map[string]any)
	if valid, ok := data["valid"].(bool); !ok || !valid {
		t.Errorf("quality = %+v, want valid", data)
	}
}

func TestPhysicsEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, env := postJSON(t, srv.URL+"/api/v1/physics", validBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := env.Data.(map[string]any)
	if _, ok := data["max_pressure_angle"].(float64); !ok {
		t.Errorf("physics = %+v, missing max_pressure_angle", data)
	}
	if _, ok := data["undercut"].(bool); !ok {
		t.Errorf("physics = %+v, missing undercut flag", data)
	}
}

func TestPathEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, env := postJSON(t, srv.URL+"/api/v1/path", validBody)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	data := env.Data.(map[string]any)
	if rule := data["fill_rule"]; rule != "evenodd" {
		t.Errorf("fill_rule = %v, want evenodd", rule)
	}
	if cmds := data["commands"].([]any); len(cmds) == 0 {
		t.Error("no path commands")
	}
}

func TestRejectsInvalidParameters(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"garbage body", "{", http.StatusBadRequest},
		{"too few pins", `{"pin_count": 2, "pin_circle_radius": 50, "pin_radius": 5}`, http.StatusUnprocessableEntity},
		{"zero radius", `{"pin_count": 12, "pin_circle_radius": 0, "pin_radius": 5}`, http.StatusUnprocessableEntity},
		{"negative tolerance", `{"pin_count": 12, "pin_circle_radius": 50, "pin_radius": 5, "tolerance": -1}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := postJSON(t, srv.URL+"/api/v1/quality", tt.body)
			if resp.StatusCode != tt.want {
				t.Errorf("status = %d, want %d (%+v)", resp.StatusCode, tt.want, env)
			}
		})
	}
}

func TestExportEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Post(srv.URL+"/api/v1/export.dxf", "application/json", strings.NewReader(validBody))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/dxf" {
		t.Errorf("content type = %s", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.HasSuffix(string(body), "0\nEOF\n") {
		t.Error("document must end with EOF marker")
	}
}

func TestPreviewEndpoint(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Post(srv.URL+"/api/v1/preview.png?width=64&height=64", "application/json", strings.NewReader(validBody))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %s", ct)
	}
}

func TestAdviseWithoutAdvisor(t *testing.T) {
	srv := testServer(t)
	resp, _ := postJSON(t, srv.URL+"/api/v1/advise", `{"parameters": `+validBody+`, "min_wall_thickness": 3}`)
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestPresetsWithoutStore(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/v1/presets")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestPresetLifecycle(t *testing.T) {
	db, err := store.Open(t.TempDir() + "/presets.db")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s := &Server{Designer: cycloid.NewDesigner(), Presets: db}
	srv := httptest.NewServer(s.Router())
	t.Cleanup(srv.Close)

	put, err := http.NewRequest(http.MethodPut, srv.URL+"/api/v1/presets/default", strings.NewReader(validBody))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(put)
	if err != nil {
		t.Fatalf("PUT: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("PUT status = %d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/v1/presets/default")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := env.Data.(map[string]any)
	if data["name"] != "default" {
		t.Errorf("preset = %+v", data)
	}

	resp404, err := http.Get(srv.URL + "/api/v1/presets/missing")
	if err != nil {
		t.Fatalf("GET missing: %v", err)
	}
	resp404.Body.Close()
	if resp404.StatusCode != http.StatusNotFound {
		t.Errorf("missing preset status = %d, want 404", resp404.StatusCode)
	}
}
