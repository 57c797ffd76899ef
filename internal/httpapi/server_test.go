package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func newTestApp(t *testing.T, logOut io.Writer) *testApp {
	t.Helper()
	cfg := config.NewServerConfig()
	cfg.AccessLog = logOut != nil
	return &testApp{t: t, app: New(cfg, logOut)}
}

type testApp struct {
	t   *testing.T
	app interface {
		Test(req *http.Request, msTimeout ...int) (*http.Response, error)
	}
}

func (ta *testApp) do(method, path string, body interface{}) (*http.Response, []byte) {
	ta.t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			ta.t.Fatalf("marshal request: %v", err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		ta.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		ta.t.Fatalf("read body: %v", err)
	}
	return resp, data
}

func decode(t *testing.T, data []byte, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("invalid JSON %q: %v", data, err)
	}
}

func TestHealth(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, body := ta.do(http.MethodGet, "/api/health", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var got map[string]string
	decode(t, body, &got)
	if got["status"] != "ok" {
		t.Errorf("status field = %q, want ok", got["status"])
	}
	if got["requestId"] != resp.Header.Get(RequestIDHeader) {
		t.Errorf("body request ID %q differs from header %q", got["requestId"], resp.Header.Get(RequestIDHeader))
	}
	if _, err := uuid.Parse(got["requestId"]); err != nil {
		t.Errorf("request ID %q is not a UUID", got["requestId"])
	}
}

func TestRequestID_KeepsValidIncoming(t *testing.T) {
	ta := newTestApp(t, nil)
	id := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, id)
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got != id {
		t.Errorf("X-Request-ID = %q, want %q", got, id)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	resp, err = ta.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	if got := resp.Header.Get(RequestIDHeader); got == "not-a-uuid" {
		t.Error("malformed incoming request ID was kept")
	}
}

func TestMoves(t *testing.T) {
	ta := newTestApp(t, nil)

	tests := []struct {
		name      string
		req       PositionRequest
		wantMoves []string
		wantTurn  string
		winner    string
	}{
		{
			name:      "initial",
			req:       PositionRequest{},
			wantMoves: []string{"21-17", "22-18", "22-17", "23-19", "23-18", "24-20", "24-19"},
			wantTurn:  "white",
		},
		{
			name:      "forced capture",
			req:       PositionRequest{Position: "W:W11:B8"},
			wantMoves: []string{"11x4"},
			wantTurn:  "white",
		},
		{
			name:      "selected piece with square names",
			req:       PositionRequest{Square: "22", SquareNames: true},
			wantMoves: []string{"c3-d4", "c3-b4"},
			wantTurn:  "white",
		},
		{
			name:      "game over",
			req:       PositionRequest{Position: "B:W18"},
			wantMoves: []string{},
			wantTurn:  "black",
			winner:    "white",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := ta.do(http.MethodPost, "/api/moves", tt.req)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, body %s", resp.StatusCode, body)
			}

			var got struct {
				RequestID string            `json:"requestId"`
				Turn      string            `json:"turn"`
				Winner    string            `json:"winner"`
				Moves     []output.JSONMove `json:"moves"`
			}
			decode(t, body, &got)

			notations := make([]string, 0, len(got.Moves))
			for _, m := range got.Moves {
				notations = append(notations, m.Notation)
			}
			testutil.AssertEqual(t, notations, tt.wantMoves)
			if got.Turn != tt.wantTurn || got.Winner != tt.winner {
				t.Errorf("turn, winner = %q, %q; want %q, %q", got.Turn, got.Winner, tt.wantTurn, tt.winner)
			}
			if got.RequestID == "" {
				t.Error("missing requestId")
			}
		})
	}
}

func TestMoves_Errors(t *testing.T) {
	ta := newTestApp(t, nil)

	tests := []struct {
		name       string
		body       interface{}
		raw        string
		wantStatus int
	}{
		{"bad position", PositionRequest{Position: "W:W40"}, "", http.StatusBadRequest},
		{"bad square", PositionRequest{Square: "z6"}, "", http.StatusBadRequest},
		{"malformed json", nil, "{", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp *http.Response
			var body []byte
			if tt.raw != "" {
				req := httptest.NewRequest(http.MethodPost, "/api/moves", strings.NewReader(tt.raw))
				req.Header.Set("Content-Type", "application/json")
				r, err := ta.app.Test(req, -1)
				if err != nil {
					t.Fatal(err)
				}
				defer r.Body.Close()
				body, _ = io.ReadAll(r.Body)
				resp = r
			} else {
				resp, body = ta.do(http.MethodPost, "/api/moves", tt.body)
			}

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", resp.StatusCode, tt.wantStatus, body)
			}
			var got errorResponse
			decode(t, body, &got)
			if got.Error == "" || got.RequestID == "" {
				t.Errorf("error body = %+v, want error and requestId", got)
			}
		})
	}
}

func TestReplay(t *testing.T) {
	ta := newTestApp(t, nil)

	resp, body := ta.do(http.MethodPost, "/api/replay", ReplayRequest{Moves: []string{"22-18", "11-15"}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var got output.JSONPosition
	decode(t, body, &got)
	if got.Plies != 2 || got.Turn != "white" {
		t.Errorf("plies, turn = %d, %q; want 2, white", got.Plies, got.Turn)
	}
	found := false
	for _, m := range got.Moves {
		if m.Notation == "18x11" {
			found = m.Capture
		}
	}
	if !found {
		t.Errorf("moves = %+v, want the capture 18x11", got.Moves)
	}
}

func TestReplay_KingCircuit(t *testing.T) {
	ta := newTestApp(t, nil)

	req := ReplayRequest{Position: "W:WK22:B9,10,17,18", Moves: []string{"22x15x6x13x22"}}
	resp, body := ta.do(http.MethodPost, "/api/replay", req)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var got output.JSONPosition
	decode(t, body, &got)
	if got.Position != "B:WK22:B" || got.Winner != "white" {
		t.Errorf("position, winner = %q, %q; want B:WK22:B, white", got.Position, got.Winner)
	}
}

func TestReplay_Illegal(t *testing.T) {
	ta := newTestApp(t, nil)

	resp, body := ta.do(http.MethodPost, "/api/replay", ReplayRequest{Moves: []string{"22-18", "22-17"}})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422 (body %s)", resp.StatusCode, body)
	}
	var got errorResponse
	decode(t, body, &got)
	if got.Ply != 2 {
		t.Errorf("ply = %d, want 2", got.Ply)
	}
}

func TestRender(t *testing.T) {
	ta := newTestApp(t, nil)

	resp, body := ta.do(http.MethodPost, "/api/render", PositionRequest{Square: "c3"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	testutil.AssertContains(t, string(body), "4 |   | ! *   * ! |")
}

func TestNotFound(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, _ := ta.do(http.MethodGet, "/api/nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestAccessLog(t *testing.T) {
	var log bytes.Buffer
	ta := newTestApp(t, &log)

	resp, _ := ta.do(http.MethodGet, "/api/health", nil)

	line := log.String()
	testutil.AssertContains(t, line, "/api/health")
	testutil.AssertContains(t, line, resp.Header.Get(RequestIDHeader))
}
