package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sulaski/blogden/internal/blogservice"
	"github.com/sulaski/blogden/internal/categoryservice"
	"github.com/sulaski/blogden/internal/common"
	"github.com/sulaski/blogden/internal/userservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *mongo.Database) {
	db := common.TestDB(t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := &Config{
		Port:        ":4000",
		Environment: "test",
		Version:     "test",
	}

	app := &application{
		config:          cfg,
		logger:          logger,
		userService:     userservice.NewUserService(db, nil),
		categoryService: categoryservice.NewCategoryService(db),
		blogService:     blogservice.NewBlogService(db, nil),
	}

	return app, db
}

// do performs a JSON request against the test server and returns the status
// code and raw response body. A nil payload sends no body.
func (ts *testServer) do(t *testing.T, method, path string, payload any) (int, []byte) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, responseBody
}

// unmarshalBody decodes a JSON response body into dst.
func unmarshalBody(t *testing.T, body []byte, dst any) {
	t.Helper()

	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("could not unmarshal response body %q: %v", body, err)
	}
}
