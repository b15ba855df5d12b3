package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/repositories"
	"github.com/desertthunder/sounds-of-canada/internal/services"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
	tu "github.com/desertthunder/sounds-of-canada/internal/testing"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func newTestRunner(opts RunnerOpts) (*Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	opts.Output = output
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(io.Discard)
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = envMap(nil)
	}
	return NewRunner(opts), output
}

// run executes args against a missing config file so only defaults and the runner's env apply.
func run(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "missing.toml")
	return newApp(r).Run(context.Background(), append([]string{"soc", "--config", configPath}, args...))
}

// gatewayStub answers the client routes with canned bodies and records each request URI.
type gatewayStub struct {
	*httptest.Server
	mu   sync.Mutex
	uris []string
}

func newGatewayStub(t *testing.T) *gatewayStub {
	t.Helper()
	stub := &gatewayStub{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.uris = append(stub.uris, r.URL.RequestURI())
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/health":
			w.Write([]byte(`{"status":"ok"}`))
		case r.URL.Path == "/albums" && r.URL.Query().Get("year") == "1999":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Failed to fetch albums"}`))
		case r.URL.Path == "/albums":
			w.Write([]byte(`{"pagination":{"page":1,"pages":1},"results":[{"id":1,"title":"Feist - Multitudes","cover_image":"c.jpg"}]}`))
		case r.URL.Path == "/42/artists/albums":
			w.Write([]byte(`{"releases":[{"id":7,"title":"Metals","artist":"Feist","thumb":"t.jpg"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(stub.Close)
	return stub
}

func (s *gatewayStub) api() *services.APIService {
	return services.NewAPIService(s.URL, s.Client())
}

func (s *gatewayStub) requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.uris...)
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			api := &services.APIService{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				API:        api,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.api != api {
				t.Error("expected api to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Config: nil,
			})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Logger: nil,
			})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Output: nil,
			})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				HTTPClient: nil,
			})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})

		t.Run("with nil lookupEnv uses the process environment", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.lookupEnv == nil {
				t.Error("expected lookupEnv to default to os.LookupEnv")
			}
		})

		t.Run("with configPath sets field", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				ConfigPath: "/test/path/config.toml",
			})

			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			expected := `{"key":"value"}` + "\n"
			if result := output.String(); result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			// channels cannot be marshaled to JSON
			err := runner.writeJSON(make(chan int), false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlain("hello %s", "world"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("writePlainln wraps the line in newlines", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writePlainln("next"); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if result := output.String(); result != "\nnext\n" {
				t.Errorf("expected %q, got %q", "\nnext\n", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		names := map[string]bool{}
		for i, cmd := range commands {
			if cmd == nil {
				t.Fatalf("command at index %d is nil", i)
			}
			names[cmd.Name] = true
		}

		for _, want := range []string{"serve", "albums", "artist-albums", "browse", "favourites", "api", "setup"} {
			if !names[want] {
				t.Errorf("expected %q to be registered", want)
			}
		}
	})
}

func TestConfigLoading(t *testing.T) {
	t.Run("reads the config file and applies env on top", func(t *testing.T) {
		stub := newGatewayStub(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[server]\nport = 4000\nclient_url = \"http://example.test\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		runner, _ := newTestRunner(RunnerOpts{API: stub.api(), LookupEnv: envMap(map[string]string{"PORT": "5000"})})
		err := newApp(runner).Run(context.Background(), []string{"soc", "--config", path, "api", "health"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if runner.config.Server.Port != 5000 {
			t.Errorf("expected PORT to win, got %d", runner.config.Server.Port)
		}
		if runner.config.Server.ClientURL != "http://example.test" {
			t.Errorf("expected client_url from file, got %q", runner.config.Server.ClientURL)
		}
		if runner.config.Catalog.BaseURL != "https://api.discogs.com" {
			t.Errorf("expected default base URL to survive, got %q", runner.config.Catalog.BaseURL)
		}
	})

	t.Run("missing file keeps defaults", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, _ := newTestRunner(RunnerOpts{API: stub.api()})

		if err := run(t, runner, "api", "health"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if runner.config.Server.Port != 3001 {
			t.Errorf("expected default port 3001, got %d", runner.config.Server.Port)
		}
	})

	t.Run("invalid PORT fails", func(t *testing.T) {
		runner, _ := newTestRunner(RunnerOpts{LookupEnv: envMap(map[string]string{"PORT": "abc"})})

		err := run(t, runner, "api", "health")
		if !errors.Is(err, shared.ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[server\n"), 0644); err != nil {
			t.Fatal(err)
		}
		runner, _ := newTestRunner(RunnerOpts{})

		err := newApp(runner).Run(context.Background(), []string{"soc", "--config", path, "api", "health"})
		if err == nil || !strings.Contains(err.Error(), "failed to parse config") {
			t.Errorf("expected parse error, got %v", err)
		}
	})

	t.Run("api client follows SOC_API_URL", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, output := newTestRunner(RunnerOpts{
			HTTPClient: stub.Client(),
			LookupEnv:  envMap(map[string]string{"SOC_API_URL": stub.URL}),
		})

		if err := run(t, runner, "api", "health"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Gateway is healthy") {
			t.Errorf("unexpected output %q", output.String())
		}
	})
}

func TestAlbumCommands(t *testing.T) {
	t.Run("albums forwards year, genres and page", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, output := newTestRunner(RunnerOpts{API: stub.api()})

		err := run(t, runner, "albums", "--year", "2020", "--genre", "Rock", "--genre", "Jazz", "--page", "2", "--format", "json")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		reqs := stub.requests()
		if len(reqs) != 1 || reqs[0] != "/albums?genre=Rock&genre=Jazz&page=2&year=2020" {
			t.Errorf("unexpected requests %v", reqs)
		}

		var albums []models.Album
		if err := json.Unmarshal(output.Bytes(), &albums); err != nil {
			t.Fatalf("expected JSON output, got %q: %v", output.String(), err)
		}
		want := models.Album{ID: 1, Title: "Multitudes", Artist: "Feist", Image: "c.jpg"}
		if len(albums) != 1 || albums[0] != want {
			t.Errorf("expected %+v, got %+v", want, albums)
		}
	})

	t.Run("albums without year lets the gateway default", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, output := newTestRunner(RunnerOpts{API: stub.api()})

		if err := run(t, runner, "albums"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		reqs := stub.requests()
		if len(reqs) != 1 || strings.Contains(reqs[0], "year=") {
			t.Errorf("expected no year param, got %v", reqs)
		}
		if !strings.Contains(output.String(), "Multitudes") {
			t.Errorf("expected table output, got %q", output.String())
		}
	})

	t.Run("albums writes an export file", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, output := newTestRunner(RunnerOpts{API: stub.api()})
		path := filepath.Join(t.TempDir(), "out", "albums.csv")

		if err := run(t, runner, "albums", "--format", "csv", "--output", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, path)
		if content := tu.MustReadFile(t, path); !strings.Contains(content, "Feist") {
			t.Errorf("expected csv to contain artist, got %q", content)
		}
		if !strings.Contains(output.String(), "Exported 1 albums") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("albums writes a markdown directory", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, _ := newTestRunner(RunnerOpts{API: stub.api()})
		dir := filepath.Join(t.TempDir(), "md")

		if err := run(t, runner, "albums", "--year", "2021", "--format", "md", "--output", dir); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		content := tu.MustReadFile(t, filepath.Join(dir, "README.md"))
		if !strings.Contains(content, "# Canadian Albums of 2021") {
			t.Errorf("expected title heading, got %q", content)
		}
	})

	t.Run("albums surfaces gateway errors", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, _ := newTestRunner(RunnerOpts{API: stub.api()})

		err := run(t, runner, "albums", "--year", "1999")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Fatalf("expected ErrAPIRequest, got %v", err)
		}
		if !strings.Contains(err.Error(), "Failed to fetch albums") {
			t.Errorf("expected gateway message, got %v", err)
		}
	})

	t.Run("albums rejects unknown formats", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, _ := newTestRunner(RunnerOpts{API: stub.api()})

		err := run(t, runner, "albums", "--format", "xml")
		if !errors.Is(err, shared.ErrUnknownFormat) {
			t.Errorf("expected ErrUnknownFormat, got %v", err)
		}
		if len(stub.requests()) != 0 {
			t.Error("expected no request for an invalid format")
		}
	})

	t.Run("artist-albums uses the composite route", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, output := newTestRunner(RunnerOpts{API: stub.api()})

		if err := run(t, runner, "artist-albums", "--release", "42", "--format", "yaml"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if reqs := stub.requests(); len(reqs) != 1 || reqs[0] != "/42/artists/albums" {
			t.Errorf("unexpected requests %v", reqs)
		}
		if !strings.Contains(output.String(), "title: Metals") {
			t.Errorf("expected yaml output, got %q", output.String())
		}
	})

	t.Run("artist-albums rejects non-positive ids", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, _ := newTestRunner(RunnerOpts{API: stub.api()})

		err := run(t, runner, "artist-albums", "--release", "0")
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestAPICommands(t *testing.T) {
	t.Run("get prints JSON", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, output := newTestRunner(RunnerOpts{API: stub.api()})

		if err := run(t, runner, "api", "get", "/health"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), `"status": "ok"`) {
			t.Errorf("expected pretty JSON, got %q", output.String())
		}
	})

	t.Run("get requires a path", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, _ := newTestRunner(RunnerOpts{API: stub.api()})

		err := run(t, runner, "api", "get")
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("get reports non-2xx", func(t *testing.T) {
		stub := newGatewayStub(t)
		runner, _ := newTestRunner(RunnerOpts{API: stub.api()})

		err := run(t, runner, "api", "get", "/nowhere")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
	})

	t.Run("health reports an unreachable gateway", func(t *testing.T) {
		stub := newGatewayStub(t)
		api := stub.api()
		stub.Close()
		runner, _ := newTestRunner(RunnerOpts{API: api})

		err := run(t, runner, "api", "health")
		if !errors.Is(err, shared.ErrServiceUnavailable) {
			t.Errorf("expected ErrServiceUnavailable, got %v", err)
		}
	})
}

func TestServe(t *testing.T) {
	t.Run("requires credentials", func(t *testing.T) {
		runner, _ := newTestRunner(RunnerOpts{})

		err := run(t, runner, "serve")
		if !errors.Is(err, shared.ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})

	t.Run("proxies signed searches until cancelled", func(t *testing.T) {
		var (
			mu    sync.Mutex
			query string
			auth  string
		)
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			query = r.URL.RawQuery
			auth = r.Header.Get("Authorization")
			mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"pagination":{"page":1},"results":[]}`))
		}))
		defer upstream.Close()

		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("failed to listen: %v", err)
		}

		runner, _ := newTestRunner(RunnerOpts{
			Listener: ln,
			LookupEnv: envMap(map[string]string{
				"DISCOGS_CONSUMER_KEY":       "ck",
				"DISCOGS_CONSUMER_SECRET":    "cs",
				"DISCOGS_OAUTH_TOKEN":        "tk",
				"DISCOGS_OAUTH_TOKEN_SECRET": "ts",
				"DISCOGS_BASE_URL":           upstream.URL,
			}),
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		configPath := filepath.Join(t.TempDir(), "missing.toml")
		errc := make(chan error, 1)
		go func() {
			errc <- newApp(runner).Run(ctx, []string{"soc", "--config", configPath, "serve", "--client-url", "http://app.test"})
		}()

		req, err := http.NewRequestWithContext(tu.MustContext(t, 5*time.Second), http.MethodGet, "http://"+ln.Addr().String()+"/albums?genre=Rock", nil)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Origin", "http://app.test")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
		}
		if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://app.test" {
			t.Errorf("expected CORS origin from flag, got %q", got)
		}
		if !strings.Contains(string(body), `"results":[]`) {
			t.Errorf("expected upstream body relayed, got %s", body)
		}

		mu.Lock()
		if !strings.Contains(query, "year=2024") || !strings.Contains(query, "genre=Rock") || !strings.Contains(query, "country=Canada") {
			t.Errorf("unexpected upstream query %q", query)
		}
		if !strings.Contains(auth, `oauth_signature="cs&ts"`) {
			t.Errorf("expected signed request, got %q", auth)
		}
		mu.Unlock()

		cancel()
		select {
		case err := <-errc:
			if err != nil {
				t.Errorf("expected clean shutdown, got %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not stop after cancel")
		}
	})
}

func TestFavouritesCommands(t *testing.T) {
	seed := func(t *testing.T, albums ...models.Album) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "soc.db")
		db, err := shared.OpenDatabase(shared.DatabaseConfig{Path: path})
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		repo := repositories.NewFavouriteRepository(db)
		for _, a := range albums {
			if err := repo.Add(context.Background(), a); err != nil {
				t.Fatalf("failed to seed favourite: %v", err)
			}
		}
		return path
	}

	feist := models.Album{ID: 1, Title: "Metals", Artist: "Feist"}
	drake := models.Album{ID: 2, Title: "Views", Artist: "Drake"}

	t.Run("list prints favourites in insertion order", func(t *testing.T) {
		path := seed(t, feist, drake)
		runner, output := newTestRunner(RunnerOpts{LookupEnv: envMap(map[string]string{"SOC_DATABASE_PATH": path})})

		if err := run(t, runner, "favourites", "list", "--format", "json"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var albums []models.Album
		if err := json.Unmarshal(output.Bytes(), &albums); err != nil {
			t.Fatalf("expected JSON output, got %q: %v", output.String(), err)
		}
		if len(albums) != 2 || albums[0] != feist || albums[1] != drake {
			t.Errorf("unexpected favourites %+v", albums)
		}
	})

	t.Run("list reports an empty database", func(t *testing.T) {
		path := seed(t)
		runner, output := newTestRunner(RunnerOpts{LookupEnv: envMap(map[string]string{"SOC_DATABASE_PATH": path})})

		if err := run(t, runner, "favs", "list"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "No favourites saved\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("remove and clear persist", func(t *testing.T) {
		path := seed(t, feist, drake)
		env := envMap(map[string]string{"SOC_DATABASE_PATH": path})

		runner, output := newTestRunner(RunnerOpts{LookupEnv: env})
		if err := run(t, runner, "favourites", "remove", "--id", "1"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Removed favourite 1") {
			t.Errorf("unexpected output %q", output.String())
		}

		runner, output = newTestRunner(RunnerOpts{LookupEnv: env})
		if err := run(t, runner, "favourites", "clear"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(output.String(), "Removed 1 favourites") {
			t.Errorf("unexpected output %q", output.String())
		}
	})

	t.Run("remove of a missing id fails", func(t *testing.T) {
		path := seed(t, feist)
		runner, _ := newTestRunner(RunnerOpts{LookupEnv: envMap(map[string]string{"SOC_DATABASE_PATH": path})})

		err := run(t, runner, "favourites", "remove", "--id", "99")
		if !errors.Is(err, shared.ErrFavouriteNotFound) {
			t.Errorf("expected ErrFavouriteNotFound, got %v", err)
		}
	})

	t.Run("export writes markdown", func(t *testing.T) {
		path := seed(t, feist)
		runner, _ := newTestRunner(RunnerOpts{LookupEnv: envMap(map[string]string{"SOC_DATABASE_PATH": path})})
		dir := filepath.Join(t.TempDir(), "export")

		if err := run(t, runner, "favourites", "export", "--output", dir); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		content := tu.MustReadFile(t, filepath.Join(dir, "README.md"))
		if !strings.Contains(content, "# Favourite Canadian Albums") || !strings.Contains(content, "Feist - Metals") {
			t.Errorf("unexpected markdown %q", content)
		}
	})

	t.Run("requires a database path", func(t *testing.T) {
		runner, _ := newTestRunner(RunnerOpts{})

		err := run(t, runner, "favourites", "list")
		if !errors.Is(err, shared.ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}

func TestSetupCommands(t *testing.T) {
	t.Run("config writes the template once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		runner, output := newTestRunner(RunnerOpts{})

		if err := run(t, runner, "setup", "config", "--output", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(output.String(), "Config written to") {
			t.Errorf("unexpected output %q", output.String())
		}

		if _, err := shared.LoadConfig(path); err != nil {
			t.Errorf("expected written config to load, got %v", err)
		}

		runner, _ = newTestRunner(RunnerOpts{})
		if err := run(t, runner, "setup", "config", "--output", path); err == nil {
			t.Error("expected error when config already exists")
		}
	})

	t.Run("database creates and migrates the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "soc.db")
		runner, output := newTestRunner(RunnerOpts{})

		if err := run(t, runner, "setup", "database", "--path", path); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		tu.AssertFileExists(t, path)
		if !strings.Contains(output.String(), "database.path") {
			t.Errorf("expected config hint, got %q", output.String())
		}
	})

	t.Run("database requires a path", func(t *testing.T) {
		runner, _ := newTestRunner(RunnerOpts{})

		err := run(t, runner, "setup", "database")
		if !errors.Is(err, shared.ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}
