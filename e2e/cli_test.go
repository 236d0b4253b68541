package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rostershop/internal/api"
	"rostershop/internal/factory"
	"rostershop/internal/services/account"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "rostershop-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rostershop")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{
		AccountConfig: account.Config{InitialBalance: 1000},
		Logger:        logger,
	})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		Metrics:          app.Metrics,
		RosterController: app.RosterController,
		ShopService:      app.ShopService,
		AccountService:   app.AccountService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID        int64  `json:"id"`
	Firstname string `json:"firstname"`
	Country   string `json:"country"`
}

type orderResponse struct {
	ProductID string `json:"product_id"`
	Ordered   bool   `json:"ordered"`
}

func TestCLIRosterLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	// Create two players
	out, err := cli.run("player", "create",
		"--firstname", "Jan", "--lastname", "Kowalski",
		"--country", "Polska", "--dob", "2000-10-10",
		"--height", "180", "--weight", "100")
	require.NoError(t, err, out)

	var created playerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, int64(1), created.ID)

	out, err = cli.run("player", "create",
		"--firstname", "Hans", "--lastname", "Müller",
		"--country", "Niemcy", "--dob", "1998-01-20",
		"--height", "190", "--weight", "95")
	require.NoError(t, err, out)

	// Filter by country
	out, err = cli.run("player", "filter", "Polska")
	require.NoError(t, err, out)

	var players []playerResponse
	require.NoError(t, json.Unmarshal([]byte(out), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "Jan", players[0].Firstname)

	// Delete and verify gone
	out, err = cli.run("player", "delete", "1")
	require.NoError(t, err, out)

	out, err = cli.run("player", "get", "1")
	require.Error(t, err)
	assert.Contains(t, out, "PLAYER_NOT_FOUND")
}

func TestCLIShopPurchase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	ts := startTestServer(t)
	defer ts.shutdown()
	cli := newCLIRunner(t, ts.addr)

	out, err := cli.run("account", "register",
		"--user", "alice", "--pass", "hunter2", "--email", "alice@example.com")
	require.NoError(t, err, out)

	out, err = cli.run("shop", "add", "--id", "1", "--name", "Home Jersey", "--price", "900")
	require.NoError(t, err, out)

	out, err = cli.run("shop", "order", "1", "--account", "alice")
	require.NoError(t, err, out)

	var order orderResponse
	require.NoError(t, json.Unmarshal([]byte(out), &order))
	assert.True(t, order.Ordered)

	// A second order is refused but not an error
	out, err = cli.run("shop", "order", "1", "--account", "alice")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &order))
	assert.False(t, order.Ordered)
}
