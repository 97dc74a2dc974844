//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/tools/seed"
)

// integrationTimeout returns the default timeout for integration calls.
func integrationTimeout() time.Duration {
	return 10 * time.Second
}

// repoRoot walks up from the working directory to the module root.
func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("get working dir: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			t.Fatal("go.mod not found")
		}
		wd = parent
	}
}

// seedDashboardDemo writes the dashboard fixture scenario into dbPath.
func seedDashboardDemo(t *testing.T, dbPath string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout())
	defer cancel()
	if err := seed.Run(ctx, seed.Config{DBPath: dbPath, Scenario: "dashboard-demo"}); err != nil {
		t.Fatalf("seed dashboard demo: %v", err)
	}
}

// startMCPClient boots the MCP stdio process against dbPath and returns a
// client session and shutdown function.
func startMCPClient(t *testing.T, dbPath string) (*mcp.ClientSession, func()) {
	t.Helper()

	cmd := exec.Command("go", "run", "./cmd/mcp")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), fmt.Sprintf("EVENT_CONNECT_DB_PATH=%s", dbPath))
	cmd.Stderr = os.Stderr

	transport := &mcp.CommandTransport{Command: cmd}
	client := mcp.NewClient(&mcp.Implementation{Name: "integration-client", Version: "dev"}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), integrationTimeout())
	defer cancel()
	clientSession, err := client.Connect(ctx, transport, nil)
	if err != nil {
		t.Fatalf("connect MCP client: %v", err)
	}

	closeClient := func() {
		if err := clientSession.Close(); err != nil {
			t.Fatalf("close MCP client: %v", err)
		}
	}

	return clientSession, closeClient
}

// decodeStructuredContent decodes structured MCP content into the target type.
func decodeStructuredContent[T any](t *testing.T, value any) T {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var output T
	if err := json.Unmarshal(data, &output); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return output
}

// resultText concatenates the text content blocks of a tool result.
func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var text string
	for _, content := range result.Content {
		if tc, ok := content.(*mcp.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}
