package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/five82/satchel/internal/demo"
)

func startDemo(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ts := httptest.NewServer(demo.NewServer(nil, logger).Router(""))
	t.Cleanup(ts.Close)
	return ts.URL
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.toml")))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestListPrintsPage(t *testing.T) {
	url := startDemo(t)

	out, err := runCLI(t, "list", "--api", url, "--limit", "5", "--type", "handout")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(out, "TITLE") {
		t.Fatalf("missing header:\n%s", out)
	}
	if got := strings.Count(out, "Handouts"); got != 5 {
		t.Fatalf("handout rows = %d, want 5:\n%s", got, out)
	}
	if !strings.Contains(out, "(5 of 12 shown, offset 0)") {
		t.Fatalf("missing pagination footer:\n%s", out)
	}
}

func TestListPastTheEnd(t *testing.T) {
	url := startDemo(t)

	out, err := runCLI(t, "list", "--api", url, "--offset", "500")
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if !strings.Contains(out, "No products found.") {
		t.Fatalf("output = %q", out)
	}
}

func TestListRejectsUnknownType(t *testing.T) {
	if _, err := runCLI(t, "list", "--api", "127.0.0.1:1", "--type", "poster"); err == nil {
		t.Fatalf("list accepted an unknown type")
	}
}

func TestListReportsFetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(ts.Close)

	_, err := runCLI(t, "list", "--api", ts.URL, "--limit", "5")
	if err == nil || !strings.Contains(err.Error(), "list products") {
		t.Fatalf("err = %v, want list products error", err)
	}
}
