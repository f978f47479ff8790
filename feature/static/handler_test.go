package static

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"audiomass-server/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const indexHTML = "<!doctype html><title>AudioMass</title>\n"

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// setupTestApp builds a served tree:
//
//	index.html
//	css/main.css
//	audio/take.txt   (no index file)
//	audio/take 2.txt
func setupTestApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "index.html"), indexHTML)
	writeFile(t, filepath.Join(root, "css", "main.css"), "body{}")
	writeFile(t, filepath.Join(root, "audio", "take.txt"), "take")
	writeFile(t, filepath.Join(root, "audio", "take 2.txt"), "take 2")

	app := server.NewApp()
	feature := NewFeature(server.Config{Port: 5055, Root: root, Index: "index.html", Browse: true}, zap.NewNop())
	require.NoError(t, feature.Load(app))
	return app, root
}

func readBody(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestStatic_ServesIndexAtRoot(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, indexHTML, readBody(t, resp.Body))
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

func TestStatic_ServesFiles(t *testing.T) {
	app, _ := setupTestApp(t)

	tests := []struct {
		name        string
		target      string
		body        string
		contentType string
	}{
		{"Index", "/index.html", indexHTML, "text/html"},
		{"IndexWithQuery", "/index.html?foo=1", indexHTML, "text/html"},
		{"Stylesheet", "/css/main.css", "body{}", "text/css"},
		{"EscapedName", "/audio/take%202.txt", "take 2", "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.body, readBody(t, resp.Body))
			assert.Contains(t, resp.Header.Get("Content-Type"), tt.contentType)
		})
	}
}

func TestStatic_Head(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("HEAD", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, readBody(t, resp.Body))
}

func TestStatic_DirectoryListing(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/audio/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp.Body), "take.txt")
}

func TestStatic_NotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, target := range []string{"/missing-file.xyz", "/css/missing.css", "/nope/", "/index.html/", "/css/main.css/"} {
		t.Run(target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestStatic_MalformedEscape(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, target := range []string{"/100%zz", "/a%"} {
		t.Run(target, func(t *testing.T) {
			// NewRequest refuses invalid escapes, so the raw target is set afterwards.
			req := httptest.NewRequest("GET", "/", nil)
			req.RequestURI = target

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestStatic_Forbidden(t *testing.T) {
	app, _ := setupTestApp(t)

	for _, target := range []string{"/../secret.txt", "/css/../../secret.txt", "/%2e%2e/secret.txt", "/css/%2E%2E/%2e%2e/etc/passwd"} {
		t.Run(target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		})
	}
}

func TestEscapesRoot(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", false},
		{"/index.html", false},
		{"/..", true},
		{"/a/../b", true},
		{"/a\\..\\b", true},
		{"/..hidden/file", false},
		{"/file...", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, escapesRoot(tt.path))
		})
	}
}

func TestLoader(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		feature := NewFeature(server.Config{Root: t.TempDir(), Index: "index.html"}, zap.NewNop())
		assert.Equal(t, "static", feature.Name())
		assert.True(t, feature.IsEnabled())
		assert.NoError(t, feature.Load(fiber.New()))
	})

	t.Run("MissingRoot", func(t *testing.T) {
		feature := NewFeature(server.Config{Root: filepath.Join(t.TempDir(), "absent")}, zap.NewNop())
		assert.Error(t, feature.Load(fiber.New()))
	})

	t.Run("RootIsFile", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "index.html")
		writeFile(t, file, indexHTML)
		feature := NewFeature(server.Config{Root: file}, zap.NewNop())
		assert.Error(t, feature.Load(fiber.New()))
	})
}

func TestStatic_ServesEditedFile(t *testing.T) {
	app, root := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, indexHTML, readBody(t, resp.Body))

	writeFile(t, filepath.Join(root, "index.html"), "CHANGED")

	resp, err = app.Test(httptest.NewRequest("GET", "/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "CHANGED", readBody(t, resp.Body))

	writeFile(t, filepath.Join(root, "index.html"), indexHTML+indexHTML)

	resp, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, indexHTML+indexHTML, readBody(t, resp.Body))
}
