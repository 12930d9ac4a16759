package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "trilha_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "trilha_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "trilha_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "trilha_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "trilha_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "trilha_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "trilha_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := platformAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	manifest := []byte("abc123  trilha_Darwin_all.tar.gz\nbadline\nfoo  bar  baz\ndef456  trilha_Linux_x86_64.tar.gz\n")

	t.Run("listed asset", func(t *testing.T) {
		got, err := checksumFor(manifest, "trilha_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, "def456", got)
	})

	t.Run("unlisted asset", func(t *testing.T) {
		_, err := checksumFor(manifest, "trilha_Windows_x86_64.zip")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
	})

	t.Run("empty manifest", func(t *testing.T) {
		_, err := checksumFor(nil, "trilha_Darwin_all.tar.gz")
		require.Error(t, err)
	})
}

func TestVerifyArchive(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyArchive(data, hex.EncodeToString(sum[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyArchive(data, strings.Repeat("0", 64))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestBinaryFromArchive(t *testing.T) {
	content := []byte("#!/bin/sh\necho trilha")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "trilha", content)
		got, err := binaryFromArchive(archive, "trilha_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildZip(t, "trilha.exe", content)
		got, err := binaryFromArchive(archive, "trilha_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "LICENSE", content)
		_, err := binaryFromArchive(archive, "trilha_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "trilha")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	c := NewChecker(withExecPath(func() (string, error) { return target, nil }))
	newBinary := []byte("new-binary-content")
	require.NoError(t, c.swapExecutable(newBinary))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	// The staging file is gone after the rename.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdate(t *testing.T) {
	asset, err := platformAsset(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	content := []byte("new-trilha-binary")
	archive := buildArchive(t, asset, content)
	sum := sha256.Sum256(archive)
	manifest := fmt.Sprintf("%s  %s\n", hex.EncodeToString(sum[:]), asset)

	t.Run("happy path", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "trilha")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:        archive,
			manifestName: []byte(manifest),
		})
		c := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []string
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("pinned version skips check", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "trilha")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

		srv := releaseServer(t, "v1.5.0", map[string][]byte{
			asset:        archive,
			manifestName: []byte(manifest),
		})
		c := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []string
		err := c.Update(context.Background(), &UpdateInput{
			CurrentVersion: "v1.0.0",
			TargetVersion:  "v1.5.0",
		}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.NotContains(t, stages, "check")
	})

	t.Run("dev build", func(t *testing.T) {
		c := NewChecker()
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, nil)
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0", nil)
		c := NewChecker(WithBaseURL(srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := fmt.Sprintf("%s  %s\n", strings.Repeat("0", 64), asset)
		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:        archive,
			manifestName: []byte(bad),
		})
		c := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("asset missing from release", func(t *testing.T) {
		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			manifestName: []byte(manifest),
		})
		c := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})

	t.Run("asset not in manifest", func(t *testing.T) {
		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:        archive,
			manifestName: []byte("abc123  trilha_Plan9_arm.tar.gz\n"),
		})
		c := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
	})
}

// releaseServer serves a GitHub-shaped latest-release endpoint plus the given
// download files for one tag.
func releaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/joaovmb/trilha/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
	})
	for name, body := range files {
		body := body
		mux.HandleFunc(fmt.Sprintf("/joaovmb/trilha/releases/download/%s/%s", tag, name), func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(body)
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// buildArchive packs the platform binary the way a release for the named
// asset would.
func buildArchive(t *testing.T, asset string, content []byte) []byte {
	t.Helper()
	if strings.HasSuffix(asset, ".zip") {
		return buildZip(t, "trilha.exe", content)
	}
	return buildTarGz(t, "trilha", content)
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
