// Package getter wraps hashicorp/go-getter for the remote fetch command.
package getter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	getter "github.com/hashicorp/go-getter/v2"
)

// Getter wraps go-getter to fetch sources from git, HTTP, and other protocols.
type Getter struct {
	client *getter.Client
	logger *slog.Logger
}

// New creates a Getter with default configuration.
func New(logger *slog.Logger) *Getter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Getter{
		client: &getter.Client{
			DisableSymlinks: true,
		},
		logger: logger,
	}
}

// FetchOpts configures a fetch operation.
type FetchOpts struct {
	// Ref is appended as ?ref= for git sources.
	Ref string

	// Checksum is appended as ?checksum=sha256: for verification.
	Checksum string

	// Pwd is the working directory for relative path detection.
	Pwd string

	// File fetches a single file instead of a directory.
	File bool
}

// Fetch downloads src to dest. The src string uses go-getter URL syntax,
// including // for subpath extraction. It returns the resolved destination.
func (g *Getter) Fetch(ctx context.Context, src, dest string, opts FetchOpts) (string, error) {
	fullSrc := AppendQuery(src, opts.Ref, opts.Checksum)

	mode := getter.ModeDir
	if opts.File {
		mode = getter.ModeFile
	}

	g.logger.Debug("fetching source", "src", fullSrc, "dest", dest, "file", opts.File)

	req := &getter.Request{
		Src:             fullSrc,
		Dst:             dest,
		Pwd:             opts.Pwd,
		GetMode:         mode,
		DisableSymlinks: true,
	}

	res, err := g.client.Get(ctx, req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", src, err)
	}

	return res.Dst, nil
}

// AppendQuery adds ref and sha256 checksum query parameters to a source URL.
func AppendQuery(src, ref, checksum string) string {
	sep := "?"
	if strings.Contains(src, "?") {
		sep = "&"
	}

	result := src

	if ref != "" {
		result += sep + "ref=" + ref
		sep = "&"
	}

	if checksum != "" {
		result += sep + "checksum=sha256:" + checksum
	}

	return result
}
