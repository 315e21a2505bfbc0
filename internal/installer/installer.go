package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gbxyz/jrdap-install/internal/config"
	"github.com/gbxyz/jrdap-install/internal/logger"
)

var (
	// ErrFetch marks failures to obtain the artifact: transport errors,
	// non-2xx responses and body read errors.
	ErrFetch = errors.New("fetch artifact")
	// ErrWrite marks failures to persist the artifact at its destination.
	ErrWrite = errors.New("write artifact")

	errBadHTTPStatus = errors.New("unexpected http status")
)

// Installer downloads a single artifact and writes it in place.
type Installer struct {
	target *config.Target
	client *http.Client
	report io.Writer
	// progress receives a download bar when set.
	progress io.Writer
}

// New creates an Installer for target.
func New(target *config.Target, opts ...Option) (*Installer, error) {
	if target == nil {
		return nil, config.ErrTargetNotSet
	}

	in := &Installer{
		target: target,
		client: http.DefaultClient,
		report: os.Stderr,
	}

	for _, opt := range opts {
		opt(in)
	}

	return in, nil
}

// Run installs target and reports success on the diagnostic writer.
// The returned error wraps ErrFetch or ErrWrite.
func Run(ctx context.Context, target *config.Target, opts ...Option) error {
	in, err := New(target, opts...)
	if err != nil {
		return err
	}

	ctx = logger.WithName(ctx, "installer")
	ctx = logger.WithKV(ctx, "artifact", target.Name())

	if err = in.Install(ctx); err != nil {
		logger.DebugKV(ctx, "Install failed", "error", err)
		return err
	}

	_, _ = fmt.Fprintf(in.report, "%s successfully installed to %s!\n", target.Name(), target.Destination)

	return nil
}

// Install fetches the artifact and writes it to the destination.
func (in *Installer) Install(ctx context.Context) error {
	logger.DebugKV(ctx, "Fetching artifact", "url", in.target.SourceURL)

	payload, err := in.fetch(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	logger.InfoKV(ctx, "Fetched artifact", "bytes", len(payload))

	in.warnIfRunning(ctx)

	if err = in.write(payload); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	logger.InfoKV(ctx, "Wrote artifact", "path", in.target.Destination, "mode", in.target.FileMode)

	return nil
}

// fetch reads the whole response body into memory.
func (in *Installer) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, in.target.SourceURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := in.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s, %s: %w", in.target.SourceURL, response.Status, errBadHTTPStatus)
	}

	if in.progress == nil {
		return io.ReadAll(response.Body)
	}

	bar := newProgressBar(in.progress, response.ContentLength, in.target.Name())
	defer func() {
		_ = bar.Close()
	}()

	return io.ReadAll(io.TeeReader(response.Body, bar))
}

// write replaces the destination contents in place; there is no temp file and
// a failed write may leave a partial file behind.
func (in *Installer) write(payload []byte) error {
	destination := filepath.Clean(in.target.Destination)

	file, err := os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, in.target.FileMode)
	if err != nil {
		return err
	}

	if _, err = file.Write(payload); err != nil {
		_ = file.Close()
		return err
	}

	if err = file.Close(); err != nil {
		return err
	}

	// OpenFile honours the umask and leaves the mode of an existing file alone.
	return os.Chmod(destination, in.target.FileMode)
}
