package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// Target describes what gets installed and where.
type Target struct {
	// SourceURL is the remote location of the artifact.
	SourceURL string
	// Destination is the absolute path the artifact is written to.
	Destination string
	// FileMode is applied to Destination after the write.
	FileMode os.FileMode
}

const (
	// DefaultSourceURL is where the jrdap script is published.
	DefaultSourceURL = "https://raw.githubusercontent.com/gbxyz/jrdap/main/jrdap"

	// DefaultDestination is the install location of the jrdap script.
	DefaultDestination = "/usr/local/bin/jrdap"

	// DefaultFileMode is owner rwx, group and other r-x.
	DefaultFileMode os.FileMode = 0o755
)

var (
	// ErrTargetNotSet is returned when a nil target is provided.
	ErrTargetNotSet = errors.New("install target is not set")
	// errSourceRequired is returned when the source URL is missing.
	errSourceRequired = errors.New("source url must be provided")
	// errUnsupportedScheme is returned for source URLs that are not http(s).
	errUnsupportedScheme = errors.New("unsupported source url scheme")
	// errDestinationNotAbsolute is returned for relative destination paths.
	errDestinationNotAbsolute = errors.New("destination must be an absolute path")
	// errFileModeRequired is returned when no permission bits are set.
	errFileModeRequired = errors.New("file mode must be provided")
)

// Default returns the compiled-in install target.
func Default() *Target {
	return &Target{
		SourceURL:   DefaultSourceURL,
		Destination: DefaultDestination,
		FileMode:    DefaultFileMode,
	}
}

// Name returns the artifact name, i.e. the base name of the destination.
func (t *Target) Name() string {
	return filepath.Base(t.Destination)
}

// Validate checks the target for required fields and formatting.
func Validate(target *Target) error {
	if target == nil {
		return ErrTargetNotSet
	}

	if target.SourceURL == "" {
		return errSourceRequired
	}

	sourceURL, err := url.ParseRequestURI(target.SourceURL)
	if err != nil {
		return fmt.Errorf("invalid source url: %w", err)
	}

	if sourceURL.Scheme != "http" && sourceURL.Scheme != "https" {
		return fmt.Errorf("%s: %w", sourceURL.Scheme, errUnsupportedScheme)
	}

	if !filepath.IsAbs(target.Destination) {
		return fmt.Errorf("%q: %w", target.Destination, errDestinationNotAbsolute)
	}

	if target.FileMode.Perm() == 0 {
		return errFileModeRequired
	}

	return nil
}
