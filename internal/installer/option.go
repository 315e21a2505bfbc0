package installer

import (
	"io"
	"net/http"
)

// Option customises an Installer.
type Option func(*Installer)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return func(in *Installer) {
		if client != nil {
			in.client = client
		}
	}
}

// WithReportWriter sets where the success line is written (os.Stderr by default).
func WithReportWriter(w io.Writer) Option {
	return func(in *Installer) {
		if w != nil {
			in.report = w
		}
	}
}

// WithProgress renders a download progress bar on w.
func WithProgress(w io.Writer) Option {
	return func(in *Installer) {
		in.progress = w
	}
}
