// Package installer fetches one artifact over HTTP and writes it to a fixed
// destination with executable permissions.
//
// The pipeline is linear: GET the source URL, read the whole body, write it
// over the destination in place, chmod it. Fetch failures wrap ErrFetch and
// write failures wrap ErrWrite; neither is retried.
package installer
