// Package config defines the compiled-in install target: the source URL of
// the artifact, its destination path and the file mode applied to it.
//
// Nothing here is read from disk or the environment; Validate only guards
// against malformed targets built by callers such as tests.
package config
