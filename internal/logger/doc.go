// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger writing console-formatted entries to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - convenience functions (DebugKV, InfoKV, WarnKV).
//
// The level is fixed at warn, so the installer's own report lines are the
// only output of a successful run. Code accepts a context and extracts the
// logger from it, enabling scoped, structured logging; tests inject an
// observed logger through ToContext.
package logger
