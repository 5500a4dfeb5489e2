// Package log provides slog loggers that mask credentials.
//
// SecureHandler wraps any slog.Handler and replaces the value of attributes
// whose key names a credential (authorization, token, password and the like)
// or whose value looks like one (GitHub personal access tokens, fine-grained
// tokens, bearer values, JWTs). Error values are scanned for embedded GitHub
// tokens, which are masked in place so the rest of the message survives.
//
// Masking applies at every level, including Debug.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("request", "authorization", "Bearer ghp_...") // authorization=***REDACTED***
package log
