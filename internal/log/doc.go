// Package log provides slog loggers that never write secrets.
//
// A password meter handles plaintext passwords on every call, so every
// logger built by this package wraps its handler in a SecureHandler, which
// masks:
//   - attributes named like credentials (password, candidate, token, cookie)
//   - string attributes whose key contains a credential keyword
//   - values that look like bearer tokens, JWTs or API keys
//
// Numeric attributes whose key merely mentions a credential, such as a
// scoring adjustment named "known_weak_password", are kept.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("analyzing", "password", pw) // password=***REDACTED***
//	slog.SetDefault(logger)
package log
