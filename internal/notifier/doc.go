// Package notifier delivers one-shot alerts when available campsites are
// found. The email notifier hands the composed message to an SMTP relay
// configured from the environment; delivery failures are fire-and-forget
// and never affect the poll outcome. A dry-run notifier prints the message
// instead of sending it.
package notifier
