// Package types defines the Envelope and report types, the Journal
// interface, and standard error types for the veneer toolkit.
// Implements: prd001-envelope-core (Envelope, reports, Config, Journal, errors);
//
//	docs/ARCHITECTURE § Main Interface, § System Components (Journal API).
package types
