// Package accent normalizes input text and enforces the stress accent gate.
package accent
