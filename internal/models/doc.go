// Package models lists the OpenAI chat models usable as cross-check
// references for the current API key.
package models
