// Package validation contains the logic for validating and sanitizing
// request data.
//
// It uses the `validator` library to enforce rules (like required fields or
// minimum lengths) defined in struct tags, and converts validation errors
// into human-readable messages the form views can display.
package validation
