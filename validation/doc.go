// Package validation wraps go-playground/validator with struct-tag based
// validation that produces the library's structured errors.
package validation
