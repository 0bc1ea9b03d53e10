// Package provider defines the base provider contract and a generic registry
// for runtime-selectable backends. Domain packages (transcription) specialize
// the registry with their own provider interface.
package provider
