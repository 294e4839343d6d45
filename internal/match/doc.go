// Package match provides edit-distance scoring used to suggest the intended
// key when a settings key is dropped as unrecognized.
package match
