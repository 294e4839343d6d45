// Package app wires the build-matrix normalizer together: it loads the input
// file, runs the pipeline, prints the result to stdout and writes the output
// file.
package app
