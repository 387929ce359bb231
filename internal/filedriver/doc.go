// Package filedriver runs a compression method against files.
//
// A Driver reads the whole input file into memory, hands it to a
// compressor.Codec, and writes the result to an output file that must not
// already exist.  Files are reached through a billy.Filesystem, so callers
// choose between the host filesystem (osfs) and an in-memory one (memfs).
//
// Every failure, whether from the filesystem or from the codec, is reported
// as a single *Error whose cause stays reachable through errors.Is and
// errors.As.  No output file is left behind after a failure.
//
package filedriver
