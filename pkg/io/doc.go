// Package io writes generated artifacts to disk.
//
// Rendering produces plain byte slices; this package is the only place the
// generator touches the filesystem. [WriteFile] creates or truncates the
// target, writes the bytes, and always closes the handle, reporting a close
// failure when the write itself succeeded:
//
//	if err := io.WriteFile("icon16.png", data); err != nil {
//	    return err
//	}
//
// [Digest] fingerprints an artifact so identical renders can be recognised
// in logs without comparing whole files.
package io
