// Package matrix defines the build-matrix domain model and its file formats.
//
// A build matrix is a document with a top-level "buildMatrix" list. Every
// entry names an operating system and the build variants to produce for it,
// plus any number of settings shared by those builds:
//
//	{
//	  "buildMatrix": [
//	    {
//	      "os": "linux",
//	      "builds": ["Debug", "Release"],
//	      "buildFlags": ["-Wall"],
//	      "extraDebugBuildFlags": ["-g"]
//	    }
//	  ]
//	}
//
// Entries may also use the pair form ["linux", {"builds": [...], ...}].
//
// Input is read as JSON, YAML (.yaml, .yml) or HCL (.hcl), chosen by file
// extension. In HCL each entry is a labelled block:
//
//	buildMatrix "linux" {
//	  builds     = ["Debug", "Release"]
//	  buildFlags = ["-Wall"]
//	}
//
// The normalized result is a list of Triple values, written as JSON (or YAML
// when the output path has a YAML extension) in the shape
// [os, build, settings].
package matrix
