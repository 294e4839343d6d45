// Package pipeline turns parsed build-matrix entries into normalized
// (os, build, settings) triples.
//
// The stages run in a fixed order:
//  1. Expand: one triple per (entry, build), with "builds" removed from the
//     settings.
//  2. Normalize the "flags" axis.
//  3. Normalize the "env" axis.
//  4. Default "tags" to an empty list.
//
// Normalizing an axis merges three optional lists, in this order:
//
//	build<Axis>                  defaults
//	extraBuild<Axis>             override for every build type
//	extra<BuildType>Build<Axis>  override for one build type
//
// into a single "<axis>" key, and drops every key whose name ends in
// <Axis>. Axis and build type names are capitalized by upper-casing the first
// letter and lower-casing the rest.
//
// Keys that end in <Axis> but are none of the recognized keys are dropped as
// well, and reported as warnings. Override fields on a structured build
// variant are not merged; only entry-level settings take part.
//
// No stage mutates its input.
package pipeline
