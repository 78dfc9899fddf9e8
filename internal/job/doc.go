// Package job models a clip-extraction batch: a Job of Videos, each carrying
// the Clips to cut from it. All types are pure values decoded from a YAML job
// document; derivation context (replacement rules, format strings,
// extensions) is passed into the methods that need it rather than stored on
// the entities.
package job
