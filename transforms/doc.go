// Package transforms provides ready-made graph transformations built on the
// visitor package's hook surface.
//
// Each transform is an ordinary hook override: it demonstrates the intended
// way to extend the visitor, and can be copied as a starting point for
// custom passes.
//
//   - [RenameDefinitions] rewrites definition names throughout a graph using
//     a caller-supplied or ready-made naming function
//   - [Prune] deletes every schema matching a predicate, splicing it out of
//     whatever slot held it
//   - [CollectRefs] gathers every $ref value with the path it occurs at
//
// Reference resolution is deliberately not provided here; transforms only
// observe $ref values, they never follow them.
package transforms
