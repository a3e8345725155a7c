// Package calc is the collaborator layer around the sparse core: it maps
// an operation selector onto the arithmetic kernels, loads matrix files
// from an input folder, and persists results as coordinate text plus a
// JSON run summary, with an optional append-only history log.
//
// The split mirrors the package boundary deliberately: everything in calc
// is I/O and formatting glue — file traversal, timestamped names, summary
// documents, YAML job configs. All arithmetic and all format validation
// live in the sparse package; calc never inspects matrix internals beyond
// the public shape/NNZ/entry surface.
package calc
