// Package gen emits data vector definitions for the embedded DSL.
//
// Generation uses text/template over line templates, one template per block
// kind:
//   - Concatenation helper (identical on every run)
//   - Fixed-size constructor, one per requested size
//   - Size-dispatching chooser that greedily decomposes a requested total
//
// Decompose mirrors the chooser's decision procedure in Go so a plan can be
// inspected without compiling the generated code.
package gen
