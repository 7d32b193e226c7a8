// Package config provides the YAML plan file: the sizes to generate, the
// chooser's branch order, and the DSL identifiers used in the output.
//
// # Schema
//
//	version: "1"
//	sizes: [1, 2, 4, 8, 16]
//	order: input-reversed   # or: descending
//	names:
//	  vector_type: DataVector
//	  value_type: DataVectorValueType
//	  size_type: i32
//	  concat_func: concat_data_vectors
//	  create_func: create_data_vector
//
// Every field is optional. Omitted names keep the data vector library's
// identifiers; sizes given on the command line replace the file's list.
package config
