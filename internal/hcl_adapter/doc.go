// Package hcl_adapter implements config.Loader for HCL files.
//
// Attribute expressions are evaluated with a small set of go-cty standard
// library functions, so a size sweep can be written as an expression:
//
//	sizes = [for i in range(12) : 1000 * pow(2, i)]
package hcl_adapter
