// Package eval defines the evaluator that sits between reading and
// printing.
//
// Evaluation of the language is not implemented. The only evaluator is
// [Identity], which returns the forms it is given. Other evaluators may be
// added with [Register] and selected by name with [Lookup].
package eval
