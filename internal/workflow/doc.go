// Package workflow contains the batch orchestrators behind each reshelf
// command: substitution rename, ordered rename, touch, CHD conversion,
// incoming reconciliation, and extraction.
//
// Every run follows the same shape: enumerate entries once, process them one
// at a time in enumeration order, and report at the end. There are no
// retries and no rollback; with a continuing error policy, partial progress
// is the accepted final state.
package workflow
