// Package sharesheet is a concurrent, mutable grid of text cells shared by
// many goroutines at once.
//
// What is in the box:
//
//	grid/        dense row-major cell store with copy-on-reshape inserts
//	partition/   striped RW lock pool, sizing policy, ordered multi-lock acquisition
//	delimited/   one-row-per-line, comma-separated text format
//	sheet/       the Sheet type: global arbiter + partition locks + structural ops
//	metrics/     Prometheus Observer for Sheet
//	cmd/simulator  concurrent load generator built on internal/simulator
//
// Two-level locking in one picture:
//
//	          arbiter (RW)
//	     read │            │ write
//	  cell ops, swaps,      AddRow, AddCol,
//	  search                Load, Save
//	     │
//	  partition k = (row*cols + col) mod N
//
// Structural operations never overlap with cell traffic; cell operations on
// different partitions never wait for each other.
//
//	go get github.com/katalvlaran/sharesheet
package sharesheet
