// Package gltsdiff compares and merges generalized labeled transition
// systems (GLTSs) — directed multigraphs whose states and transitions
// carry arbitrary user-defined properties.
//
// 🚀 What is gltsdiff?
//
//	A thread-safe-by-construction library that brings together:
//
//	  • Property algebra: combine, project, hide and include arbitrary
//	    state/transition properties (package propalg)
//	  • A generalized LTS core with LTS/Automaton/DiffAutomaton
//	    specializations (package glts)
//	  • Structural similarity scoring, local and global (package score)
//	  • State matching, exhaustive and heuristic (package match)
//	  • Deterministic merging of a matched pair into one GLTS (package merge)
//	  • End-to-end orchestration and n-ary folding (package compare)
//
// ✨ Why choose gltsdiff?
//
//   - Deterministic    — every tie is broken by state ID, never by map
//     iteration order or randomness
//   - Generic          — state and transition properties are caller-supplied
//     type parameters, not a fixed label alphabet
//   - Rock-solid       — built-in R/W locks on every GLTS instance
//   - Composable       — matchers and scorers pick local/global/dynamic
//     strategies behind the same interface
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	propalg/ — combiner, projector, hider and inclusion property algebra
//	glts/    — the generalized LTS core and its specializations
//	linalg/  — dense matrices, LU decomposition, linear solve
//	score/   — local/global/dynamic structural similarity scorers
//	match/   — brute-force, Kuhn-Munkres, Walkinshaw and dynamic matchers
//	merge/   — matched-pair merging into a single result GLTS
//	compare/ — scorer → matcher → merger orchestration, n-ary fold
//
// Data flow for a single comparison:
//
//	(LHS, RHS) → score → match → merge → (optional rewriter) → result
//
// Every component is parameterised over user-supplied property-algebra
// instances from propalg.
//
//	go get github.com/katalvlaran/gltsdiff
package gltsdiff
