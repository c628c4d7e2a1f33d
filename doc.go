// Package bellman is your in-memory toolkit for modeling and solving
// finite Markov Decision Processes — from tabular model building to
// converged optimal policies.
//
// 🚀 What is bellman?
//
//	A small, focused library that brings together:
//		• Model capability set: states, actions, transitions, rewards, discount
//		• Tabular models: flat-array MDPs with a fluent builder
//		• Value Iteration: dense and sparse Bellman-update solvers
//		• Policy/value container: converged values, Q-matrix, greedy policy
//		• Gridworld: ready-made slippery-grid models for validation & demos
//
// ✨ Why choose bellman?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic guarantees – fixed enumeration order, reproducible policies
//   - Pure Go core – no cgo, no hidden deps in the solver
//   - Extensible – progress hooks (OnSweep) for custom observability
//
// Under the hood, everything is organized under three subpackages:
//
//	mdp/       — model interfaces, tabular model builder & validation
//	valueiter/ — dense & sparse value-iteration solvers + policy container
//	gridworld/ — rectangular slippery-grid MDPs for tests and demos
//
// Quick ASCII example:
//
//	    →  →  ★
//	    ↑  #  ↑
//	    ↑  ←  ↑
//
//	a converged 3×3 gridworld policy: arrows route around the wall (#)
//	toward the goal (★).
//
// Dive into the runnable demos under examples/ and the per-package
// example_test.go files for full walkthroughs.
package bellman
