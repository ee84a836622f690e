// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory entities produced while loading a
// build file: the Target and the element capability interfaces that tasks
// and datatypes implement.
//
// # Core Concepts
//
//   - Target: a named, orderable unit of build work. It owns its dependency
//     list and the ordered tasks and datatypes declared inside it.
//
//   - Element: anything the element processor can construct from a tag.
//     Elements opt into behaviour through small interfaces (Configurable,
//     TextReceiver, Container, NestedCreator, Validator) instead of being
//     inspected with reflection.
//
// The parser package builds these entities; the project package owns them
// once they are registered.
package model
