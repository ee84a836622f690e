// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the capability interfaces of build-file elements.
//
// The element processor only ever talks to these interfaces. A task that
// takes attributes implements Configurable, one that accepts a text body
// implements TextReceiver, and so on. An element that implements none of
// them is still valid: it simply accepts no attributes, text or children.
package model

// Element is a task or datatype instance built from a tag.
type Element interface {
	// ElementName returns the tag name the element was created from.
	ElementName() string
}

// Configurable elements accept attributes.
type Configurable interface {
	Element
	SetAttribute(name, value string) error
}

// TextReceiver elements accept non-blank character data.
type TextReceiver interface {
	Element
	AddText(text string)
}

// Container elements own nested elements.
type Container interface {
	AddElement(child Element) error
}

// NestedCreator elements build their own children for tag names that only
// make sense inside them (for example <include> inside <fileset>). It is
// consulted before the global registry.
type NestedCreator interface {
	CreateElement(name string) (Element, bool)
}

// Validator elements are checked once their closing tag is reached.
type Validator interface {
	Validate() error
}
