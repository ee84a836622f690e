// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import "strings"

var trueValues = []string{"on", "true", "t", "yes", "1"}

// BooleanValue interprets the usual truthy spellings of a build-file flag,
// ignoring case and surrounding space. Anything it does not recognise is
// false.
func BooleanValue(s string) bool {
	test := strings.ToLower(strings.TrimSpace(s))
	for _, v := range trueValues {
		if test == v {
			return true
		}
	}
	return false
}
