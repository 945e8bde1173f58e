// Copyright 2025 The Sequtil Authors.
//
// Use of this software is governed by the BSD-style license
// included in the /LICENSE file.

package list

import "github.com/cockroachdb/redact"

// String implements the fmt.Stringer interface. Lists render as their values
// joined by arrows: "()", "(1)", "(1 -> 2 -> 3)".
func (l *List[T]) String() string {
	return redact.StringWithoutMarkers(l)
}

// SafeFormat implements the redact.SafeFormatter interface. The list
// structure is safe; the element values are not and get redaction markers.
func (l *List[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.SafeString("(")
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			w.SafeString(" -> ")
		}
		w.Print(n.Value)
	}
	w.SafeString(")")
}
