// SPDX-License-Identifier: MIT
//
// File: labels.go
// Role: deterministic index -> label schemes.

package builder

import (
	"fmt"
	"strconv"
)

// LabelFn generates an element label from its zero-based index. It must be
// pure and injective over the indices a generator uses.
type LabelFn func(idx int) string

// alphabet is the number of Latin letters used by the letter schemes.
const alphabet = 26

// DecimalLabel returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalLabel(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolLabel returns "A".."Z" for idx in [0,25] and a letter plus cycle
// number beyond that: 26→"A1", 27→"B1".
// Panics if idx < 0.
func SymbolLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("SymbolLabel: idx must be ≥ 0, got %d", idx))
	}
	letter := string(rune('A' + idx%alphabet))
	if idx < alphabet {
		return letter
	}

	return letter + strconv.Itoa(idx/alphabet)
}

// ExcelLabel returns the spreadsheet column name for idx, e.g. 0→"A",
// 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func ExcelLabel(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelLabel: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/alphabet - 1 {
		runes = append(runes, rune('A'+(i%alphabet)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// labelsFor applies fn to 0..n-1.
func labelsFor(fn LabelFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}

	return out
}
