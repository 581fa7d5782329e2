// Package charclass filters strings by character class.
//
// All filters are one single-pass algorithm, Filter, parameterised by a
// Predicate. Classification uses Unicode categories, so "ß", "é" and "٣" count as
// letters and digits just like ASCII ones.
//
//	charclass.OnlyNumbers("+1 (555) 010-99")            // "155501099"
//	charclass.Filter("a1-b2", charclass.Special)         // "-"
//	charclass.Filter("Go 1.25", unicode.IsUpper)         // "G"
package charclass
