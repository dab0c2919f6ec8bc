// Package twotouch converts between text and pager two-touch codes.
//
// Two-touch input sends every character as two key presses on a numeric
// pad: the first digit picks the row, the second the column. Kana with a
// voiced (゛) or semi-voiced (゜) mark take four digits, the base kana
// followed by the mark. Common pager slang also has conventional shortcut
// codes ("よろしく" is 4649).
//
//	codes, err := twotouch.Encode("ごくろうさん") // ["5963", "25042395133103"]
//	text, err := twotouch.Decode("81225223")      // "やきにく"
//
// Encode lists phrase shortcuts first and the literal encoding last. When a
// phrase matches but the literal encoding is impossible (kanji), only the
// shortcuts are returned. Full-width forms, small kana and lowercase ASCII
// are folded before lookup.
//
// Components:
//   - Codec: the converter. Immutable, shared tables, safe for concurrent use.
//   - Cached: memoizes a Converter in a provider.Provider (Ristretto,
//     BigCache, Redis) with per-namespace generations for purges.
//   - Logger / Hooks: optional observability; adapters under log/, hooks/
//     and sloghooks/.
//
// A C shared library is built from cmd/libtwotouch.
package twotouch
