// Package token defines the lexical token model for social-network tag
// documents.
// Invariants:
//   - Tokens preserve document order and are never mutated after creation.
//   - Token.Raw is the exact source text of the token (tag including the
//     angle brackets, text with outer whitespace already trimmed).
//   - Attrs preserves attribute insertion order; the lexer scans
//     double-quoted pairs first, single-quoted second, and on a key
//     collision the later scan wins.
//   - Whitespace-only text spans never become tokens; the lexer drops them.
package token
