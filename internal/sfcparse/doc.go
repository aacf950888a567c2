// Package sfcparse reads a single-file component into the markup tree
// consumed by sfcgen.
//
// Tokenization is done by golang.org/x/net/html. The tokenizer lowercases
// names, so tag and attribute names are recovered from the raw token text
// to keep component names such as <MyButton> and props such as
// :modelValue intact. Text is split on {{ }} into literal text and
// interpolations, and directive attributes (v-*, :, @, #, .) are decoded
// into sfcgen.DirectiveAttribute values.
package sfcparse
