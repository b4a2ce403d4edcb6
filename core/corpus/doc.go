// Package corpus defines the immutable scripture data model.
//
// A Corpus is the full ordered collection of verses for one translation,
// decoded once at startup and never mutated afterwards. Indices built over
// the corpus reference verses by VerseKey rather than duplicating text.
package corpus
