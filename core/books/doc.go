// Package books provides the canonical 66-book table, book-name alias
// normalization, and free-text verse reference parsing.
//
// Source texts and user input spell book names inconsistently ("Psalm" vs
// "Psalms", "1st Chronicles" vs "1 Chronicles", "I Chr"). Normalize maps
// known alternates onto the canonical spelling used by the corpus;
// ExpandVariants produces the wider deterministic candidate list used when
// resolving references parsed from free text.
package books
