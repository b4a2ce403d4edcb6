// Package trie implements the word-search trie over verse text tokens.
//
// Each node stores the set of verse keys reachable through its prefix
// (prefix closure: a key present at a node is present at every ancestor),
// giving O(word length) lookups for both whole words and prefixes. Only
// whole-word search is exposed by the query engine today; SearchPrefix
// exists because the structure supports it for free.
package trie

import (
	"sort"
	"sync"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
)

// node is a single trie node.
type node struct {
	children map[rune]*node
	postings map[corpus.VerseKey]struct{}
	isWord   bool
}

func newNode() *node {
	return &node{
		children: make(map[rune]*node),
		postings: make(map[corpus.VerseKey]struct{}),
	}
}

// Trie is a prefix tree over lowercase word tokens with posting sets of
// verse keys. Safe for concurrent use: inserts and clears take the write
// lock, searches the read lock.
type Trie struct {
	mu        sync.RWMutex
	root      *node
	nodeCount int
}

// New creates an empty Trie.
func New() *Trie {
	return &Trie{root: newNode(), nodeCount: 1}
}

// Insert adds a word to the trie with the given verse key. The key is
// propagated to every node along the path so that prefix lookups return
// exact supersets of word lookups.
func (t *Trie) Insert(word string, key corpus.VerseKey) {
	if word == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = newNode()
			n.children[r] = child
			t.nodeCount++
		}
		child.postings[key] = struct{}{}
		n = child
	}
	n.isWord = true
}

// Search returns the verse keys for a word in canonical corpus order.
// A missing edge at any character yields an empty result.
func (t *Trie) Search(word string) []corpus.VerseKey {
	return t.lookup(word)
}

// SearchPrefix returns the verse keys for every indexed word starting with
// the given prefix. Identical to Search by the prefix-closure invariant.
func (t *Trie) SearchPrefix(prefix string) []corpus.VerseKey {
	return t.lookup(prefix)
}

func (t *Trie) lookup(word string) []corpus.VerseKey {
	if word == "" {
		return nil
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return nil
		}
		n = child
	}

	keys := make([]corpus.VerseKey, 0, len(n.postings))
	for k := range n.postings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Contains reports whether the exact word was inserted.
func (t *Trie) Contains(word string) bool {
	if word == "" {
		return false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			return false
		}
		n = child
	}
	return n.isWord
}

// Clear drops all nodes, making the trie reusable for a fresh corpus.
func (t *Trie) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.root = newNode()
	t.nodeCount = 1
}

// NodeCount returns the number of nodes in the trie, including the root.
// Diagnostic only.
func (t *Trie) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nodeCount
}
