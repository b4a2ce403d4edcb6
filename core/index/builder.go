package index

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/FocuswithJustin/CedarBible/core/books"
	"github.com/FocuswithJustin/CedarBible/core/corpus"
	"github.com/FocuswithJustin/CedarBible/core/trie"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
	"github.com/FocuswithJustin/CedarBible/internal/pool"
)

// chunkSize bounds how many verses a single tokenize job covers, so the
// CPU-bound trie build interleaves with other work and honors cancellation
// at chunk boundaries.
const chunkSize = 1000

// Build derives all index structures from the corpus. The three independent
// structures (verse lookup, book index, trie) are built concurrently into
// local state; the caller publishes the returned Indices atomically.
// Build returns ctx.Err() if cancelled; a partially built Indices is never
// returned.
func Build(ctx context.Context, c *corpus.Corpus) (*Indices, error) {
	start := time.Now()

	ix := &Indices{
		Trie: trie.New(),
	}

	var wg sync.WaitGroup
	var trieErr error

	wg.Add(3)

	go func() {
		defer wg.Done()
		ix.VerseLookup, ix.Keys = buildVerseLookup(c)
	}()

	go func() {
		defer wg.Done()
		ix.BookIndex, ix.ChapterSummaries, ix.Books = buildBookIndex(c)
	}()

	go func() {
		defer wg.Done()
		trieErr = buildTrie(ctx, c, ix.Trie)
	}()

	wg.Wait()

	if trieErr != nil {
		return nil, trieErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logging.Debug("indices built",
		"verses", c.Len(),
		"books", len(ix.Books),
		"trie_nodes", ix.Trie.NodeCount(),
		"duration_ms", time.Since(start).Milliseconds())
	return ix, nil
}

// buildVerseLookup builds the direct lookup map and the key position map.
// Last write wins on duplicate keys; duplicates are a data-quality bug in
// the source asset, not a crash condition.
func buildVerseLookup(c *corpus.Corpus) (map[string]corpus.Verse, map[corpus.VerseKey]int) {
	lookup := make(map[string]corpus.Verse, c.Len())
	keys := make(map[corpus.VerseKey]int, c.Len())
	for i := range c.Verses {
		v := &c.Verses[i]
		lookup[v.Key()] = *v
		keys[v.VerseKey()] = i
	}
	return lookup, keys
}

// buildBookIndex groups verses by book, sorts each group by (chapter, verse),
// and derives the chapter summaries and books-info projection.
func buildBookIndex(c *corpus.Corpus) (map[string][]corpus.Verse, map[string][]ChapterInfo, []BookInfo) {
	byBook := make(map[string][]corpus.Verse)
	order := make(map[string]int)
	for _, v := range c.Verses {
		byBook[v.BookName] = append(byBook[v.BookName], v)
		order[v.BookName] = v.Book
	}

	summaries := make(map[string][]ChapterInfo, len(byBook))
	infos := make([]BookInfo, 0, len(byBook))

	for name, verses := range byBook {
		sort.Slice(verses, func(i, j int) bool {
			if verses[i].Chapter != verses[j].Chapter {
				return verses[i].Chapter < verses[j].Chapter
			}
			return verses[i].Verse < verses[j].Verse
		})
		byBook[name] = verses

		var chapters []ChapterInfo
		for _, v := range verses {
			if n := len(chapters); n > 0 && chapters[n-1].Chapter == v.Chapter {
				chapters[n-1].VerseCount++
			} else {
				chapters = append(chapters, ChapterInfo{Chapter: v.Chapter, VerseCount: 1})
			}
		}
		summaries[name] = chapters

		ord := order[name]
		if ord == 0 {
			ord = books.Order(name)
		}
		infos = append(infos, BookInfo{
			Name:         name,
			ChapterCount: len(chapters),
			Order:        ord,
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Order < infos[j].Order })
	return byBook, summaries, infos
}

// posting is one tokenized word occurrence produced by a chunk worker.
type posting struct {
	word string
	key  corpus.VerseKey
}

// buildTrie tokenizes the corpus in bounded chunks on a worker pool and
// inserts the postings into the trie. Cancellation is checked between
// chunks; a cancelled build leaves the trie partially filled, which is fine
// because the caller discards it.
func buildTrie(ctx context.Context, c *corpus.Corpus, t *trie.Trie) error {
	total := c.Len()
	if total == 0 {
		return nil
	}

	numChunks := (total + chunkSize - 1) / chunkSize
	p := pool.New[[2]int, []posting](runtime.NumCPU(), numChunks)

	p.Start(func(bounds [2]int) []posting {
		var out []posting
		for i := bounds[0]; i < bounds[1]; i++ {
			if ctx.Err() != nil {
				return out
			}
			v := &c.Verses[i]
			key := v.VerseKey()
			for _, tok := range Tokenize(v.DisplayText()) {
				out = append(out, posting{word: tok, key: key})
			}
		}
		return out
	})

	for lo := 0; lo < total; lo += chunkSize {
		hi := lo + chunkSize
		if hi > total {
			hi = total
		}
		p.Submit([2]int{lo, hi})
	}
	p.Close()

	for postings := range p.Results() {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, pt := range postings {
			t.Insert(pt.word, pt.key)
		}
	}
	return ctx.Err()
}
