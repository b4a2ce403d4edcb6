// Command cedar is the CedarBible CLI.
// It provides verse lookup, full-text search, daily verse selection, cache
// management, Zefania import, and the REST/WebSocket API server.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/FocuswithJustin/CedarBible/core/books"
	"github.com/FocuswithJustin/CedarBible/core/daily"
	"github.com/FocuswithJustin/CedarBible/core/loader"
	"github.com/FocuswithJustin/CedarBible/internal/api"
	"github.com/FocuswithJustin/CedarBible/internal/bible"
	"github.com/FocuswithJustin/CedarBible/internal/cachestore"
	"github.com/FocuswithJustin/CedarBible/internal/embedded"
	"github.com/FocuswithJustin/CedarBible/internal/logging"
	"github.com/FocuswithJustin/CedarBible/internal/zefania"
)

const version = "0.1.0"

// CLI defines the command-line interface for cedar.
var CLI struct {
	// Global flags
	Asset    string `name:"asset" short:"a" help:"Corpus asset file (overrides the embedded dataset)" type:"path"`
	CacheDir string `name:"cache-dir" help:"Cache directory (default: user cache dir)" type:"path"`
	SQLite   bool   `name:"sqlite-cache" help:"Use the SQLite cache backend instead of the file backend"`
	NoCache  bool   `name:"no-cache" help:"Disable the persisted corpus cache"`
	LogLevel string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level"`

	Lookup   LookupCmd   `cmd:"" help:"Resolve a verse reference (e.g. \"John 3:16\")"`
	Search   SearchCmd   `cmd:"" help:"Full-text search over the corpus"`
	Books    BooksCmd    `cmd:"" help:"List books with chapter counts"`
	Chapters ChaptersCmd `cmd:"" help:"List chapters of a book with verse counts"`
	Verses   VersesCmd   `cmd:"" help:"Print the verses of a book or chapter"`
	Daily    DailyCmd    `cmd:"" help:"Print the verse of the day"`
	Cache    CacheGroup  `cmd:"" help:"Corpus cache operations"`
	Import   ImportCmd   `cmd:"" help:"Import a Zefania XML module as a corpus asset"`
	Serve    ServeCmd    `cmd:"" help:"Start the REST/WebSocket API server"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// appContext carries the constructed manager into command Run methods.
type appContext struct {
	mgr   *bible.Manager
	store cachestore.Store
}

// newAppContext builds the manager from the global flags and loads the
// corpus synchronously so commands can read immediately.
func newAppContext(load bool) (*appContext, error) {
	var asset loader.AssetSource
	if CLI.Asset != "" {
		asset = loader.FileAsset{Path: CLI.Asset}
	} else {
		asset = embedded.Default()
	}

	var store cachestore.Store
	if !CLI.NoCache {
		dir := CLI.CacheDir
		if dir == "" {
			if userCache, err := os.UserCacheDir(); err == nil {
				dir = filepath.Join(userCache, "cedarbible")
			}
		}
		if dir != "" {
			if CLI.SQLite {
				if err := os.MkdirAll(dir, 0755); err == nil {
					if s, err := cachestore.NewSQLiteStore(filepath.Join(dir, "corpus.db")); err == nil {
						store = s
					}
				}
			} else {
				store = cachestore.NewFileStore(dir)
			}
		}
	}

	app := &appContext{
		mgr:   bible.New(loader.New(asset, store)),
		store: store,
	}
	if load {
		if err := app.mgr.LoadIfNeeded(context.Background()); err != nil {
			return nil, err
		}
	}
	return app, nil
}

// LookupCmd resolves a free-text verse reference.
type LookupCmd struct {
	Reference []string `arg:"" help:"Verse reference, e.g. \"1 Chronicles 29:11\""`
}

func (c *LookupCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}

	ref, err := books.ParseReference(strings.Join(c.Reference, " "))
	if err != nil {
		return err
	}

	v, ok := app.mgr.ResolveReference(ref)
	if !ok {
		return fmt.Errorf("no verse found for %q", ref.String())
	}
	fmt.Printf("%s\n%s\n", v.Reference(), v.DisplayText())
	return nil
}

// SearchCmd runs a full-text search.
type SearchCmd struct {
	Query []string `arg:"" help:"Search terms (multiple terms are conjunctive)"`
	Limit int      `name:"limit" short:"n" default:"10" help:"Maximum results"`
}

func (c *SearchCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}

	// The CLI is one-shot, so the synchronous best-effort variant is the
	// right fit; it scans linearly if the indices aren't warm yet.
	results := app.mgr.SearchVersesSync(strings.Join(c.Query, " "), c.Limit)
	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, v := range results {
		fmt.Printf("%-24s %s\n", v.Reference(), v.DisplayText())
	}
	return nil
}

// BooksCmd lists books.
type BooksCmd struct{}

func (c *BooksCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}
	for _, info := range app.mgr.BooksInfo() {
		fmt.Printf("%2d  %-20s %d chapters\n", info.Order, info.Name, info.ChapterCount)
	}
	return nil
}

// ChaptersCmd lists the chapters of one book.
type ChaptersCmd struct {
	Book []string `arg:"" help:"Book name"`
}

func (c *ChaptersCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}
	name := strings.Join(c.Book, " ")
	chapters := app.mgr.ChaptersForBook(name)
	if chapters == nil {
		return fmt.Errorf("unknown book: %q", name)
	}
	for _, ch := range chapters {
		fmt.Printf("chapter %d: %d verses\n", ch.Chapter, ch.VerseCount)
	}
	return nil
}

// VersesCmd prints verses of a book, optionally one chapter.
type VersesCmd struct {
	Book    []string `arg:"" help:"Book name"`
	Chapter int      `name:"chapter" short:"c" help:"Restrict to one chapter"`
}

func (c *VersesCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}
	name := strings.Join(c.Book, " ")

	var verses = app.mgr.VersesForBook(name)
	if c.Chapter > 0 {
		verses = app.mgr.VersesForChapter(name, c.Chapter)
	}
	if len(verses) == 0 {
		return fmt.Errorf("no verses found for %q", name)
	}
	for _, v := range verses {
		fmt.Printf("%d:%d  %s\n", v.Chapter, v.Verse, v.DisplayText())
	}
	return nil
}

// DailyCmd prints the verse of the day.
type DailyCmd struct {
	Date string `name:"date" help:"Pick for a specific date (YYYY-MM-DD, default today)"`
}

func (c *DailyCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}

	date := time.Now()
	if c.Date != "" {
		date, err = time.Parse("2006-01-02", c.Date)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", c.Date, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	v, err := daily.New(app.mgr).VerseForDate(ctx, date)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n%s\n", v.Reference(), v.DisplayText())
	return nil
}

// CacheGroup contains cache operations.
type CacheGroup struct {
	Stats CacheStatsCmd `cmd:"" help:"Show manager and cache diagnostics"`
	Clear CacheClearCmd `cmd:"" help:"Delete the persisted corpus cache"`
}

// CacheStatsCmd shows diagnostics.
type CacheStatsCmd struct{}

func (c *CacheStatsCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}

	// Give the background index build a moment so the stats are useful.
	deadline := time.Now().Add(5 * time.Second)
	for !app.mgr.IndicesBuilt() && time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
	}

	s := app.mgr.Snapshot()
	fmt.Printf("state:          %s\n", s.State)
	fmt.Printf("verses:         %d\n", s.Verses)
	fmt.Printf("books:          %d\n", s.Books)
	fmt.Printf("indices built:  %v\n", s.IndicesBuilt)
	fmt.Printf("trie nodes:     %d\n", s.TrieNodes)
	return nil
}

// CacheClearCmd deletes the persisted cache.
type CacheClearCmd struct{}

func (c *CacheClearCmd) Run() error {
	app, err := newAppContext(false)
	if err != nil {
		return err
	}
	if app.store == nil {
		fmt.Println("cache disabled, nothing to clear")
		return nil
	}
	if err := app.store.Clear(); err != nil {
		return err
	}
	fmt.Println("cache cleared")
	return nil
}

// ImportCmd converts a Zefania XML module to a corpus asset.
type ImportCmd struct {
	Input  string `arg:"" help:"Zefania XML file" type:"existingfile"`
	Output string `name:"output" short:"o" required:"" help:"Output asset path" type:"path"`
}

func (c *ImportCmd) Run() error {
	f, err := os.Open(c.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	corp, err := zefania.Import(f)
	if err != nil {
		return err
	}
	data, err := zefania.ExportAsset(corp)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return err
	}
	fmt.Printf("imported %d verses from %s\n", corp.Len(), c.Input)
	return nil
}

// ServeCmd starts the API server.
type ServeCmd struct {
	Host string `name:"host" default:"127.0.0.1" help:"Bind address"`
	Port int    `name:"port" short:"p" default:"8480" help:"Listen port"`
}

func (c *ServeCmd) Run() error {
	app, err := newAppContext(true)
	if err != nil {
		return err
	}

	srv := api.NewServer(api.Config{Host: c.Host, Port: c.Port}, app.mgr, daily.New(app.mgr))
	return srv.Start()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("cedar %s\n", version)
	return nil
}

func initLogging() {
	level := logging.LevelWarn
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "info":
		level = logging.LevelInfo
	case "error":
		level = logging.LevelError
	}
	logging.InitLogger(level, logging.FormatText)
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("cedar"),
		kong.Description("CedarBible - scripture corpus lookup and search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run(ctx)
	ctx.FatalIfErrorf(err)
}
