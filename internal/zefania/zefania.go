// Package zefania imports Zefania XML Bible modules into corpus assets.
// Zefania XML is a Bible interchange format used primarily in
// German-speaking regions; its structure is XMLBIBLE > BIBLEBOOK > CHAPTER
// > VERS.
package zefania

import (
	"io"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/FocuswithJustin/CedarBible/core/corpus"
	apperrors "github.com/FocuswithJustin/CedarBible/core/errors"
)

// Import parses a Zefania XML document into a Corpus. Books keep the name
// given by the bname attribute and the ordinal from bnumber; verses follow
// document order, which Zefania guarantees to be canonical order.
func Import(r io.Reader) (*corpus.Corpus, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, apperrors.NewDecode("zefania xml", err.Error(), err)
	}

	root := xmlquery.FindOne(doc, "//XMLBIBLE")
	if root == nil {
		return nil, apperrors.NewDecode("zefania xml", "missing XMLBIBLE root element", nil)
	}

	c := &corpus.Corpus{
		Translation: root.SelectAttr("biblename"),
	}

	for _, book := range xmlquery.Find(root, "BIBLEBOOK") {
		bookName := book.SelectAttr("bname")
		bookNum, err := strconv.Atoi(book.SelectAttr("bnumber"))
		if err != nil {
			return nil, apperrors.NewDecode("zefania xml", "bad bnumber on BIBLEBOOK "+bookName, err)
		}

		for _, chapter := range xmlquery.Find(book, "CHAPTER") {
			chapterNum, err := strconv.Atoi(chapter.SelectAttr("cnumber"))
			if err != nil {
				return nil, apperrors.NewDecode("zefania xml", "bad cnumber in "+bookName, err)
			}

			for _, vers := range xmlquery.Find(chapter, "VERS") {
				verseNum, err := strconv.Atoi(vers.SelectAttr("vnumber"))
				if err != nil {
					return nil, apperrors.NewDecode("zefania xml", "bad vnumber in "+bookName, err)
				}

				c.Verses = append(c.Verses, corpus.Verse{
					BookName: bookName,
					Book:     bookNum,
					Chapter:  chapterNum,
					Verse:    verseNum,
					Text:     strings.TrimSpace(vers.InnerText()),
				})
			}
		}
	}

	if len(c.Verses) == 0 {
		return nil, apperrors.NewDecode("zefania xml", "no verses found", nil)
	}
	return c, nil
}

// ExportAsset serializes an imported corpus as a JSON corpus document, one
// of the shapes the loader's asset decode accepts.
func ExportAsset(c *corpus.Corpus) ([]byte, error) {
	return corpus.Encode(c)
}
