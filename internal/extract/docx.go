package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/parsecv/parsecv/constants"
	"github.com/parsecv/parsecv/internal/common"
)

// extractDOCX walks word/document.xml and joins paragraph texts with
// newlines, in document order, keeping empty paragraphs as empty lines. A
// broken ZIP or missing document part is an unreadable container.
func (e *Extractor) extractDOCX(data []byte) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{Format: constants.DOCX},
			fmt.Errorf("%w: open docx archive: %v", common.ErrUnreadableDocument, err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return Result{Format: constants.DOCX},
			fmt.Errorf("%w: missing word/document.xml", common.ErrUnreadableDocument)
	}

	rc, err := docFile.Open()
	if err != nil {
		return Result{Format: constants.DOCX},
			fmt.Errorf("%w: open word/document.xml: %v", common.ErrUnreadableDocument, err)
	}
	defer rc.Close()

	paragraphs, err := docxParagraphs(rc)
	if err != nil {
		return Result{Format: constants.DOCX},
			fmt.Errorf("%w: parse word/document.xml: %v", common.ErrUnreadableDocument, err)
	}

	res := Result{
		Text:   strings.Join(paragraphs, "\n"),
		Format: constants.DOCX,
		Method: "docx",
		Pages:  1,
	}
	e.logger.Debug("extract.docx.done", "paragraphs", len(paragraphs), "bytes", len(res.Text))
	return res, nil
}

// docxParagraphs streams the WordprocessingML token by token: each w:p
// element becomes one paragraph, built from the character data of its w:t
// runs (tabs and breaks become whitespace).
func docxParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var cur strings.Builder
	inParagraph := false
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				cur.Reset()
			case "t":
				inText = inParagraph
			case "tab":
				if inParagraph {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if inParagraph {
					cur.WriteByte(' ')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inParagraph {
					paragraphs = append(paragraphs, cur.String())
				}
				inParagraph = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return paragraphs, nil
}
