// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document opens PDF files for table extraction and hands out
// pages as tabula model pages ready for detection. Protected documents
// are decrypted to a temporary copy that Close removes.
package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/reader"
)

// Sentinel errors for the failure categories callers branch on.
var (
	// ErrNotFound reports that the input path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrAuthentication reports that the document is encrypted and could
	// not be opened with the given credentials.
	ErrAuthentication = errors.New("authentication failed")
)

// Document is an open PDF ready for page-by-page extraction. Close releases
// the underlying reader and removes the decrypted temp file, if any.
type Document struct {
	path      string
	rd        *reader.Reader
	pages     int
	encrypted bool
	tempPath  string
}

// Open opens the PDF at path. Protected documents are decrypted to a
// temporary copy using password; the copy is removed by Close. Open fails
// fast: a missing file returns ErrNotFound, and an encrypted document
// without usable credentials returns ErrAuthentication.
func Open(path string, protected bool, password string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	rd, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	// The trailer is never encrypted, so this works before any decryption.
	encrypted := rd.Trailer().Get("Encrypt") != nil

	if !encrypted {
		if protected {
			logrus.WithField("path", path).Debug("document is not encrypted, ignoring --protected")
		}
		return newDocument(path, rd, false, "")
	}

	rd.Close()
	if !protected {
		return nil, fmt.Errorf("%w: %s is encrypted, re-run with --protected and --password", ErrAuthentication, path)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: %s requires a password", ErrAuthentication, path)
	}

	tempPath, err := decryptToTemp(path, password)
	if err != nil {
		return nil, err
	}

	rd, err = reader.Open(tempPath)
	if err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("opening decrypted copy of %s: %w", path, err)
	}
	return newDocument(path, rd, true, tempPath)
}

func newDocument(path string, rd *reader.Reader, encrypted bool, tempPath string) (*Document, error) {
	pages, err := rd.PageCount()
	if err != nil {
		rd.Close()
		if tempPath != "" {
			os.Remove(tempPath)
		}
		return nil, fmt.Errorf("counting pages in %s: %w", path, err)
	}
	return &Document{
		path:      path,
		rd:        rd,
		pages:     pages,
		encrypted: encrypted,
		tempPath:  tempPath,
	}, nil
}

// decryptToTemp writes a decrypted copy of path to a temporary file and
// returns its location. The caller owns the file.
func decryptToTemp(path, password string) (string, error) {
	tmp, err := os.CreateTemp("", "tabledump-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}
	tempPath := tmp.Name()
	tmp.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	conf.UserPW = password
	if err := api.DecryptFile(path, tempPath, conf); err != nil {
		os.Remove(tempPath)
		logrus.WithField("path", path).Debugf("decrypt failed: %v", err)
		return "", fmt.Errorf("%w: wrong password for %s", ErrAuthentication, path)
	}
	return tempPath, nil
}

// Path returns the input path as given to Open.
func (d *Document) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.pages
}

// Encrypted reports whether the document needed decryption.
func (d *Document) Encrypted() bool {
	return d.encrypted
}

// Page loads the 0-based page i as a tabula model page with its raw text
// fragments populated, ready for table detection.
func (d *Document) Page(i int) (*model.Page, error) {
	pdfPage, err := d.rd.GetPage(i)
	if err != nil {
		return nil, fmt.Errorf("loading page %d: %w", i+1, err)
	}

	width, _ := pdfPage.Width()
	height, _ := pdfPage.Height()

	page := model.NewPage(width, height)
	page.Number = i + 1

	fragments, err := d.rd.ExtractTextFragments(pdfPage)
	if err != nil {
		return nil, fmt.Errorf("extracting text from page %d: %w", i+1, err)
	}

	page.RawText = make([]model.TextFragment, len(fragments))
	for j, f := range fragments {
		page.RawText[j] = model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return page, nil
}

// FirstPageText returns the text of the first page as one string, used for
// profile matching. Documents with no pages return the empty string.
func (d *Document) FirstPageText() (string, error) {
	if d.pages == 0 {
		return "", nil
	}
	page, err := d.Page(0)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(page.RawText))
	for _, f := range page.RawText {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " "), nil
}

// Close releases the reader and removes the decrypted copy, if any.
func (d *Document) Close() error {
	err := d.rd.Close()
	if d.tempPath != "" {
		if rmErr := os.Remove(d.tempPath); rmErr != nil && err == nil {
			err = rmErr
		}
	}
	return err
}
