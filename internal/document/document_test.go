// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPDF writes a minimal one-page PDF with computed xref offsets.
// With encryptKey set, the trailer carries an /Encrypt reference so the
// document presents as encrypted without being decryptable.
func buildPDF(t *testing.T, encryptKey bool) string {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	add := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}
	add("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	add("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	add("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")

	xrefOffset := buf.Len()
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f\n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n\n", off)
	}

	trailer := "<< /Size 4 /Root 1 0 R >>"
	if encryptKey {
		trailer = "<< /Size 4 /Root 1 0 R /Encrypt 4 0 R >>"
	}
	fmt.Fprintf(&buf, "trailer\n%s\nstartxref\n%d\n%%%%EOF", trailer, xrefOffset)

	path := filepath.Join(t.TempDir(), "test.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such.pdf")

	_, err := Open(path, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf at all, just text"), 0o644))

	_, err := Open(path, false, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

func TestOpenUnencrypted(t *testing.T) {
	path := buildPDF(t, false)

	doc, err := Open(path, false, "")
	require.NoError(t, err)
	defer doc.Close()

	assert.Equal(t, path, doc.Path())
	assert.Equal(t, 1, doc.PageCount())
	assert.False(t, doc.Encrypted())

	page, err := doc.Page(0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Empty(t, page.RawText)

	text, err := doc.FirstPageText()
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestOpenProtectedFlagOnPlainDocument(t *testing.T) {
	path := buildPDF(t, false)

	doc, err := Open(path, true, "whatever")
	require.NoError(t, err)
	defer doc.Close()

	assert.False(t, doc.Encrypted())
	assert.Equal(t, 1, doc.PageCount())
}

func TestOpenEncryptedWithoutProtected(t *testing.T) {
	path := buildPDF(t, true)

	_, err := Open(path, false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Contains(t, err.Error(), "--protected")
}

func TestOpenEncryptedWithoutPassword(t *testing.T) {
	path := buildPDF(t, true)

	_, err := Open(path, true, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Contains(t, err.Error(), "requires a password")
}

func TestOpenEncryptedBadDocument(t *testing.T) {
	// The fixture advertises /Encrypt but is not actually decryptable, so
	// any password must fail cleanly.
	path := buildPDF(t, true)

	_, err := Open(path, true, "hunter2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestCloseRemovesNothingForPlainDocument(t *testing.T) {
	path := buildPDF(t, false)

	doc, err := Open(path, false, "")
	require.NoError(t, err)
	require.NoError(t, doc.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err, "input file must survive Close")
}
