// Package extractor turns a statement PDF into plain text for the parsing
// pipeline. It is the upstream collaborator boundary: the pipeline consumes
// a single text blob and assumes no layout or column information survives.
// OCR of scanned statements is out of scope; the text must be extractable.
package extractor

import (
	"fmt"
	"os/exec"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ExtractText reads a PDF file and returns its text as one string with page
// breaks as newlines. It tries the structured Go library first and falls
// back to the external pdftotext command (poppler-utils). Garbage output
// (identity-encoded fonts, image-only pages) is rejected rather than passed
// downstream, because the parsers would silently recover nothing from it.
func ExtractText(filePath string) (string, error) {
	text, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(text) {
		return text, nil
	}

	text, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(text) {
		return text, nil
	}

	if libErr != nil {
		return "", fmt.Errorf("pdf text extraction failed: %w; the file may be scanned or use undecodable font encodings", libErr)
	}
	return "", fmt.Errorf("no readable text could be extracted; the file may be scanned or use undecodable font encodings")
}

// extractWithLibrary extracts row-ordered text with ledongthuc/pdf. The
// library panics on some malformed files, so the panic is converted into an
// error and the caller falls through to pdftotext.
func extractWithLibrary(filePath string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return "", openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}
	return strings.Join(pages, "\n"), nil
}

// extractWithPdftotext shells out to poppler's pdftotext.
func extractWithPdftotext(filePath string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not available: %w", err)
	}
	out, err := exec.Command("pdftotext", "-layout", filePath, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// statementWords appear in virtually every bank statement. Extracted text
// containing none of them is almost certainly decode garbage.
var statementWords = []string{
	"deposit", "withdrawal", "balance", "date", "payment", "statement",
	"total", "amount", "check", "transaction", "account", "card",
	"electronic", "beginning", "ending",
}

// isReadableText checks that the extraction produced enough text, that it is
// mostly readable ASCII rather than binary garbage, and that it contains at
// least one word a bank statement would carry.
func isReadableText(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range statementWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of plain ASCII readable characters to total
// characters. The check stays in plain ASCII because unicode.IsLetter would
// count the accented garbage that identity-encoded fonts produce.
func textQuality(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(`.,-/:;()'"$%&@#!?+=*`, r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}
