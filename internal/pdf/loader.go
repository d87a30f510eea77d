// Package pdf extracts text from PDF documents.
package pdf

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Pages returns the text of each page in order. Unreadable or invalid
// input is an error; an empty document yields an empty slice.
func Pages(contents []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(contents)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("failed to extract page %d: %w", i+1, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// Text returns the whole document as a single string with pages joined
// by a space.
func Text(contents []byte) (string, int, error) {
	pages, err := Pages(contents)
	if err != nil {
		return "", 0, err
	}
	return strings.Join(pages, " "), len(pages), nil
}
