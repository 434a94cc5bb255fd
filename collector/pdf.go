package collector

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ParseProductSheet extracts the text of a product one-pager PDF.
// The text feeds the insight prompt verbatim, so layout fidelity does
// not matter, only the words.
func ParseProductSheet(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFParse, err)
	}
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPDFParse, err)
	}

	return buf.String(), nil
}
