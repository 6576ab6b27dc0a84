package util

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// ExtractPDFText returns the text of every page of the PDF at path. Pages
// without a text layer are run through Tesseract OCR when it is installed.
func ExtractPDFText(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", eris.Wrap(err, "failed to open PDF")
	}
	defer doc.Close()

	ocrReady := checkTesseract() == nil

	var fullText bytes.Buffer
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			lastErr = eris.Wrapf(err, "page %d: failed to extract text", n+1)
			zap.L().Warn("pdf text extraction failed", zap.Int("page", n+1), zap.Error(err))
		}
		pageText = strings.TrimSpace(pageText)

		if pageText == "" && ocrReady {
			pageText, err = ocrPage(doc, n)
			if err != nil {
				lastErr = err
				zap.L().Warn("pdf page OCR failed", zap.Int("page", n+1), zap.Error(err))
				continue
			}
		}

		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", eris.Wrap(lastErr, "failed to extract text from PDF")
		}
		return "", eris.New("no text extracted from PDF")
	}

	zap.L().Info("pdf text extracted", zap.Int("pages", doc.NumPage()), zap.Int("chars", len([]rune(result))))
	return result, nil
}

func ocrPage(doc *fitz.Document, n int) (string, error) {
	img, err := doc.Image(n)
	if err != nil {
		return "", eris.Wrapf(err, "page %d: failed to render image", n+1)
	}

	tmpFile, err := os.CreateTemp("", "page-*.png")
	if err != nil {
		return "", eris.Wrapf(err, "page %d: failed to create temp file", n+1)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	if err := savePNG(tmpPath, img); err != nil {
		return "", eris.Wrapf(err, "page %d", n+1)
	}

	out, err := exec.Command("tesseract", tmpPath, "stdout", "-l", "jpn+eng").CombinedOutput()
	if err != nil {
		return "", eris.Wrapf(err, "page %d: tesseract error, output: %s", n+1, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

func checkTesseract() error {
	out, err := exec.Command("tesseract", "-v").CombinedOutput()
	if err != nil {
		return eris.Wrapf(err, "tesseract not found or not executable: %s", string(out))
	}
	return nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "failed to create file")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return eris.Wrap(err, "failed to encode PNG")
	}
	return nil
}
