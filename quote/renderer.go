package quote

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"soluciones-ferreteras/models"
	"soluciones-ferreteras/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer serializes a quote document model to a binary PDF artifact
type Renderer interface {
	RenderPDF(ctx context.Context, doc models.QuoteDocument) ([]byte, error)
}

// ChromeRenderer renders the quote HTML template and prints it to PDF with
// headless Chrome. The line-item table uses <thead>, so the column header row
// repeats automatically at the top of every printed page.
type ChromeRenderer struct {
	templatePath string
	logoDir      string
}

// NewChromeRenderer creates a ChromeRenderer reading the template from
// templatePath and the brand logo from logoDir.
func NewChromeRenderer(templatePath, logoDir string) *ChromeRenderer {
	return &ChromeRenderer{
		templatePath: templatePath,
		logoDir:      logoDir,
	}
}

var _ Renderer = (*ChromeRenderer)(nil)

// detectChromePath detects the path to Chrome/Chromium executable.
// Checks CHROME_PATH env var first, then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// clientField is one rendered label/value row of the client block
type clientField struct {
	Label string
	Value string
}

// templateData is the model handed to the quote HTML template
type templateData struct {
	Doc          models.QuoteDocument
	DateStr      string
	LogoDataURI  string
	ClientFields []clientField
}

// clientFields returns only the fields the caller supplied, in stable order.
// Empty fields get no placeholder rows.
func clientFields(client models.QuoteClient) []clientField {
	all := []clientField{
		{"Cliente", client.Name},
		{"Empresa", client.Company},
		{"NIT", client.NIT},
		{"Dirección", client.Address},
		{"Teléfono", client.Phone},
		{"Email", client.Email},
	}

	filled := make([]clientField, 0, len(all))
	for _, f := range all {
		if f.Value != "" {
			filled = append(filled, f)
		}
	}
	return filled
}

// loadLogoDataURI loads the brand logo as a base64 data URI. A missing or
// unreadable logo is non-fatal: the document renders without it.
func (r *ChromeRenderer) loadLogoDataURI() string {
	for _, name := range []string{"logo.png", "logo.jpg", "logo.jpeg"} {
		path := filepath.Join(r.logoDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		mimeType := "image/png"
		if filepath.Ext(name) != ".png" {
			mimeType = "image/jpeg"
		}
		return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
	}
	log.Printf("⚠️  Quote: logo not found in %s, rendering without it", r.logoDir)
	return ""
}

// RenderHTML renders the quote document to its HTML form. Split out from the
// PDF step so the document structure is testable without a browser.
func (r *ChromeRenderer) RenderHTML(doc models.QuoteDocument) (string, error) {
	tmpl, err := template.New(filepath.Base(r.templatePath)).Funcs(template.FuncMap{
		"cop":  utils.FormatCOP,
		"add1": func(i int) int { return i + 1 },
	}).ParseFiles(r.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse quote template: %w", err)
	}

	data := templateData{
		Doc:          doc,
		DateStr:      doc.Date.Format("02/01/2006"),
		LogoDataURI:  r.loadLogoDataURI(),
		ClientFields: clientFields(doc.Client),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute quote template: %w", err)
	}
	return buf.String(), nil
}

// RenderPDF renders the document HTML and prints it to a letter-portrait PDF
// using headless Chrome. Chrome page breaks flow the table across pages.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, doc models.QuoteDocument) ([]byte, error) {
	htmlContent, err := r.RenderHTML(doc)
	if err != nil {
		return nil, err
	}

	// Chrome navigates a file URL; a transient render endpoint would leak
	// client data into request logs.
	tmpFile, err := os.CreateTemp("", "cotizacion-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp render file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(htmlContent); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp render file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp render file: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// Letter portrait: 8.5" x 11". Margins live in the CSS.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return pdfBuf, nil
}
