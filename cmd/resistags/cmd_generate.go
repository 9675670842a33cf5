package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	resistags "github.com/goliatone/go-resistags"
	"github.com/goliatone/go-resistags/internal/prompt"
	"github.com/goliatone/go-resistags/pkg/manifest"
	"github.com/goliatone/go-resistags/pkg/orchestrator"
	"github.com/goliatone/go-resistags/pkg/render"
	pkgsvg "github.com/goliatone/go-resistags/pkg/svg"
)

var (
	templatePath string
	manifestPath string
	sheetName    string
	allSheets    bool
	outDir       string
	rendererName string
	notes        string
	columns      int
	vivid        bool
	withReport   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render sticker sheets from a manifest",
	Long: `Renders one or more manifest sheets to SVG files. With no --sheet
and no --all, an interactive picker lists the available sheets. Output files
are written atomically; a failed run leaves nothing behind.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&templatePath, "template", "t", "", "tag template SVG (default: built-in)")
	generateCmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "manifest sheet to render")
	generateCmd.Flags().BoolVarP(&allSheets, "all", "a", false, "render every sheet in the manifest")
	generateCmd.Flags().StringVarP(&outDir, "out-dir", "o", ".", "directory output files are written to")
	generateCmd.Flags().StringVarP(&rendererName, "renderer", "r", "", "renderer to use (default: svgsheet)")
	generateCmd.Flags().StringVar(&notes, "notes", "", "free-text note shown on the index report")
	generateCmd.Flags().IntVar(&columns, "columns", 0, "override the sheet column count")
	generateCmd.Flags().BoolVar(&vivid, "vivid", false, "use the saturated screen palette")
	generateCmd.Flags().BoolVar(&withReport, "report", false, "also write an HTML index next to each sheet")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	m, err := resolveManifest()
	if err != nil {
		return err
	}

	sheets, err := selectSheets(ctx, m)
	if err != nil {
		return err
	}

	var options []orchestrator.Option
	if vivid {
		options = append(options, orchestrator.WithProfile(orchestrator.VividProfile()))
	}
	gen := orchestrator.New(options...)

	source := templateSource()
	for _, sheet := range sheets {
		if err := generateSheet(ctx, gen, source, sheet); err != nil {
			return err
		}
	}
	return nil
}

func resolveManifest() (manifest.Manifest, error) {
	if manifestPath == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(manifestPath)
}

func templateSource() pkgsvg.Source {
	if templatePath == "" {
		return resistags.EmbeddedTemplateSource()
	}
	return pkgsvg.SourceFromFile(templatePath)
}

func selectSheets(ctx context.Context, m manifest.Manifest) ([]manifest.Sheet, error) {
	if allSheets {
		return m.Sheets, nil
	}
	if sheetName != "" {
		sheet, ok := m.Sheet(sheetName)
		if !ok {
			return nil, fmt.Errorf("manifest has no sheet %q; available: %s", sheetName, strings.Join(m.Names(), ", "))
		}
		return []manifest.Sheet{sheet}, nil
	}

	names := m.Names()
	index, err := prompt.New().Select(ctx, "Which sheet should be rendered?", names)
	if err != nil {
		return nil, err
	}
	return []manifest.Sheet{m.Sheets[index]}, nil
}

func generateSheet(ctx context.Context, gen *orchestrator.Orchestrator, source pkgsvg.Source, sheet manifest.Sheet) error {
	logger.Debug("generating sheet",
		zap.String("sheet", sheet.Name),
		zap.Int("values", len(sheet.Values)),
		zap.Float64("tolerance", sheet.TolerancePercent))

	req := orchestrator.Request{
		Source:           source,
		Values:           sheet.Values,
		TolerancePercent: sheet.TolerancePercent,
		Title:            sheet.Name,
		Columns:          columns,
		Renderer:         rendererName,
		RenderOptions:    render.RenderOptions{Notes: sheetNotes(sheet)},
	}
	if req.Columns == 0 {
		req.Columns = sheet.Columns
	}

	out, err := gen.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("sheet %q: %w", sheet.Name, err)
	}

	target := filepath.Join(outDir, sheet.Output)
	if err := writeAtomic(target, out); err != nil {
		return err
	}
	logger.Info("wrote sheet", zap.String("sheet", sheet.Name), zap.String("path", target))

	if !withReport {
		return nil
	}

	req.Renderer = "report"
	index, err := gen.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("sheet %q report: %w", sheet.Name, err)
	}
	reportTarget := strings.TrimSuffix(target, filepath.Ext(target)) + ".html"
	if err := writeAtomic(reportTarget, index); err != nil {
		return err
	}
	logger.Info("wrote report", zap.String("sheet", sheet.Name), zap.String("path", reportTarget))
	return nil
}

func sheetNotes(sheet manifest.Sheet) string {
	if notes != "" {
		return notes
	}
	return sheet.Notes
}

// writeAtomic stages the payload in a temp file and renames it into place, so
// an interrupted run never leaves a truncated sheet on disk.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("stage %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
