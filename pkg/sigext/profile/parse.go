package profile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// FileExtension is the suffix of profile files picked up from directories.
const FileExtension = ".hcl"

// GetBlocks extracts the profile blocks from bodies. Anything else in them
// is an error.
func GetBlocks(bodies []hcl.Body) (hcl.Blocks, hcl.Diagnostics) {
	diags := hcl.Diagnostics{}

	var blocks hcl.Blocks

	for _, body := range bodies {
		content, contentDiags := body.Content(profileSchema)
		diags = diags.Extend(contentDiags)

		if content != nil {
			blocks = append(blocks, content.Blocks...)
		}
	}

	return blocks, diags
}

// ParseFiles parses every source into an HCL body. Directories are walked
// for files ending in FileExtension.
func ParseFiles(sources ...any) ([]hcl.Body, hcl.Diagnostics) {
	parser := hclparse.NewParser()
	var diags hcl.Diagnostics
	bodies := make([]hcl.Body, 0)

	for _, source := range sources {
		switch v := source.(type) {
		case string:
			newBodies, newDiags := parsePath(parser, v)
			diags = diags.Extend(newDiags)
			bodies = append(bodies, newBodies...)
		case []string:
			for _, path := range v {
				newBodies, newDiags := parsePath(parser, path)
				diags = diags.Extend(newDiags)
				bodies = append(bodies, newBodies...)
			}
		case []byte:
			filename := fmt.Sprintf("<bytes@%p>", v)
			file, parseDiags := parser.ParseHCL(v, filename)
			diags = diags.Extend(parseDiags)
			if file != nil {
				bodies = append(bodies, file.Body)
			}
		case fs.FS:
			newBodies, newDiags := parseFS(parser, v, "")
			diags = diags.Extend(newDiags)
			bodies = append(bodies, newBodies...)
		default:
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid source type",
				Detail:   fmt.Sprintf("Invalid source type: %T", v),
			})
		}

		if diags.HasErrors() {
			return nil, diags
		}
	}

	return bodies, diags
}

func parsePath(parser *hclparse.Parser, path string) ([]hcl.Body, hcl.Diagnostics) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Failed to stat file",
			Detail:   fmt.Sprintf("Error statting %s: %s", path, err),
		}}
	}

	if info.IsDir() {
		return parseFS(parser, os.DirFS(path), path)
	}

	file, diags := parser.ParseHCLFile(path)
	if file == nil {
		return nil, diags
	}
	return []hcl.Body{file.Body}, diags
}

// parseFS parses the profile files of fsys. root prefixes the file names
// used in diagnostics, which also keeps the parser's file cache apart for
// different directories.
func parseFS(parser *hclparse.Parser, fsys fs.FS, root string) ([]hcl.Body, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	bodies := make([]hcl.Body, 0)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Failed to access file or directory",
				Detail:   fmt.Sprintf("Error accessing %s: %s", path, err),
			})
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(path, FileExtension) {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Failed to read file",
				Detail:   fmt.Sprintf("Error reading %s: %s", path, err),
			})
			return nil
		}

		file, parseDiags := parser.ParseHCL(content, filepath.Join(root, filepath.FromSlash(path)))
		diags = diags.Extend(parseDiags)
		if file != nil {
			bodies = append(bodies, file.Body)
		}
		return nil
	})

	if err != nil {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Failed to walk directory",
			Detail:   fmt.Sprintf("Error walking directory: %s", err),
		})
	}

	return bodies, diags
}
