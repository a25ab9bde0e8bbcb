// Package manifest renders the construction metadata and tag vocabulary of a
// unit as JSON, for runtimes that read CreateInfo without importing the
// generated TypeScript.
package manifest

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/reactbabylon/fibergen/internal/codegen/common"
	"github.com/reactbabylon/fibergen/internal/codegen/meta"
)

// Document is the manifest file layout.
type Document struct {
	Generator  string                      `json:"generator"`
	Namespace  string                      `json:"namespace"`
	Prefix     string                      `json:"prefix"`
	Tags       []string                    `json:"tags"`
	CreateInfo map[string]*meta.CreateInfo `json:"createInfo"`
}

// FileName derives the manifest path from the TypeScript output path,
// e.g. "src/generatedCode.ts" -> "src/generated-code.createinfo.json".
func FileName(output string) string {
	dir, base := filepath.Split(output)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, strcase.ToKebab(stem)+".createinfo.json")
}

// Generate renders unit. Every wrapper carrying CreateInfo is keyed by its
// element tag.
func Generate(logger *slog.Logger, unit *meta.Unit) ([]byte, error) {
	version, err := common.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}

	doc := Document{
		Generator:  "fibergen v" + version,
		Namespace:  unit.Namespace,
		Prefix:     unit.Prefix,
		Tags:       unit.Tags,
		CreateInfo: make(map[string]*meta.CreateInfo),
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	for _, w := range unit.Wrappers() {
		if w.CreateInfo == nil {
			continue
		}
		doc.CreateInfo[w.Target] = w.CreateInfo
	}

	data, err := meta.MarshalJSON(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	logger.Debug("Rendered CreateInfo manifest", "entries", len(doc.CreateInfo))
	return append(data, '\n'), nil
}
