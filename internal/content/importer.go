package content

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultContentGlob matches the content files under the content root.
const DefaultContentGlob = "**/*.{yaml,yml}"

// ImportResult summarises an import run.
type ImportResult struct {
	Files     int
	Skipped   int
	Documents int
	// Removed counts documents dropped because they left their file or
	// their file was deleted.
	Removed   int
}

// Importer loads YAML content files into the store.
//
// A content file holds one or more YAML documents separated by "---". Each
// document needs a "type" key naming the DocType; "slug" and "order" set
// the row's slug and ordering. Every key except "type" becomes the JSON
// body, so the YAML mirrors the record's JSON field names.
type Importer struct {
	store *Store
	log   *zap.Logger
	// Force re-imports files whose checksum is unchanged.
	Force bool
}

func NewImporter(store *Store, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{store: store, log: log}
}

// ImportDir imports every file under root matching pattern.
func (im *Importer) ImportDir(ctx context.Context, root, pattern string) (ImportResult, error) {
	if pattern == "" {
		pattern = DefaultContentGlob
	}
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return ImportResult{}, fmt.Errorf("matching %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var res ImportResult
	for _, name := range matches {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		n, removed, skipped, err := im.importFile(ctx, fsys, name)
		if err != nil {
			return res, err
		}
		res.Files++
		if skipped {
			res.Skipped++
		}
		res.Documents += n
		res.Removed += removed
	}

	// Drop content of files that matched on an earlier run and are gone.
	known, err := im.store.ImportedFiles(ctx)
	if err != nil {
		return res, err
	}
	for _, name := range known {
		if ok, _ := doublestar.Match(pattern, name); !ok {
			continue
		}
		if _, err := fs.Stat(fsys, name); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		n, err := im.RemoveFile(ctx, name)
		if err != nil {
			return res, err
		}
		res.Removed += n
	}

	im.log.Info("content imported",
		zap.String("root", root),
		zap.Int("files", res.Files),
		zap.Int("skipped", res.Skipped),
		zap.Int("documents", res.Documents),
		zap.Int("removed", res.Removed),
	)
	return res, nil
}

// ImportFile imports one file. Files whose checksum matches the last import
// are skipped unless Force is set.
//
// Documents without a slug are keyed by their position in the file, so
// re-importing an edited file updates them in place. Documents the file no
// longer holds are removed.
func (im *Importer) ImportFile(ctx context.Context, fsys fs.FS, name string) (int, bool, error) {
	n, _, skipped, err := im.importFile(ctx, fsys, name)
	return n, skipped, err
}

func (im *Importer) importFile(ctx context.Context, fsys fs.FS, name string) (int, int, bool, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return 0, 0, false, fmt.Errorf("reading %s: %w", name, err)
	}
	sum := sha256.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	if !im.Force {
		prev, err := im.store.ImportChecksum(ctx, name)
		if err != nil {
			return 0, 0, false, err
		}
		if prev == checksum {
			im.log.Debug("content file unchanged", zap.String("file", name))
			return 0, 0, true, nil
		}
	}

	docs, err := ParseDocuments(data)
	if err != nil {
		return 0, 0, false, fmt.Errorf("parsing %s: %w", name, err)
	}
	keep := make(map[docKey]bool, len(docs))
	for i, d := range docs {
		d.Source = name
		if d.Slug == "" && !d.Type.Singleton() {
			d.Slug = fmt.Sprintf("%s#%d", name, i+1)
		}
		stored, err := im.store.Put(ctx, d)
		if err != nil {
			return 0, 0, false, fmt.Errorf("importing %s (%s/%s): %w", name, d.Type, d.Slug, err)
		}
		keep[docKey{stored.Type, stored.Slug}] = true
	}

	prev, err := im.store.ListBySource(ctx, name)
	if err != nil {
		return 0, 0, false, err
	}
	removed := 0
	for _, d := range prev {
		if keep[docKey{d.Type, d.Slug}] {
			continue
		}
		if err := im.store.Delete(ctx, d.Type, d.Slug); err != nil && !errors.Is(err, ErrNotFound) {
			return 0, 0, false, err
		}
		removed++
	}

	if err := im.store.RecordImport(ctx, name, checksum, len(docs)); err != nil {
		return 0, 0, false, err
	}
	im.log.Debug("content file imported",
		zap.String("file", name),
		zap.Int("documents", len(docs)),
		zap.Int("removed", removed),
	)
	return len(docs), removed, false, nil
}

// RemoveFile deletes every document imported from name and forgets the
// file, so a later file with the same name imports afresh.
func (im *Importer) RemoveFile(ctx context.Context, name string) (int, error) {
	n, err := im.store.DeleteBySource(ctx, name)
	if err != nil {
		return 0, err
	}
	if err := im.store.ForgetImport(ctx, name); err != nil {
		return n, err
	}
	im.log.Debug("content file removed", zap.String("file", name), zap.Int("documents", n))
	return n, nil
}

type docKey struct {
	t    DocType
	slug string
}

// ParseDocuments decodes a multi-document YAML stream into store documents.
func ParseDocuments(data []byte) ([]Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []Document
	for i := 0; ; i++ {
		var raw map[string]any
		err := dec.Decode(&raw)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if raw == nil {
			continue
		}
		d, err := documentFromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func documentFromMap(raw map[string]any) (Document, error) {
	t, _ := raw["type"].(string)
	dt := DocType(t)
	if !dt.Valid() {
		return Document{}, fmt.Errorf("unknown document type %q", t)
	}
	delete(raw, "type")

	d := Document{Type: dt}
	if s, ok := raw["slug"].(string); ok {
		d.Slug = s
	}
	switch o := raw["order"].(type) {
	case int:
		d.Order = o
	case float64:
		d.Order = int(o)
	}

	body, err := json.Marshal(raw)
	if err != nil {
		return Document{}, fmt.Errorf("encoding body: %w", err)
	}
	// Decode into the typed record so shape errors (an unquoted year, a
	// string where a list belongs) surface at import time.
	if err := json.Unmarshal(body, newRecord(dt)); err != nil {
		return Document{}, fmt.Errorf("%s %q: %w", dt, d.Slug, err)
	}
	d.Body = body
	return d, nil
}

func newRecord(t DocType) any {
	switch t {
	case TypeSiteSettings:
		return &SiteSettings{}
	case TypeHomepage:
		return &Homepage{}
	case TypeAgencyPage:
		return &AgencyPage{}
	case TypeService:
		return &Service{}
	case TypeBrand:
		return &Brand{}
	case TypeTestimonial:
		return &Testimonial{}
	case TypeFAQ:
		return &FAQItem{}
	default:
		return &Project{}
	}
}

// Export writes the store back to YAML, one file per document type, and
// returns the paths written.
func (im *Importer) Export(ctx context.Context, dir string) ([]string, error) {
	docs, err := im.store.All(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	byType := make(map[DocType][]Document)
	for _, d := range docs {
		byType[d.Type] = append(byType[d.Type], d)
	}

	var written []string
	for _, t := range DocTypes {
		group := byType[t]
		if len(group) == 0 {
			continue
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		for _, d := range group {
			var m map[string]any
			if err := json.Unmarshal(d.Body, &m); err != nil {
				return written, fmt.Errorf("decoding %s/%s: %w", d.Type, d.Slug, err)
			}
			if m == nil {
				m = make(map[string]any)
			}
			m["type"] = string(d.Type)
			if !t.Singleton() {
				m["slug"] = d.Slug
			}
			if d.Order != 0 {
				m["order"] = d.Order
			}
			if err := enc.Encode(m); err != nil {
				return written, fmt.Errorf("encoding %s/%s: %w", d.Type, d.Slug, err)
			}
		}
		if err := enc.Close(); err != nil {
			return written, err
		}
		path := filepath.Join(dir, string(t)+".yaml")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	im.log.Info("content exported", zap.String("dir", dir), zap.Int("files", len(written)))
	return written, nil
}

// Seed stores the built-in fallback content, so a fresh database serves
// the same pages it would with no content at all but can then be edited.
func (im *Importer) Seed(ctx context.Context) (int, error) {
	n := 0
	put := func(t DocType, slug string, order int, v any) error {
		if _, err := im.store.PutRecord(ctx, t, slug, order, v); err != nil {
			return fmt.Errorf("seeding %s/%s: %w", t, slug, err)
		}
		n++
		return nil
	}

	if err := put(TypeSiteSettings, "", 0, FallbackSiteSettings()); err != nil {
		return n, err
	}
	if err := put(TypeHomepage, "", 0, Homepage{
		Title:     DefaultSiteTitle,
		HeroLine1: DefaultHeroLine1,
		HeroLine2: DefaultHeroLine2,
		HeroLine3: DefaultHeroLine3,
	}); err != nil {
		return n, err
	}
	agency := FallbackAgencyPage()
	agency.Services = nil
	if err := put(TypeAgencyPage, "", 0, agency); err != nil {
		return n, err
	}
	for i, s := range FallbackServices() {
		if err := put(TypeService, s.Slug, i, s); err != nil {
			return n, err
		}
	}
	for _, b := range FallbackBrands() {
		if err := put(TypeBrand, "brand-"+b.ID, 0, b); err != nil {
			return n, err
		}
	}
	for i, t := range FallbackTestimonials() {
		if err := put(TypeTestimonial, fmt.Sprintf("testimonial-%d", i+1), 0, t); err != nil {
			return n, err
		}
	}
	for i, f := range FallbackFAQs() {
		if err := put(TypeFAQ, fmt.Sprintf("faq-%d", i+1), i, f); err != nil {
			return n, err
		}
	}
	projects := FallbackProjects()
	for i, p := range projects {
		// Projects list highest order first.
		if err := put(TypeProject, p.Slug, len(projects)-i, p); err != nil {
			return n, err
		}
	}
	im.log.Info("content seeded", zap.Int("documents", n))
	return n, nil
}
