package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const projectsYAML = `type: project
slug: north-star
order: 2
title: North Star
client: Polaris
year: "2025"
services: [Identity, Web]
content:
  - type: richText
    heading: Orientation
    text: A **bold** start.
  - type: statBlock
    number: "3x"
    label: Conversions
---
type: project
slug: south-pole
order: 1
title: South Pole
year: "2022"
relatedSlugs: [north-star]
`

const settingsYAML = `type: siteSettings
footerAboutText: About us.
contactInfo:
  email: studio@example.com
`

func writeContent(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseDocuments(t *testing.T) {
	docs, err := ParseDocuments([]byte(projectsYAML))
	if err != nil {
		t.Fatalf("ParseDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].Type != TypeProject || docs[0].Slug != "north-star" || docs[0].Order != 2 {
		t.Errorf("first document = %+v", docs[0])
	}

	var p Project
	if err := docs[0].Decode(&p); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"Identity", "Web"}, p.Services); diff != "" {
		t.Errorf("services (-want +got):\n%s", diff)
	}
	if len(p.Content) != 2 || p.Content[0].Type != BlockRichText || p.Content[1].Number != "3x" {
		t.Errorf("content = %+v", p.Content)
	}
}

func TestParseDocumentsErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing type", "title: x\n", "unknown document type"},
		{"unknown type", "type: blogPost\n", "unknown document type"},
		{"unquoted year", "type: project\nslug: p\nyear: 2024\n", `project "p"`},
		{"bad list", "type: project\nslug: p\nservices: Identity\n", `project "p"`},
		{"bad yaml", "type: [\n", "document 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocuments([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestImportDirSkipsUnchanged(t *testing.T) {
	store := setupTestStore(t)
	im := NewImporter(store, nil)
	ctx := context.Background()
	dir := t.TempDir()
	writeContent(t, dir, "work/projects.yaml", projectsYAML)
	writeContent(t, dir, "settings.yml", settingsYAML)
	writeContent(t, dir, "notes.txt", "ignored")

	res, err := im.ImportDir(ctx, dir, "")
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if diff := cmp.Diff(ImportResult{Files: 2, Documents: 3}, res); diff != "" {
		t.Errorf("first import (-want +got):\n%s", diff)
	}

	res, err = im.ImportDir(ctx, dir, "")
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if diff := cmp.Diff(ImportResult{Files: 2, Skipped: 2}, res); diff != "" {
		t.Errorf("second import (-want +got):\n%s", diff)
	}

	im.Force = true
	res, err = im.ImportDir(ctx, dir, "")
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if res.Documents != 3 {
		t.Errorf("forced import documents = %d, want 3", res.Documents)
	}

	src := NewStoreSource(store)
	p, err := src.ProjectBySlug(ctx, "south-pole")
	if err != nil {
		t.Fatalf("ProjectBySlug: %v", err)
	}
	if len(p.RelatedProjects) != 1 || p.RelatedProjects[0].Title != "North Star" {
		t.Errorf("related = %+v", p.RelatedProjects)
	}
	settings, err := src.SiteSettings(ctx)
	if err != nil {
		t.Fatalf("SiteSettings: %v", err)
	}
	if settings.ContactInfo.Email != "studio@example.com" {
		t.Errorf("email = %q", settings.ContactInfo.Email)
	}
}

const faqsYAML = `type: faq
question: Do you work remotely?
answer: Yes.
---
type: faq
question: How long does a project take?
answer: About six weeks.
`

func faqAnswers(t *testing.T, store *Store) []string {
	t.Helper()
	faqs, err := NewStoreSource(store).FAQs(context.Background())
	if err != nil {
		t.Fatalf("FAQs: %v", err)
	}
	var answers []string
	for _, f := range faqs {
		answers = append(answers, f.Answer)
	}
	return answers
}

func TestImportDirUpdatesSluglessDocumentsInPlace(t *testing.T) {
	store := setupTestStore(t)
	im := NewImporter(store, nil)
	ctx := context.Background()
	dir := t.TempDir()
	writeContent(t, dir, "faqs.yaml", faqsYAML)

	if _, err := im.ImportDir(ctx, dir, ""); err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	writeContent(t, dir, "faqs.yaml", strings.Replace(faqsYAML, "About six weeks.", "About two months.", 1))
	if _, err := im.ImportDir(ctx, dir, ""); err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if diff := cmp.Diff([]string{"Yes.", "About two months."}, faqAnswers(t, store)); diff != "" {
		t.Errorf("answers after edit (-want +got):\n%s", diff)
	}

	// Dropping an entry from the file removes it from the store.
	writeContent(t, dir, "faqs.yaml", "type: faq\nquestion: Do you work remotely?\nanswer: Always.\n")
	res, err := im.ImportDir(ctx, dir, "")
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if diff := cmp.Diff(ImportResult{Files: 1, Documents: 1, Removed: 1}, res); diff != "" {
		t.Errorf("import after drop (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Always."}, faqAnswers(t, store)); diff != "" {
		t.Errorf("answers after drop (-want +got):\n%s", diff)
	}

	// Deleting the file removes its documents and its import record.
	if err := os.Remove(filepath.Join(dir, "faqs.yaml")); err != nil {
		t.Fatal(err)
	}
	res, err = im.ImportDir(ctx, dir, "")
	if err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if diff := cmp.Diff(ImportResult{Removed: 1}, res); diff != "" {
		t.Errorf("import after delete (-want +got):\n%s", diff)
	}
	if got := faqAnswers(t, store); len(got) != 0 {
		t.Errorf("answers after delete = %v, want none", got)
	}
	files, err := store.ImportedFiles(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 0 {
		t.Errorf("import records = %v, want none", files)
	}
}

func TestImportFileKeepsOtherSources(t *testing.T) {
	store := setupTestStore(t)
	im := NewImporter(store, nil)
	ctx := context.Background()

	if _, err := store.PutRecord(ctx, TypeFAQ, "manual", 0, FAQItem{Question: "Manual?"}); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	writeContent(t, dir, "faqs.yaml", faqsYAML)
	if _, err := im.ImportDir(ctx, dir, ""); err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	if _, err := im.RemoveFile(ctx, "faqs.yaml"); err != nil {
		t.Fatalf("RemoveFile: %v", err)
	}

	doc, err := store.Get(ctx, TypeFAQ, "manual")
	if err != nil {
		t.Fatalf("Get(manual): %v", err)
	}
	if doc.Source != "" {
		t.Errorf("source = %q, want empty", doc.Source)
	}
	if got := faqAnswers(t, store); len(got) != 1 {
		t.Errorf("faqs after remove = %v, want only the manual one", got)
	}
}

func TestImportDirReportsBadFile(t *testing.T) {
	im := NewImporter(setupTestStore(t), nil)
	dir := t.TempDir()
	writeContent(t, dir, "broken.yaml", "type: project\nslug: p\nyear: 2024\n")

	_, err := im.ImportDir(context.Background(), dir, "")
	if err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("err = %v, want mention of broken.yaml", err)
	}
}

func TestSeedAndExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	im := NewImporter(store, nil)

	n, err := im.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if n != 28 {
		t.Errorf("seeded %d documents, want 28", n)
	}

	dir := t.TempDir()
	written, err := im.Export(ctx, dir)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(written) != len(DocTypes) {
		t.Errorf("wrote %d files, want %d", len(written), len(DocTypes))
	}

	copyStore := setupTestStore(t)
	if _, err := NewImporter(copyStore, nil).ImportDir(ctx, dir, ""); err != nil {
		t.Fatalf("ImportDir: %v", err)
	}
	want, err := store.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	got, err := copyStore.Counts(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("counts after round trip (-want +got):\n%s", diff)
	}

	projects, err := NewStoreSource(copyStore).Projects(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var titles []string
	for _, p := range projects {
		titles = append(titles, p.Title)
	}
	wantTitles := []string{"Apex Architecture", "Lumina Labs", "Mono Magazine", "Vortex Financial"}
	if diff := cmp.Diff(wantTitles, titles); diff != "" {
		t.Errorf("project order (-want +got):\n%s", diff)
	}
}
