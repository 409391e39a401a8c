// Package bundle sorts zipped annotation bundles: archives are renamed after
// the GenBank record they hold and their members are extracted into one
// folder per file kind.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Category routes archive members with a name suffix to a folder.
type Category struct {
	Suffix string
	Folder string
}

// Categories are checked in order and the first matching suffix wins, so
// ".NCBI.txt" comes before ".txt" and "_genes.fa" before ".fa".
var Categories = []Category{
	{".NCBI.txt", "NCBI_files"},
	{".pdf", "images_pdf"},
	{"_genes.fa", "genes_fa"},
	{".gbk", "gbk_files"},
	{".log", "log_files"},
	{".txt", "summary_files"},
	{".fa", "seqs_fa"},
}

// Rename is an archive renamed by RenameArchives.
type Rename struct {
	From string
	To   string
}

// Extraction is an archive member copied by ExtractAndCategorize.
type Extraction struct {
	Archive string
	Member  string
	Dest    string
}

// Sorter renames and extracts the archives of a directory.
type Sorter struct {
	log *zap.Logger
}

// NewSorter returns a Sorter. A nil logger discards logs.
func NewSorter(log *zap.Logger) *Sorter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sorter{log: log}
}

// RenameArchives renames each zip archive in dir after the first ".gbk" member
// it contains. Archives without a record, or whose new name is taken, are left alone.
func (s *Sorter) RenameArchives(dir string) ([]Rename, error) {
	archives, err := listArchives(dir)
	if err != nil {
		return nil, err
	}

	var renames []Rename
	for _, archive := range archives {
		record, err := firstRecord(archive)
		if err != nil {
			s.log.Warn("failed to read archive", zap.String("archive", archive), zap.Error(err))
			continue
		}
		if record == "" {
			continue
		}

		base := path.Base(record)
		target := filepath.Join(dir, strings.TrimSuffix(base, path.Ext(base))+".zip")
		if target == archive {
			continue
		}
		if _, err := os.Stat(target); err == nil {
			s.log.Warn("not renaming archive, target exists",
				zap.String("archive", archive),
				zap.String("target", target))
			continue
		}

		if err := os.Rename(archive, target); err != nil {
			return renames, fmt.Errorf("failed to rename %s: %w", archive, err)
		}
		s.log.Info("renamed archive", zap.String("from", archive), zap.String("to", target))
		renames = append(renames, Rename{From: archive, To: target})
	}

	return renames, nil
}

// ExtractAndCategorize copies every member of every zip archive in dir whose
// name matches a Category into dir/<folder>/<member base name>.
func (s *Sorter) ExtractAndCategorize(dir string) ([]Extraction, error) {
	archives, err := listArchives(dir)
	if err != nil {
		return nil, err
	}

	for _, c := range Categories {
		if err := os.MkdirAll(filepath.Join(dir, c.Folder), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", c.Folder, err)
		}
	}

	var extracted []Extraction
	for _, archive := range archives {
		got, err := s.extract(dir, archive)
		extracted = append(extracted, got...)
		if err != nil {
			return extracted, err
		}
	}
	return extracted, nil
}

func (s *Sorter) extract(dir, archive string) ([]Extraction, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		s.log.Warn("failed to open archive", zap.String("archive", archive), zap.Error(err))
		return nil, nil
	}
	defer r.Close()

	var extracted []Extraction
	for _, member := range r.File {
		if member.FileInfo().IsDir() {
			continue
		}
		folder, ok := FolderFor(member.Name)
		if !ok {
			continue
		}

		dest := filepath.Join(dir, folder, path.Base(member.Name))
		if err := copyMember(member, dest); err != nil {
			return extracted, fmt.Errorf("failed to extract %s from %s: %w", member.Name, archive, err)
		}
		s.log.Debug("extracted member",
			zap.String("member", member.Name),
			zap.String("folder", folder))
		extracted = append(extracted, Extraction{Archive: archive, Member: member.Name, Dest: dest})
	}
	return extracted, nil
}

// FolderFor returns the folder a member with this name is extracted to.
func FolderFor(name string) (string, bool) {
	for _, c := range Categories {
		if strings.HasSuffix(name, c.Suffix) {
			return c.Folder, true
		}
	}
	return "", false
}

// listArchives returns the zip files directly inside dir
func listArchives(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%s is not a valid directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var archives []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".zip") {
			archives = append(archives, filepath.Join(dir, e.Name()))
		}
	}
	return archives, nil
}

// firstRecord returns the name of the first ".gbk" member of the archive
func firstRecord(archive string) (string, error) {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, f := range r.File {
		if strings.HasSuffix(f.Name, ".gbk") {
			return f.Name, nil
		}
	}
	return "", nil
}

func copyMember(member *zip.File, dest string) (err error) {
	src, err := member.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, src)
	return err
}
