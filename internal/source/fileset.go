package source

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"fortio.org/safecast"
)

// FileFlags encodes metadata about how a file entered the set.
type FileFlags uint8

const (
	// FileVirtual marks content added from memory (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF endings were rewritten.
	FileNormalizedCRLF
)

// File is one registered source file with its content and line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags

	// lines holds the byte offset of every '\n', for span resolution.
	lines []uint32
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// FileSet registers source files and resolves spans into positions.
// ID 0 is the NoFileID sentinel and never refers to a real file.
type FileSet struct {
	files   []File
	index   map[string]FileID
	baseDir string
}

// NewFileSet creates an empty set.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 1),
		index: make(map[string]FileID),
	}
}

// SetBaseDir sets the directory relative paths are printed against.
func (fs *FileSet) SetBaseDir(dir string) { fs.baseDir = dir }

// BaseDir returns the base directory, falling back to the working
// directory when none was set.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fs.baseDir
}

// Add registers normalized content under the given path. A path may be
// added more than once; the index always points at the latest version.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(n)
	p := normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    p,
		Content: content,
		Flags:   flags,
		lines:   buildLineIndex(content),
	})
	fs.index[p] = id
	return id
}

// Load reads a file from disk, stripping a BOM and normalizing CRLF.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return NoFileID, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual registers in-memory content.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// Get returns the file for a valid ID.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// ByPath returns the latest file registered under the path.
func (fs *FileSet) ByPath(path string) (*File, bool) {
	if id, ok := fs.index[normalizePath(path)]; ok {
		return &fs.files[id], true
	}
	return nil, false
}

// Len reports how many files are registered.
func (fs *FileSet) Len() int { return len(fs.files) - 1 }

// Resolve converts a span into start and end positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := &fs.files[span.File]
	return toLineCol(f.lines, span.Start), toLineCol(f.lines, span.End)
}

// Line returns the 1-based line's text, without its newline. Out of
// range lines return "".
func (f *File) Line(num uint32) string {
	if num == 0 {
		return ""
	}
	total := uint32(len(f.Content))

	var start uint32
	switch {
	case num == 1:
		start = 0
	case int(num-2) < len(f.lines):
		start = f.lines[num-2] + 1
	default:
		return ""
	}

	end := total
	if int(num-1) < len(f.lines) {
		end = f.lines[num-1]
	}
	if start >= total {
		return ""
	}
	if end > total {
		end = total
	}
	return string(f.Content[start:end])
}

// RelPath returns the file path relative to dir when possible.
func (f *File) RelPath(dir string) string {
	if dir == "" {
		return f.Path
	}
	if rel, err := filepath.Rel(dir, f.Path); err == nil {
		return filepath.ToSlash(rel)
	}
	return f.Path
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// normalizeCRLF rewrites \r\n to \n, leaving lone \r alone.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}
	out := make([]byte, 0, len(content))
	changed := false
	for i := 0; i < len(content); {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lines []uint32, off uint32) LineCol {
	// Completed lines end at a '\n' strictly before off; a '\n' itself
	// still belongs to the line it terminates.
	n := sort.Search(len(lines), func(i int) bool { return lines[i] >= off })
	var start uint32
	if n > 0 {
		start = lines[n-1] + 1
	}
	return LineCol{Line: uint32(n) + 1, Col: off - start + 1}
}
