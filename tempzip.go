package ods

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// tempZip assembles archive members as individual files in a temp
// directory, then packs them into the destination in one pass. Writing
// members to disk first keeps the archive writer's state machine away from
// the XML emitters and lets a member be replaced before packing.
type tempZip struct {
	dest    string
	dir     string
	entries []tempEntry
	index   map[string]int
	cur     *os.File
	seq     int
}

type tempEntry struct {
	name  string
	path  string
	store bool // STORED instead of deflated
}

func newTempZip(dest string) (*tempZip, error) {
	dir, err := os.MkdirTemp(filepath.Dir(dest), ".ods-*")
	if err != nil {
		return nil, err
	}
	return &tempZip{
		dest:  dest,
		dir:   dir,
		index: make(map[string]int),
	}, nil
}

// Start begins a new member and returns its writer, which stays valid until
// the next Start. Starting a name again replaces the earlier content but
// keeps the member's position in the archive.
func (z *tempZip) Start(name string, store bool) (io.Writer, error) {
	if err := z.closeCurrent(); err != nil {
		return nil, err
	}

	z.seq++
	path := filepath.Join(z.dir, fmt.Sprintf("m%04d", z.seq))
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	z.cur = f

	if i, ok := z.index[name]; ok {
		z.entries[i] = tempEntry{name: name, path: path, store: store}
		return f, nil
	}
	z.index[name] = len(z.entries)
	z.entries = append(z.entries, tempEntry{name: name, path: path, store: store})
	return f, nil
}

func (z *tempZip) closeCurrent() error {
	if z.cur == nil {
		return nil
	}
	err := z.cur.Close()
	z.cur = nil
	return err
}

// Zip packs the collected members into the destination archive in the order
// they were first started.
func (z *tempZip) Zip() error {
	if err := z.closeCurrent(); err != nil {
		return err
	}

	out, err := os.Create(z.dest)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(out)

	for _, e := range z.entries {
		hdr := &zip.FileHeader{Name: e.name, Method: zip.Deflate}
		if e.store {
			hdr.Method = zip.Store
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			out.Close()
			return err
		}
		f, err := os.Open(e.path)
		if err != nil {
			out.Close()
			return err
		}
		_, err = io.Copy(w, f)
		f.Close()
		if err != nil {
			out.Close()
			return err
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Clean removes the temp assembly directory.
func (z *tempZip) Clean() error {
	return os.RemoveAll(z.dir)
}
