package ods

import (
	"archive/zip"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/tsawler/ods/xmlw"
)

// nowFunc supplies timestamps for document metadata. Tests substitute it.
var nowFunc = time.Now

// sniffContainer checks the ZIP magic before handing the file to the
// archive reader, so a non-archive file fails as a container error instead
// of a cryptic decode failure.
func sniffContainer(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return wrapError(KindIO, "opening file", err)
	}
	defer f.Close()

	magic := make([]byte, 4)
	n, err := io.ReadFull(f, magic)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return wrapError(KindIO, "reading file header", err)
	}
	if n < 4 || magic[0] != 0x50 || magic[1] != 0x4B || magic[2] != 0x03 || magic[3] != 0x04 {
		return newError(KindContainer, "not a ZIP archive")
	}
	return nil
}

// copyMembers carries every member of the source archive that has not been
// claimed yet into the assembly, preserving order. This keeps members the
// codec does not regenerate (images, settings, thumbnails) intact across an
// overwrite.
func copyMembers(src string, tz *tempZip, written map[string]bool) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return wrapError(KindContainer, "opening source archive", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if written[f.Name] {
			continue
		}
		written[f.Name] = true

		if f.FileInfo().IsDir() {
			continue
		}

		w, err := tz.Start(f.Name, f.Name == "mimetype")
		if err != nil {
			return wrapError(KindIO, "starting member "+f.Name, err)
		}
		rc, err := f.Open()
		if err != nil {
			return wrapError(KindContainer, "opening member "+f.Name, err)
		}
		_, err = io.Copy(w, rc)
		rc.Close()
		if err != nil {
			return wrapError(KindIO, "copying member "+f.Name, err)
		}
	}

	return nil
}

// writeMimetype emits the uncompressed mimetype member. It must be stored,
// not deflated, so format sniffers can read it from fixed offsets.
func writeMimetype(tz *tempZip, written map[string]bool) error {
	if written["mimetype"] {
		return nil
	}
	written["mimetype"] = true

	w, err := tz.Start("mimetype", true)
	if err != nil {
		return wrapError(KindIO, "starting mimetype member", err)
	}
	if _, err := io.WriteString(w, mimetypeSpreadsheet); err != nil {
		return wrapError(KindIO, "writing mimetype member", err)
	}
	return nil
}

func writeManifest(tz *tempZip, written map[string]bool) error {
	if written["META-INF/manifest.xml"] {
		return nil
	}
	written["META-INF/manifest.xml"] = true

	w, err := tz.Start("META-INF/manifest.xml", false)
	if err != nil {
		return wrapError(KindIO, "starting manifest member", err)
	}

	x := xmlw.NewIndent(w)
	x.Decl()
	x.Start("manifest:manifest",
		xmlw.Attr{Key: "xmlns:manifest", Value: nsManifest},
		xmlw.Attr{Key: "manifest:version", Value: "1.2"},
	)
	entry := func(fullPath, mediaType string, version bool) {
		attrs := []xmlw.Attr{{Key: "manifest:full-path", Value: fullPath}}
		if version {
			attrs = append(attrs, xmlw.Attr{Key: "manifest:version", Value: "1.2"})
		}
		attrs = append(attrs, xmlw.Attr{Key: "manifest:media-type", Value: mediaType})
		x.Empty("manifest:file-entry", attrs...)
	}
	entry("/", mimetypeSpreadsheet, true)
	entry("manifest.rdf", "application/rdf+xml", false)
	entry("styles.xml", "text/xml", false)
	entry("meta.xml", "text/xml", false)
	entry("content.xml", "text/xml", false)
	x.End("manifest:manifest")

	if err := x.Flush(); err != nil {
		return wrapError(KindIO, "writing manifest member", err)
	}
	return nil
}

func writeManifestRDF(tz *tempZip, written map[string]bool) error {
	if written["manifest.rdf"] {
		return nil
	}
	written["manifest.rdf"] = true

	w, err := tz.Start("manifest.rdf", false)
	if err != nil {
		return wrapError(KindIO, "starting manifest.rdf member", err)
	}

	x := xmlw.New(w)
	x.Decl()
	x.Start("rdf:RDF",
		xmlw.Attr{Key: "xmlns:rdf", Value: "http://www.w3.org/1999/02/22-rdf-syntax-ns#"},
	)

	x.Start("rdf:Description", xmlw.Attr{Key: "rdf:about", Value: "content.xml"})
	x.Empty("rdf:type", xmlw.Attr{
		Key:   "rdf:resource",
		Value: "http://docs.oasis-open.org/ns/office/1.2/meta/odf#ContentFile",
	})
	x.End("rdf:Description")

	x.Start("rdf:Description", xmlw.Attr{Key: "rdf:about", Value: ""})
	x.Empty("ns0:hasPart",
		xmlw.Attr{Key: "xmlns:ns0", Value: "http://docs.oasis-open.org/ns/office/1.2/meta/pkg#"},
		xmlw.Attr{Key: "rdf:resource", Value: "content.xml"},
	)
	x.End("rdf:Description")

	x.Start("rdf:Description", xmlw.Attr{Key: "rdf:about", Value: ""})
	x.Empty("rdf:type", xmlw.Attr{
		Key:   "rdf:resource",
		Value: "http://docs.oasis-open.org/ns/office/1.2/meta/pkg#Document",
	})
	x.End("rdf:Description")

	x.End("rdf:RDF")

	if err := x.Flush(); err != nil {
		return wrapError(KindIO, "writing manifest.rdf member", err)
	}
	return nil
}

func writeMeta(tz *tempZip, written map[string]bool) error {
	if written["meta.xml"] {
		return nil
	}
	written["meta.xml"] = true

	now := nowFunc()
	if now.IsZero() {
		return newError(KindClock, "system clock returned the zero time")
	}

	w, err := tz.Start("meta.xml", false)
	if err != nil {
		return wrapError(KindIO, "starting meta member", err)
	}

	x := xmlw.New(w)
	x.Decl()
	x.Start("office:document-meta",
		xmlw.Attr{Key: "xmlns:meta", Value: nsMeta},
		xmlw.Attr{Key: "xmlns:office", Value: nsOffice},
		xmlw.Attr{Key: "office:version", Value: "1.2"},
	)
	x.Start("office:meta")

	text := func(tag, content string) {
		x.Start(tag)
		x.Text(content)
		x.End(tag)
	}
	text("meta:generator", "ods 0.1.0")
	text("meta:creation-date", now.Format("2006-01-02T15:04:05.999999999"))
	text("meta:editing-duration", "P0D")
	text("meta:editing-cycles", "1")
	text("meta:initial-creator", userName())

	x.End("office:meta")
	x.End("office:document-meta")

	if err := x.Flush(); err != nil {
		return wrapError(KindIO, "writing meta member", err)
	}
	return nil
}

func userName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}

// writeStylesDoc emits a styles.xml skeleton. Named document styles are not
// modeled, so the member carries only the namespace set office applications
// expect to find.
func writeStylesDoc(tz *tempZip, written map[string]bool) error {
	if written["styles.xml"] {
		return nil
	}
	written["styles.xml"] = true

	w, err := tz.Start("styles.xml", false)
	if err != nil {
		return wrapError(KindIO, "starting styles member", err)
	}

	x := xmlw.New(w)
	x.Decl()
	x.Start("office:document-styles",
		xmlw.Attr{Key: "xmlns:meta", Value: nsMeta},
		xmlw.Attr{Key: "xmlns:office", Value: nsOffice},
		xmlw.Attr{Key: "xmlns:fo", Value: nsFo},
		xmlw.Attr{Key: "xmlns:style", Value: nsStyle},
		xmlw.Attr{Key: "xmlns:text", Value: nsText},
		xmlw.Attr{Key: "xmlns:dr3d", Value: nsDr3d},
		xmlw.Attr{Key: "xmlns:svg", Value: nsSvg},
		xmlw.Attr{Key: "xmlns:chart", Value: nsChart},
		xmlw.Attr{Key: "xmlns:table", Value: nsTable},
		xmlw.Attr{Key: "xmlns:number", Value: nsNumber},
		xmlw.Attr{Key: "xmlns:of", Value: nsOf},
		xmlw.Attr{Key: "xmlns:calcext", Value: nsCalcext},
		xmlw.Attr{Key: "xmlns:loext", Value: nsLoext},
		xmlw.Attr{Key: "xmlns:field", Value: nsField},
		xmlw.Attr{Key: "xmlns:form", Value: nsForm},
		xmlw.Attr{Key: "xmlns:script", Value: nsScript},
		xmlw.Attr{Key: "xmlns:presentation", Value: nsPresent},
		xmlw.Attr{Key: "office:version", Value: "1.2"},
	)
	x.End("office:document-styles")

	if err := x.Flush(); err != nil {
		return wrapError(KindIO, "writing styles member", err)
	}
	return nil
}

// contentNamespaces is the namespace set declared on office:document-content.
func contentNamespaces() []xmlw.Attr {
	return []xmlw.Attr{
		{Key: "xmlns:presentation", Value: nsPresent},
		{Key: "xmlns:script", Value: nsScript},
		{Key: "xmlns:form", Value: nsForm},
		{Key: "xmlns:draw", Value: nsDraw},
		{Key: "xmlns:dr3d", Value: nsDr3d},
		{Key: "xmlns:text", Value: nsText},
		{Key: "xmlns:style", Value: nsStyle},
		{Key: "xmlns:meta", Value: nsMeta},
		{Key: "xmlns:loext", Value: nsLoext},
		{Key: "xmlns:svg", Value: nsSvg},
		{Key: "xmlns:of", Value: nsOf},
		{Key: "xmlns:office", Value: nsOffice},
		{Key: "xmlns:fo", Value: nsFo},
		{Key: "xmlns:field", Value: nsField},
		{Key: "xmlns:xlink", Value: nsXlink},
		{Key: "xmlns:dc", Value: nsDc},
		{Key: "xmlns:chart", Value: nsChart},
		{Key: "xmlns:table", Value: nsTable},
		{Key: "xmlns:number", Value: nsNumber},
		{Key: "xmlns:calcext", Value: nsCalcext},
		{Key: "office:version", Value: "1.2"},
	}
}
