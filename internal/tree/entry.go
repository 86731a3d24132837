package tree

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/TheNeikos/diary/internal/meta"
	"github.com/adrg/frontmatter"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// abbrevLength is the number of hash characters shown as an entry id.
const abbrevLength = 7

// Entry is a single diary note. It never changes after it is read.
type Entry struct {
	labels
	path    string
	time    time.Time
	raw     []byte
	content string
	hash    string
}

// NewEntry builds an entry from the bytes read at path. Front matter
// labels in raw are merged with extra.
func NewEntry(path string, t time.Time, raw []byte, extra meta.Labels) *Entry {
	text := decodeText(raw)

	var front meta.Labels
	body, err := frontmatter.Parse(strings.NewReader(text), &front)
	if err != nil {
		front = meta.Labels{}
		body = []byte(text)
	}

	l := meta.Merge(front, extra)
	e := &Entry{
		labels:  labels{tags: l.Tags, categories: l.Categories},
		path:    path,
		time:    t,
		raw:     bytes.Clone(raw),
		content: string(body),
	}
	e.hash = contentHash(e.raw, e.time, e.tags, e.categories)
	return e
}

// decodeText turns raw bytes into NFC-normalised UTF-8. A UTF-8 or
// UTF-16 byte order mark selects the source encoding.
func decodeText(raw []byte) string {
	decoder := transform.Chain(unicode.BOMOverride(unicode.UTF8.NewDecoder()), norm.NFC)
	out, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "�")
	}
	return string(out)
}

func contentHash(raw []byte, t time.Time, tags, categories []string) string {
	h := sha512.New()
	h.Write(raw)
	fmt.Fprintf(h, "\x00time=%s\x00tags=%s\x00categories=%s",
		t.Format(time.RFC3339), strings.Join(tags, ","), strings.Join(categories, ","))
	return hex.EncodeToString(h.Sum(nil))
}

func (e *Entry) Path() string { return e.path }

// Time returns the timestamp encoded in the entry path.
func (e *Entry) Time() time.Time { return e.time }

// Raw returns the bytes as read from disk.
func (e *Entry) Raw() []byte { return bytes.Clone(e.raw) }

// Content returns the entry text without front matter.
func (e *Entry) Content() string { return e.content }

// Hash returns the content address of the entry: a SHA-512 digest of the
// raw bytes and the time, tags and categories.
func (e *Entry) Hash() string { return e.hash }

// AbbrevHash returns the short form of Hash used to refer to an entry.
func (e *Entry) AbbrevHash() string { return e.hash[:abbrevLength] }

// IndexString returns the entry time as HH-MM-SS; width is ignored.
func (e *Entry) IndexString(int) string {
	return e.time.Format("15-04-05")
}
