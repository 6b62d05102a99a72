package ctxcache

import (
	"sort"
	"strconv"
	"strings"
)

// KeyPrefix starts every key built by BuildKey.
const KeyPrefix = "ctx:"

// Options alter the content of a built context and are part of its cache
// identity.
type Options struct {
	// Lens narrows the context to a particular view.
	Lens string

	// Depth limits relationship traversal, zero means producer default.
	Depth int

	// RelationshipTypes filters relationships by type.
	// Order does not matter, the list is treated as a set.
	RelationshipTypes []string
}

// BuildKey derives a deterministic cache key from a subject identifier and
// context options.
//
// Identical subject and option values always produce the same key,
// list-valued options are sorted first so that key equality reflects set
// equality. Omitted options leave no trace in the key, an unset option is
// indistinguishable from its default.
func BuildKey(subject string, opts Options) string {
	b := strings.Builder{}

	b.WriteString(KeyPrefix)
	b.WriteString(subject)

	if opts.Lens != "" {
		b.WriteString("|lens:")
		b.WriteString(opts.Lens)
	}

	if opts.Depth > 0 {
		b.WriteString("|depth:")
		b.WriteString(strconv.Itoa(opts.Depth))
	}

	if len(opts.RelationshipTypes) > 0 {
		rel := append([]string(nil), opts.RelationshipTypes...)
		sort.Strings(rel)

		b.WriteString("|rel:")
		b.WriteString(strings.Join(rel, ","))
	}

	return b.String()
}
