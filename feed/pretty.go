package feed

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagefeed"
)

// Pretty reindents an item fragment for display. CDATA sections survive
// the round trip untouched.
func Pretty(fragment string) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	if err := doc.ReadFromString(fragment); err != nil {
		return "", pagefeed.Errorf(pagefeed.EINVALID, "failed to parse fragment: %v", err)
	}
	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", pagefeed.Errorf(pagefeed.EINTERNAL, "failed to render fragment: %v", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
