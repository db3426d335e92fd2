package feed

import (
	"fmt"

	"github.com/fwojciec/pagefeed"
)

// itemTemplate is indented to sit inside a <channel> element.
const itemTemplate = `    <item>
      <title>%s</title>
      <link>%s</link>
      <description><![CDATA[%s]]></description>
      <pubDate>%s</pubDate>
      <guid>%s</guid>
    </item>`

// Render returns the XML fragment for a single feed item. The title is
// XML-escaped and the description is wrapped in a CDATA section so its
// markup survives verbatim. The remaining fields are emitted as-is.
func Render(item *pagefeed.Item) string {
	return fmt.Sprintf(itemTemplate,
		pagefeed.EscapeXML(item.Title),
		item.Link,
		item.Description,
		item.PubDate,
		item.GUID,
	)
}
