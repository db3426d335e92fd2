package pagefeed

// DefaultTitle is used when a page offers no usable title.
const DefaultTitle = "Untitled"

// Item represents a single RSS feed item.
type Item struct {
	Title       string
	Link        string
	Description string
	PubDate     string
	GUID        string
}

// Validate returns an error if the item contains invalid fields.
func (i *Item) Validate() error {
	if i.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	if i.Link == "" {
		return Errorf(EINVALID, "item link required")
	}
	if i.PubDate == "" {
		return Errorf(EINVALID, "item publication date required")
	}
	if i.GUID != i.Link {
		return Errorf(EINVALID, "item guid must equal its link")
	}
	return nil
}
