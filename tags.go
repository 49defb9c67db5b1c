package apidoc

// Tag is a document-level tag. Tags are identified by name only.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TagCollector is a set of tags keyed by name. It remembers the order in
// which names were first seen.
//
// A TagCollector is scoped to one document build and is not safe for
// concurrent use.
type TagCollector struct {
	byName map[string]Tag
	order  []string
}

// NewTagCollector returns an empty TagCollector.
func NewTagCollector() *TagCollector {
	return &TagCollector{byName: make(map[string]Tag)}
}

// Add inserts tag unless a tag with the same name is already present, in
// which case the stored tag is left untouched.
func (c *TagCollector) Add(tag Tag) {
	if _, ok := c.byName[tag.Name]; ok {
		return
	}
	c.byName[tag.Name] = tag
	c.order = append(c.order, tag.Name)
}

// Len returns the number of distinct tags.
func (c *TagCollector) Len() int { return len(c.order) }

// Tags returns the collected tags in first-seen order.
func (c *TagCollector) Tags() []Tag {
	tags := make([]Tag, 0, len(c.order))
	for _, name := range c.order {
		tags = append(tags, c.byName[name])
	}
	return tags
}
