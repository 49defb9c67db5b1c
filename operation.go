package apidoc

import "strings"

// operationBuilder assembles operations for one document build.
type operationBuilder struct {
	appName  string
	tagDescs map[string]string
	reason   ReasonPhraseFunc
	tags     *TagCollector
}

// buildPathItem creates one Operation per verb from endpoints sharing a
// path. A later endpoint with the same verb replaces the earlier one, and
// only the tags of surviving operations reach the collector, in source
// order.
func (b *operationBuilder) buildPathItem(endpoints []*EndpointDescription) PathItem {
	item := make(PathItem, len(endpoints))
	winner := make(map[string]int, len(endpoints))
	tags := make([][]Tag, len(endpoints))

	for i, ep := range endpoints {
		verb := strings.ToLower(ep.Method)
		item[verb], tags[i] = b.buildOperation(ep)
		winner[verb] = i
	}

	for i, ep := range endpoints {
		if winner[strings.ToLower(ep.Method)] != i {
			continue
		}
		for _, tag := range tags[i] {
			b.tags.Add(tag)
		}
	}

	return item
}

// buildOperation creates the Operation for ep along with its tags.
func (b *operationBuilder) buildOperation(ep *EndpointDescription) (Operation, []Tag) {
	op := Operation{
		Responses: buildResponses(ep, b.reason),
	}

	if m, ok := lastMetadata[SummaryMetadata](ep.Metadata); ok {
		op.Summary = m.Summary()
	}
	if m, ok := lastMetadata[DescriptionMetadata](ep.Metadata); ok {
		op.Description = m.Description()
	}
	if m, ok := lastMetadata[NameMetadata](ep.Metadata); ok {
		op.OperationID = m.EndpointName()
	}

	var tags []Tag
	for _, name := range b.tagNames(ep) {
		tags = append(tags, Tag{Name: name, Description: b.tagDescs[name]})
		op.Tags = append(op.Tags, name)
	}

	return op, tags
}

// tagNames returns the names of the last tag metadata item, or a single
// name derived from the owning resource.
func (b *operationBuilder) tagNames(ep *EndpointDescription) []string {
	if m, ok := lastMetadata[TagsMetadata](ep.Metadata); ok {
		return m.Tags()
	}
	if ep.Resource != "" {
		return []string{ep.Resource}
	}
	return []string{b.appName}
}
