package cms

// Wire shapes of the Contentful Content Delivery API. Entries and assets are
// decoded as generic JSON because their field sets are defined by the content
// model, and the transformer must stay total over sparse or wrong-typed
// records.

type entriesPayload struct {
	Total    int              `json:"total"`
	Items    []map[string]any `json:"items"`
	Includes struct {
		Entry []map[string]any `json:"Entry"`
		Asset []map[string]any `json:"Asset"`
	} `json:"includes"`
}

// maxLinkDepth matches the include depth requested from the API: one level of
// entry nesting (category inside project) plus that entry's assets.
const maxLinkDepth = 2

// resolveLinks replaces {"sys":{"type":"Link"}} stubs inside item fields with
// the full records delivered in the includes block. Links whose target is not
// included are left in place; callers decide whether to fetch them by id.
func (p *entriesPayload) resolveLinks() {
	idx := make(map[string]map[string]any)
	for _, rec := range p.Includes.Entry {
		if id := recordID(rec); id != "" {
			idx[id] = rec
		}
	}
	for _, rec := range p.Includes.Asset {
		if id := recordID(rec); id != "" {
			idx[id] = rec
		}
	}
	for _, rec := range p.Items {
		if id := recordID(rec); id != "" {
			idx[id] = rec
		}
	}

	for _, item := range p.Items {
		resolveRecord(item, idx, maxLinkDepth)
	}
}

func resolveRecord(rec map[string]any, idx map[string]map[string]any, depth int) {
	fields, ok := rec["fields"].(map[string]any)
	if !ok {
		return
	}
	for k, v := range fields {
		fields[k] = resolveValue(v, idx, depth)
	}
}

func resolveValue(v any, idx map[string]map[string]any, depth int) any {
	if depth <= 0 {
		return v
	}
	switch val := v.(type) {
	case map[string]any:
		id, ok := linkTarget(val)
		if !ok {
			return v
		}
		target, found := idx[id]
		if !found {
			return v
		}
		resolveRecord(target, idx, depth-1)
		return target
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = resolveValue(item, idx, depth)
		}
		return out
	}
	return v
}

// linkTarget returns the target id when rec is an unresolved link stub.
func linkTarget(rec map[string]any) (string, bool) {
	sys, ok := rec["sys"].(map[string]any)
	if !ok {
		return "", false
	}
	if t, _ := sys["type"].(string); t != "Link" {
		return "", false
	}
	id, _ := sys["id"].(string)
	return id, id != ""
}

func recordID(rec map[string]any) string {
	sys, ok := rec["sys"].(map[string]any)
	if !ok {
		return ""
	}
	id, _ := sys["id"].(string)
	return id
}

func entryFields(rec map[string]any) map[string]any {
	if rec == nil {
		return nil
	}
	fields, _ := rec["fields"].(map[string]any)
	return fields
}
